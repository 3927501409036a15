package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomString(t *testing.T) {
	s := RandomString(12)
	require.Len(t, s, 12)

	for _, c := range s {
		require.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q", c)
	}

	require.Empty(t, RandomString(0))
}
