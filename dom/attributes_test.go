package dom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// parseAttributes is called with the cursor just past the tag name.
func TestParseAttributes(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantAttrs map[string]string
		wantPos   int
	}{
		{
			name:    "no_attributes",
			src:     ">",
			wantPos: 1,
		},
		{
			name:      "single_quoted_value",
			src:       ` lang="English">`,
			wantAttrs: map[string]string{"lang": "English"},
			wantPos:   16,
		},
		{
			name:      "value_with_spaces",
			src:       ` class="wrapper main-page">`,
			wantAttrs: map[string]string{"class": "wrapper main-page"},
			wantPos:   27,
		},
		{
			name:      "two_attributes",
			src:       ` id="a" class="b">`,
			wantAttrs: map[string]string{"id": "a", "class": "b"},
			wantPos:   18,
		},
		{
			name:      "boolean_attribute",
			src:       ` disabled>`,
			wantAttrs: map[string]string{"disabled": ""},
			wantPos:   10,
		},
		{
			name:      "boolean_then_key_value",
			src:       ` disabled value="x">`,
			wantAttrs: map[string]string{"disabled": "", "value": "x"},
			wantPos:   20,
		},
		{
			name:      "single_quotes",
			src:       ` href='/home'>`,
			wantAttrs: map[string]string{"href": "/home"},
			wantPos:   14,
		},
		{
			name:      "bare_value",
			src:       ` width=100>`,
			wantAttrs: map[string]string{"width": "100"},
			wantPos:   11,
		},
		{
			name:      "whitespace_around_equals",
			src:       ` id= "a">`,
			wantAttrs: map[string]string{"id": "a"},
			wantPos:   9,
		},
		{
			name:      "duplicate_overwrites",
			src:       ` class="a" class="b">`,
			wantAttrs: map[string]string{"class": "b"},
			wantPos:   21,
		},
		{
			name:      "self_closing_slash_ignored",
			src:       ` src="a.png"/>`,
			wantAttrs: map[string]string{"src": "a.png"},
			wantPos:   14,
		},
		{
			name:      "uppercase_name_lowered",
			src:       ` CLASS="a">`,
			wantAttrs: map[string]string{"class": "a"},
			wantPos:   11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, pos, err := parseAttributes(tt.src, 0)

			require.NoError(t, err)
			require.Equal(t, tt.wantAttrs, attrs)
			require.Equal(t, tt.wantPos, pos)
		})
	}
}

func TestParseAttributes_UnexpectedEOF(t *testing.T) {
	inputs := []string{
		"",
		" id",
		` id="unterminated`,
		` id=`,
		" disabled",
	}

	for _, src := range inputs {
		_, _, err := parseAttributes(src, 0)
		require.ErrorIs(t, err, ErrUnexpectedEOF, "src=%q", src)
	}
}
