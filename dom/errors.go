package dom

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTag means a start or end tag references a name outside the
	// known-tag vocabulary. Fatal: no partial tree is returned.
	ErrUnknownTag = errors.New("unknown tag name")

	// ErrUnexpectedEOF means scanning ran past the end of the input while
	// looking for a terminator ('>', a closing quote, "-->") that never
	// appears.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// errAt wraps a sentinel error with the byte offset where it was detected
// and a short snippet of the surrounding input.
func errAt(err error, src string, pos int) error {
	return fmt.Errorf("%w at byte %d near %q", err, pos, near(src, pos))
}

// near returns up to 12 bytes of the input starting at pos.
func near(src string, pos int) string {
	if pos >= len(src) {
		return ""
	}

	end := pos + 12
	if end > len(src) {
		end = len(src)
	}

	return src[pos:end]
}
