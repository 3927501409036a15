package dom

import "strings"

const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// skipWhitespace advances pos past any run of whitespace bytes.
func skipWhitespace(src string, pos int) int {
	for pos < len(src) && isSpaceByte(src[pos]) {
		pos++
	}
	return pos
}

// isCommentStart reports whether the cursor sits at a "<!--" opener.
func isCommentStart(src string, pos int) bool {
	return strings.HasPrefix(src[pos:], commentOpen)
}

// skipComment consumes a whole comment through the first "-->". The cursor
// must sit at the opener. An unterminated comment is a fatal scan error.
func skipComment(src string, pos int) (int, error) {
	rel := strings.Index(src[pos+len(commentOpen):], commentClose)
	if rel == -1 {
		return pos, errAt(ErrUnexpectedEOF, src, pos)
	}

	return pos + len(commentOpen) + rel + len(commentClose), nil
}

// skipProlog repeatedly skips whitespace and comments until the cursor sits
// at neither.
func skipProlog(src string, pos int) (int, error) {
	for {
		pos = skipWhitespace(src, pos)
		if !isCommentStart(src, pos) {
			return pos, nil
		}

		var err error
		pos, err = skipComment(src, pos)
		if err != nil {
			return pos, err
		}
	}
}

// isStartTag reports whether the cursor sits at '<' followed by a character
// that does not begin an end tag, a declaration, or a processing
// instruction.
func isStartTag(src string, pos int) bool {
	if pos+1 >= len(src) || src[pos] != '<' {
		return false
	}

	next := src[pos+1]
	return next != '/' && next != '!' && next != '?'
}

// isEndTag reports whether the cursor sits at a "</" opener.
func isEndTag(src string, pos int) bool {
	return pos+1 < len(src) && src[pos] == '<' && src[pos+1] == '/'
}

// readTagName extracts a tag name starting at pos, stopping at whitespace,
// '>', or '/'. The name is ASCII-lowercased before any vocabulary lookup.
func readTagName(src string, pos int) (name string, end int) {
	start := pos
	for pos < len(src) {
		c := src[pos]
		if isSpaceByte(c) || c == '>' || c == '/' {
			break
		}
		pos++
	}

	return strings.ToLower(src[start:pos]), pos
}
