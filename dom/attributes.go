package dom

import "strings"

// parseAttributes consumes name="value" pairs from the inside of a start tag
// through its closing '>'. It returns the attribute map (nil when the tag
// has none) and the position just past the '>'.
//
// A later duplicate name overwrites the earlier value. A name without '='
// is a boolean attribute and is stored with an empty string value. A stray
// '/' before the '>' (self-closing syntax) is tolerated and ignored.
func parseAttributes(src string, pos int) (map[string]string, int, error) {
	var attrs map[string]string

	n := len(src)

	for {
		pos = skipWhitespace(src, pos)
		if pos >= n {
			return nil, pos, errAt(ErrUnexpectedEOF, src, n)
		}

		if src[pos] == '>' {
			return attrs, pos + 1, nil
		}

		if src[pos] == '/' {
			pos++
			continue
		}

		// 1. Attribute name: everything up to '=', '>', '/', or whitespace.
		start := pos
		for pos < n && src[pos] != '=' && src[pos] != '>' && src[pos] != '/' && !isSpaceByte(src[pos]) {
			pos++
		}

		if pos >= n {
			return nil, pos, errAt(ErrUnexpectedEOF, src, n)
		}

		name := strings.ToLower(src[start:pos])

		if attrs == nil {
			attrs = make(map[string]string)
		}

		// 2. No '=': a boolean attribute.
		if src[pos] != '=' {
			attrs[name] = ""
			continue
		}

		pos++ // '='
		pos = skipWhitespace(src, pos)
		if pos >= n {
			return nil, pos, errAt(ErrUnexpectedEOF, src, n)
		}

		// 3. Quoted value: everything up to the matching closing quote.
		if quote := src[pos]; quote == '"' || quote == '\'' {
			pos++

			rel := strings.IndexByte(src[pos:], quote)
			if rel == -1 {
				return nil, pos, errAt(ErrUnexpectedEOF, src, n)
			}

			attrs[name] = src[pos : pos+rel]
			pos += rel + 1
			continue
		}

		// 4. Bare value: everything up to whitespace or '>'.
		start = pos
		for pos < n && src[pos] != '>' && !isSpaceByte(src[pos]) {
			pos++
		}

		attrs[name] = src[start:pos]
	}
}
