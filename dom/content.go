package dom

import "strings"

// parseContent scans one content region: the repeating loop that alternates
// between text extraction and element construction until the region is
// exhausted. parent is the tag whose content is being scanned; DocumentTag
// marks the top level.
//
// The loop stops at end of input, at an end tag (left for the enclosing
// element builder to consume), or at a start tag that implicitly closes the
// parent per the end-tag omission table.
func parseContent(src string, pos int, parent string) ([]*Node, int, error) {
	var children []*Node

	n := len(src)

	for pos < n {
		pos = skipWhitespace(src, pos)

		// Comments may recur before every content item.
		if isCommentStart(src, pos) {
			var err error
			pos, err = skipComment(src, pos)
			if err != nil {
				return nil, pos, err
			}
			continue
		}

		if pos >= n {
			break
		}

		// 1. Text: everything up to the next '<' or end of input.
		if src[pos] != '<' {
			end := strings.IndexByte(src[pos:], '<')

			var raw string
			if end == -1 {
				raw = src[pos:]
				pos = n
			} else {
				raw = src[pos : pos+end]
				pos += end
			}

			if text := strings.TrimSpace(raw); text != "" {
				children = append(children, newTextNode(text))
			}
			continue
		}

		// 2. End tag: validate the name, then hand it back to the element
		// builder. At the top level there is no builder to consume it, so a
		// stray end tag is skipped and scanning continues.
		if isEndTag(src, pos) {
			name, _ := readTagName(src, pos+2)
			if !knownTags[name] {
				return nil, pos, errAt(ErrUnknownTag, src, pos)
			}

			if parent != DocumentTag {
				break
			}

			gt := strings.IndexByte(src[pos:], '>')
			if gt == -1 {
				return nil, pos, errAt(ErrUnexpectedEOF, src, pos)
			}
			pos += gt + 1
			continue
		}

		// 3. Not a start tag either ('<!' or '<?'): the region is exhausted.
		if !isStartTag(src, pos) {
			break
		}

		name, _ := readTagName(src, pos+1)
		if !knownTags[name] {
			return nil, pos, errAt(ErrUnknownTag, src, pos)
		}

		// 4. A sibling start tag from the omission table closes the parent
		// before any recursion happens.
		if closesSibling(parent, name) {
			break
		}

		element, next, err := parseElement(src, pos)
		if err != nil {
			return nil, pos, err
		}

		children = append(children, element)
		pos = next
	}

	return children, pos, nil
}
