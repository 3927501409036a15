package dom

import "strings"

// parseElement builds one element node starting at a '<' the caller has
// already classified as a start tag: tag name, attributes, and recursively
// parsed children. It returns the element and the position where sibling
// production continues.
func parseElement(src string, pos int) (*Node, int, error) {
	name, nameEnd := readTagName(src, pos+1)
	if name == "" || !knownTags[name] {
		return nil, pos, errAt(ErrUnknownTag, src, pos)
	}

	attrs, pos, err := parseAttributes(src, nameEnd)
	if err != nil {
		return nil, pos, err
	}

	element := newElementNode(name, attrs)

	// A void element has no content region and never consumes an end tag:
	// siblings continue right after the start tag's '>'.
	if voidTags[name] {
		return element, pos, nil
	}

	children, pos, err := parseContent(src, pos, name)
	if err != nil {
		return nil, pos, err
	}
	element.Children = children

	// Opportunistic end-tag consumption: an end tag is eaten only when it
	// sits exactly here and names this element. An omitted end tag leaves
	// the cursor where content scanning stopped.
	if isEndTag(src, pos) {
		endName, _ := readTagName(src, pos+2)
		if endName == name {
			gt := strings.IndexByte(src[pos:], '>')
			if gt == -1 {
				return nil, pos, errAt(ErrUnexpectedEOF, src, pos)
			}
			pos += gt + 1
		}
	}

	return element, pos, nil
}
