// Package dom converts an HTML source string into an in-memory tree of
// document, element, and text nodes.
//
// The parser accepts well-formed markup over a fixed tag vocabulary. It is
// a pure function of its input: no state survives a call, and the tag
// tables are immutable, so concurrent calls need no locking. It is not an
// HTML5 tree-construction implementation; there is no entity decoding, no
// raw-text mode for script/style content, and no error recovery beyond
// rejecting unknown tag names.
package dom

import "strings"

const doctypeOpen = "<!DOCTYPE"

// Parse builds the document tree for the given HTML source. The input may
// be empty, in which case the returned root has no children. On a fatal
// scan error (ErrUnknownTag, ErrUnexpectedEOF) no partial tree is returned.
func Parse(html string) (*Node, error) {
	pos, err := skipProlog(html, 0)
	if err != nil {
		return nil, err
	}

	pos, err = skipDoctype(html, pos)
	if err != nil {
		return nil, err
	}

	children, _, err := parseContent(html, pos, DocumentTag)
	if err != nil {
		return nil, err
	}

	return &Node{
		Type:     NodeDocument,
		Tag:      DocumentTag,
		Children: children,
	}, nil
}

// skipDoctype consumes a case-sensitive "<!DOCTYPE" declaration through its
// closing '>'. The declaration body is not inspected. Absence of a DOCTYPE
// is not an error.
func skipDoctype(src string, pos int) (int, error) {
	if !strings.HasPrefix(src[pos:], doctypeOpen) {
		return pos, nil
	}

	gt := strings.IndexByte(src[pos:], '>')
	if gt == -1 {
		return pos, errAt(ErrUnexpectedEOF, src, pos)
	}

	return pos + gt + 1, nil
}
