// Package render lowers a parsed document tree back to HTML markup through
// gomponents nodes.
package render

import (
	"fmt"
	"sort"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/PopovMP/html-ast/dom"
)

// Lower converts a document tree into a gomponents node. Attributes are
// emitted in sorted key order so the output is deterministic; boolean
// attributes are rendered bare.
func Lower(node *dom.Node) (g.Node, error) {
	switch node.Type {
	case dom.NodeText:
		return g.Text(node.Text), nil

	case dom.NodeElement:
		children := make([]g.Node, 0, len(node.Attributes)+len(node.Children))

		// attrs first, then children
		keys := make([]string, 0, len(node.Attributes))
		for key := range node.Attributes {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			if value := node.Attributes[key]; value == "" {
				children = append(children, g.Attr(key))
			} else {
				children = append(children, g.Attr(key, value))
			}
		}

		for _, child := range node.Children {
			lowered, err := Lower(child)
			if err != nil {
				return nil, err
			}
			children = append(children, lowered)
		}

		return g.El(node.Tag, children...), nil

	case dom.NodeDocument:
		group := make(g.Group, 0, len(node.Children))
		for _, child := range node.Children {
			lowered, err := Lower(child)
			if err != nil {
				return nil, err
			}
			group = append(group, lowered)
		}
		return group, nil

	default:
		return nil, fmt.Errorf("unsupported node type %q", node.Type)
	}
}

// HTML renders a document tree to an HTML string.
func HTML(node *dom.Node) (string, error) {
	lowered, err := Lower(node)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := lowered.Render(&b); err != nil {
		return "", err
	}

	return b.String(), nil
}
