package dom

// NodeType identifies the kind of node in the document tree,
// e.g. "DOCUMENT", "ELEMENT", "TEXT".
type NodeType string

const (
	// NodeDocument is the synthetic root of the tree. There is exactly one
	// per parsed input and it never appears below another node.
	NodeDocument NodeType = "DOCUMENT"

	// NodeElement is a markup element with a tag name from the known-tag
	// vocabulary, optional attributes and child nodes.
	NodeElement NodeType = "ELEMENT"

	// NodeText is a leaf holding a trimmed, non-empty run of character data.
	NodeText NodeType = "TEXT"
)

// DocumentTag is the tag name carried by the root node.
const DocumentTag = "document"

// Node is a single vertex of the parsed tree. Children are owned by their
// parent through forward links only; the tree carries no back references.
type Node struct {
	// Type indicates whether this node is the document root, an element,
	// or plain text.
	Type NodeType `json:"type"`

	// Tag is the element's tag name, always lower case and always a member
	// of the known-tag vocabulary. The root node's Tag is "document".
	// Empty for text nodes.
	Tag string `json:"tag,omitempty"`

	// Attributes maps attribute names to their values. A boolean attribute
	// (present without a value) is stored with an empty string value.
	// nil when the element has no attributes. Always nil for text nodes
	// and the root.
	Attributes map[string]string `json:"attributes,omitempty"`

	// Text is the trimmed character data of a text node. Empty for every
	// other node type.
	Text string `json:"text,omitempty"`

	// Children holds the node's child nodes in document order.
	// Text nodes and void elements never have children.
	Children []*Node `json:"children,omitempty"`
}

func newTextNode(text string) *Node {
	return &Node{Type: NodeText, Text: text}
}

func newElementNode(tag string, attrs map[string]string) *Node {
	return &Node{Type: NodeElement, Tag: tag, Attributes: attrs}
}
