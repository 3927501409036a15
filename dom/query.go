package dom

// GetElementByID finds the first element in document order, among root's
// descendants, whose "id" attribute equals id. The root node itself is
// never compared. The second return value is false when no element carries
// that id.
func GetElementByID(root *Node, id string) (*Node, bool) {
	if root == nil {
		return nil, false
	}

	// depth-first, explicit stack; children pushed in reverse so the first
	// child is visited first
	stack := make([]*Node, 0, 16)
	for i := len(root.Children) - 1; i >= 0; i-- {
		stack = append(stack, root.Children[i])
	}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.Type == NodeElement {
			if value, ok := node.Attributes["id"]; ok && value == id {
				return node, true
			}
		}

		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}

	return nil, false
}
