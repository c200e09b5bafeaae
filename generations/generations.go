// Package generations is a small tree-transformation exercise:
// given a binary tree, link every node to its right-hand neighbor in
// the same generation (the same depth), producing one singly linked
// list per level.
//
// Only the root's generation is assumed linked at the start (a root
// has no siblings). Each generation is then walked through those
// sibling links to stitch together the generation below it, so the
// whole transform visits every node once and allocates nothing.
package generations

// Node is a binary tree node with an extra sibling link.
//
// Before LinkGenerations all NextSibling links should be nil. After
// it, every node's NextSibling points to the nearest node to its
// right in the same generation, or is nil for the rightmost node of
// a generation.
type Node struct {
	Data int

	Left, Right *Node

	NextSibling *Node
}

// LinkGenerations walks the tree generation by generation, linking
// the children of each generation horizontally. A nil root is a
// no-op.
func LinkGenerations(root *Node) {
	for level := root; level != nil; {
		// Walk the current generation through the sibling links made
		// on the previous pass, chaining together all its children.
		var head, tail *Node

		for n := level; n != nil; n = n.NextSibling {
			for _, child := range [2]*Node{n.Left, n.Right} {
				if child == nil {
					continue
				}
				if tail == nil {
					head = child
				} else {
					tail.NextSibling = child
				}
				tail = child
			}
		}

		level = head
	}
}

// ForEach applies f to every node in-order.
// Useful for checking that a transform did not disturb the tree.
func ForEach(root *Node, f func(*Node)) {
	if root == nil {
		return
	}
	ForEach(root.Left, f)
	f(root)
	ForEach(root.Right, f)
}

// Test payload helpers: a node's expected position is packed into
// Data, the generation number in the upper 16 bits and the column
// within the generation in the lower 16.

// NewNode returns a leafless node carrying its own row and column.
func NewNode(row, column int) *Node {
	return &Node{
		Data: (row&0xffff)<<16 | column&0xffff,
	}
}

// Row unpacks the generation number from data.
func Row(data int) int {
	return data >> 16 & 0xffff
}

// Column unpacks the column from data.
func Column(data int) int {
	return data & 0xffff
}
