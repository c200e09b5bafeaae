// Package tree provides an intrusive binary search tree.
//
// The tree never allocates: every Node is created and owned by the
// caller (for example as part of a larger struct, or in a slice of
// nodes), and the tree only links and unlinks them. A node may belong
// to at most one tree at a time.
//
// The tree is safe for concurrent reads (searching, iterating, etc)
// but not for concurrent reads and writes (inserting, erasing).
//
// It is not self-balancing: the shape of the tree, and therefore the
// cost of every operation, is determined entirely by insertion order.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is one element of a Tree. The caller owns the Node's storage;
// Data may be read at any time but must not be changed while the node
// is linked into a tree, as that would break the ordering invariant.
type Node[T constraints.Ordered] struct {
	Data T

	parent, left, right *Node[T]
}

// NodeOf returns an unattached Node holding data.
func NodeOf[T constraints.Ordered](data T) *Node[T] {
	return &Node[T]{
		Data: data,
	}
}

// reset detaches the node from everything it points at.
// It does not fix up the neighbors.
func (n *Node[T]) reset() {
	n.parent, n.left, n.right = nil, nil, nil
}

// leftmost walks left links to the smallest node of the subtree
// rooted at n. Safe to call on nil.
func (n *Node[T]) leftmost() *Node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost walks right links to the largest node of the subtree
// rooted at n. Safe to call on nil.
func (n *Node[T]) rightmost() *Node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns the in-order successor of n, or nil if n is the
// largest node. Safe to call on nil.
func (n *Node[T]) next() *Node[T] {
	if n == nil {
		return nil
	}

	// With a right subtree, the successor is its smallest node.
	if n.right != nil {
		return n.right.leftmost()
	}

	// Otherwise ascend while we are a right child; the first ancestor
	// reached from its left side is the successor.
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// prev returns the in-order predecessor of n, or nil if n is the
// smallest node. Safe to call on nil.
func (n *Node[T]) prev() *Node[T] {
	if n == nil {
		return nil
	}

	if n.left != nil {
		return n.left.rightmost()
	}

	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}
