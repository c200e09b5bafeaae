package tree

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrDuplicate is returned by Insert when the tree already holds a
// node with the same data. The tree does not keep duplicate keys.
var ErrDuplicate = errors.New("tree: duplicate data")

// Tree is an intrusive binary search tree over caller-owned nodes.
//
// The zero Tree is empty and ready to use. Tree should not be copied
// after first use, since nodes do not know which Tree they belong to.
//
// Invariants:
//   - At any node N, all data in the subtree rooted at N's left child
//     is less than N.Data, and all data in the subtree rooted at N's
//     right child is greater than N.Data.
//   - Every linked child points back at its parent.
//   - Len is exactly the number of nodes reachable from the root.
type Tree[T constraints.Ordered] struct {
	root  *Node[T]
	count int
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// Empty reports whether the tree has no nodes.
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Clear forgets all nodes at once, resetting the tree to empty.
// The nodes themselves are not visited or unlinked from each other;
// they remain owned by the caller.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.count = 0
}

// Insert links node into the tree. Whatever the node pointed at
// before is discarded: its links are reset before descending.
//
// If the tree already holds node.Data, Insert returns ErrDuplicate
// and the tree is unchanged (apart from the inserted node's own
// links, which stay reset).
func (t *Tree[T]) Insert(node *Node[T]) error {
	node.reset()

	if t.root == nil {
		t.root = node
		t.count++
		return nil
	}

	n, p := t.root, (*Node[T])(nil)
	var cmp Order

	for n != nil {
		cmp = Compare(node.Data, n.Data)
		switch cmp {
		case Less:
			n, p = n.left, n
		case Greater:
			n, p = n.right, n
		case Equal:
			return ErrDuplicate
		default:
			panic("unreachable")
		}
	}

	node.parent = p
	if cmp == Less {
		p.left = node
	} else {
		p.right = node
	}

	t.count++
	return nil
}

// Find searches for data and returns an iterator positioned on the
// node holding it, or End if no node holds data.
func (t *Tree[T]) Find(data T) Iterator[T] {
	n := t.root

	for n != nil {
		switch Compare(data, n.Data) {
		case Less:
			n = n.left
		case Greater:
			n = n.right
		case Equal:
			return Iterator[T]{tree: t, pos: n}
		default:
			panic("unreachable")
		}
	}

	return t.End()
}

// Contains reports whether the tree holds data.
func (t *Tree[T]) Contains(data T) bool {
	return t.Find(data).pos != nil
}

// transplant makes child take n's place under n's parent (or as the
// root), then fully detaches n. child may be nil.
func (t *Tree[T]) transplant(n, child *Node[T]) {
	p := n.parent
	switch {
	case p == nil:
		t.root = child
	case p.left == n:
		p.left = child
	default:
		p.right = child
	}
	if child != nil {
		child.parent = p
	}
	n.reset()
}

// Erase unlinks the node under it from the tree without destroying
// it, and returns the node that was actually unlinked. The caller
// keeps ownership of that node and may reuse it.
//
// When the erased node has two children, its data is swapped with the
// in-order successor and the successor's node (which has at most a
// right child) is the one unlinked. Only the returned node's position
// is disturbed; iterators on any other node stay valid.
//
// Erase panics if it is the end iterator or belongs to another tree.
func (t *Tree[T]) Erase(it Iterator[T]) *Node[T] {
	if it.tree != t {
		panic("tree: erase of iterator from another tree")
	}
	n := it.pos
	if n == nil {
		panic("tree: erase of end iterator")
	}

	switch {
	case n.left == nil && n.right == nil:
		t.transplant(n, nil)

	case n.left == nil:
		t.transplant(n, n.right)

	case n.right == nil:
		t.transplant(n, n.left)

	default:
		succ := n.right.leftmost()
		if succ == n.right {
			// The right child has no left child, so it can take n's
			// place directly, adopting n's left subtree.
			left := n.left
			t.transplant(n, succ)
			succ.left = left
			left.parent = succ
		} else {
			// Swap data into the successor's node, which sits deeper
			// in the tree with at most a right child, and unlink that
			// node instead. This keeps the ordering without a
			// three-way relink of n's neighbors.
			n.Data, succ.Data = succ.Data, n.Data
			t.transplant(succ, succ.right)
			n = succ
		}
	}

	t.count--
	return n
}

// InOrder applies f to each node's data in ascending order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(data T) bool) {
	t.visitInOrder(t.root, f)
}

func (t *Tree[T]) visitInOrder(n *Node[T], f func(data T) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to Iterator, which is not recursive.
	if n == nil {
		return true
	}

	if !t.visitInOrder(n.left, f) {
		return false
	}

	if !f(n.Data) {
		return false
	}

	return t.visitInOrder(n.right, f)
}

// String returns a string representation of the tree.
// A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T constraints.Ordered](
	sb *strings.Builder, n *Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Data))
	sb.WriteRune('\n')

	if n.left != nil {
		printvisit(sb, n.left, prefix, treeLeftBranch, false, n.right != nil)
	}

	if n.right != nil {
		printvisit(sb, n.right, prefix, treeRightBranch, false, false)
	}
}
