package tree

import (
	"go.lepak.sg/intrusive/chops"
	"golang.org/x/exp/constraints"
)

// Iterator is a bidirectional iterator over a Tree. It is a small
// value: a tree reference plus a position. Two Iterators are equal
// exactly when they refer to the same node of the same tree, so the
// == operator works regardless of how each one was produced.
//
// A nil position is the end in both directions: calling Next on the
// end iterator moves to the smallest node, and calling Prev on it
// moves to the largest. This makes reverse iteration symmetric with
// forward iteration:
//
//	for it := t.End(); ; {
//		it.Prev()
//		if it == t.End() {
//			break
//		}
//		... it.Data() ...
//	}
//
// Erasing a node invalidates only iterators positioned on the node
// that Erase returns; every other iterator stays valid.
type Iterator[T constraints.Ordered] struct {
	tree *Tree[T]
	pos  *Node[T]
}

// Begin returns an iterator on the smallest node,
// or End if the tree is empty.
func (t *Tree[T]) Begin() Iterator[T] {
	return Iterator[T]{tree: t, pos: t.root.leftmost()}
}

// End returns the past-the-end iterator.
// It is not positioned on any node and must not be dereferenced.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{tree: t}
}

// Next moves the iterator to the in-order successor. From the end it
// moves to the smallest node; from the largest node it moves to the
// end.
func (it *Iterator[T]) Next() {
	if it.pos == nil {
		it.pos = it.tree.root.leftmost()
	} else {
		it.pos = it.pos.next()
	}
}

// Prev moves the iterator to the in-order predecessor. From the end
// it moves to the largest node; from the smallest node it moves to
// the end.
func (it *Iterator[T]) Prev() {
	if it.pos == nil {
		it.pos = it.tree.root.rightmost()
	} else {
		it.pos = it.pos.prev()
	}
}

// Data returns the data under the iterator.
// It panics if the iterator is the end iterator.
func (it Iterator[T]) Data() T {
	return it.pos.Data
}

// Node returns the node under the iterator, or nil for the end
// iterator. The caller owns the node but must not touch its links.
func (it Iterator[T]) Node() *Node[T] {
	return it.pos
}

var _ chops.Iterator[int] = (*InOrder[int])(nil)
var _ chops.Iterator[int] = (*InOrderReverse[int])(nil)

// InOrder is a forward iterator over a Tree in the Next/Item
// protocol of chops.Iterator:
//
//	i := someTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is
// undefined.
type InOrder[T constraints.Ordered] struct {
	it   Iterator[T]
	done bool
}

// InOrderIterator returns an iterator yielding the tree's data in
// ascending order.
func (t *Tree[T]) InOrderIterator() *InOrder[T] {
	return &InOrder[T]{it: t.End()}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T]) Next() bool {
	if i.done {
		// don't wrap around to the smallest node again
		return false
	}
	i.it.Next()
	i.done = i.it.pos == nil
	return !i.done
}

// Item returns the current data of the iterator.
func (i *InOrder[T]) Item() T {
	return i.it.Data()
}

// InOrderReverse is like InOrder but yields the tree's data from the
// largest to the smallest.
type InOrderReverse[T constraints.Ordered] struct {
	it   Iterator[T]
	done bool
}

// InOrderReverseIterator returns an iterator yielding the tree's
// data in descending order.
func (t *Tree[T]) InOrderReverseIterator() *InOrderReverse[T] {
	return &InOrderReverse[T]{it: t.End()}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrderReverse[T]) Next() bool {
	if i.done {
		return false
	}
	i.it.Prev()
	i.done = i.it.pos == nil
	return !i.done
}

// Item returns the current data of the iterator.
func (i *InOrderReverse[T]) Item() T {
	return i.it.Data()
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop is called or the iteration is finished.
func (t *Tree[T]) InOrderCoroutine() chops.CoIterator[T] {
	return chops.CoIterate[T](t.InOrderIterator())
}
