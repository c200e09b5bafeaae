package list

import (
	"go.lepak.sg/intrusive/chops"
)

// Iterator is a bidirectional iterator over a List. It is just a
// node reference, so two Iterators are equal exactly when they are
// positioned on the same node, and the == operator works regardless
// of how each one was produced.
//
// The end of the list is the sentinel: advancing past the last node
// reaches End, and advancing End wraps around to the first node,
// since the list is circular.
//
// Erasing a node invalidates only iterators positioned on that node;
// every other iterator stays valid.
type Iterator[T any] struct {
	node *Node[T]
}

// Begin returns an iterator on the first node,
// or End if the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{node: l.sentinel.next}
}

// End returns the iterator on the sentinel. It is not positioned on
// any data node and must not be dereferenced.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{node: &l.sentinel}
}

// RBegin returns an iterator on the last node,
// or End if the list is empty.
func (l *List[T]) RBegin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{node: l.sentinel.prev}
}

// Next moves the iterator one node forward.
func (it *Iterator[T]) Next() {
	it.node = it.node.next
}

// Prev moves the iterator one node backward.
func (it *Iterator[T]) Prev() {
	it.node = it.node.prev
}

// Data returns the data under the iterator.
// The result is undefined for the end iterator.
func (it Iterator[T]) Data() T {
	return it.node.Data
}

// Node returns the node under the iterator. The caller owns the node
// but must not touch its links.
func (it Iterator[T]) Node() *Node[T] {
	return it.node
}

var _ chops.Iterator[int] = (*Forward[int])(nil)

// Forward iterates a List from front to back in the Next/Item
// protocol of chops.Iterator:
//
//	i := someList.Iterator()
//	for i.Next() {
//		v := i.Item()
//		... do stuff with v ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the list while iterating over it is
// undefined.
type Forward[T any] struct {
	at, end *Node[T]
	done    bool
}

// Iterator returns an iterator yielding the list's data from front
// to back.
func (l *List[T]) Iterator() *Forward[T] {
	l.lazyInit()
	return &Forward[T]{at: &l.sentinel, end: &l.sentinel}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (f *Forward[T]) Next() bool {
	if f == nil || f.done {
		return false
	}
	// the list is circular, so reaching the sentinel again is the
	// end, not a place to wrap around from
	f.at = f.at.next
	f.done = f.at == f.end
	return !f.done
}

// Item returns the current data of the iterator.
func (f *Forward[T]) Item() T {
	return f.at.Data
}

// Coroutine starts coroutine-style iteration over the list.
// See chops.CoIterate for usage.
func (l *List[T]) Coroutine() chops.CoIterator[T] {
	return chops.CoIterate[T](l.Iterator())
}
