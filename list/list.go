// Package list provides an intrusive doubly linked list.
//
// The list never allocates: every Node is created and owned by the
// caller, and the list only links and unlinks them. A node may belong
// to at most one list at a time; pushing a node that is linked
// elsewhere silently unlinks it first, so node storage can be moved
// between lists freely.
//
// The list is circular through a sentinel node held inside the List
// itself. The sentinel carries no data and is never yielded by
// iteration; it is the End of the list in both directions.
package list

// Node is one element of a List. The caller owns the Node's storage.
//
// A detached node points next and prev at itself. The zero Node,
// whose links are still nil, is also treated as detached, so nodes
// embedded in caller structs work without explicit initialization.
type Node[T any] struct {
	Data T

	next, prev *Node[T]
}

// NodeOf returns a detached Node holding data.
func NodeOf[T any](data T) *Node[T] {
	n := &Node[T]{Data: data}
	n.next, n.prev = n, n
	return n
}

// Linked reports whether the node is part of some list.
func (n *Node[T]) Linked() bool {
	return n.next != nil && n.next != n
}

// Remove unlinks the node from whatever list holds it, relinking its
// neighbors around it, and leaves the node detached (self-looped).
// The node is not destroyed; the caller keeps ownership.
// Removing a detached node is a no-op.
func (n *Node[T]) Remove() {
	n.unlink()
	n.next = n
	n.prev = n
}

// unlink points the node's neighbors around it. The node's own links
// still point into the original list afterwards; see Remove.
func (n *Node[T]) unlink() {
	if n.next == nil {
		// zero-value node, never linked
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
}

// insertBefore links node immediately before n,
// unlinking it from wherever it was first.
func (n *Node[T]) insertBefore(node *Node[T]) {
	node.unlink()
	node.next = n
	node.prev = n.prev
	n.prev.next = node
	n.prev = node
}

// insertAfter links node immediately after n,
// unlinking it from wherever it was first.
func (n *Node[T]) insertAfter(node *Node[T]) {
	node.unlink()
	node.next = n.next
	node.prev = n
	n.next.prev = node
	n.next = node
}

// List is an intrusive doubly linked list over caller-owned nodes.
//
// The zero List is empty and ready to use, but a List must not be
// copied after first use: nodes link to the sentinel inside it.
//
// Invariant: for every node N reachable in the list, including the
// sentinel, N.next.prev == N and N.prev.next == N.
type List[T any] struct {
	sentinel Node[T]
}

// New returns an empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.lazyInit()
	return l
}

func (l *List[T]) lazyInit() {
	if l.sentinel.next == nil {
		l.sentinel.next = &l.sentinel
		l.sentinel.prev = &l.sentinel
	}
}

// Empty reports whether the list has no nodes.
func (l *List[T]) Empty() bool {
	return l.sentinel.next == nil || l.sentinel.next == &l.sentinel
}

// Len counts the nodes in the list.
//
// Unlike most list containers this is O(n), not O(1): the list
// deliberately keeps no counter, so that Splice can move a whole
// range between lists in constant time. Do not "fix" this by adding
// a counter field.
func (l *List[T]) Len() int {
	l.lazyInit()
	n := 0
	for it := l.sentinel.next; it != &l.sentinel; it = it.next {
		n++
	}
	return n
}

// Front returns the data of the first node.
// Calling Front on an empty list is undefined; check Empty first.
func (l *List[T]) Front() T {
	return l.sentinel.next.Data
}

// Back returns the data of the last node.
// Calling Back on an empty list is undefined; check Empty first.
func (l *List[T]) Back() T {
	return l.sentinel.prev.Data
}

// PushFront links node at the front of the list.
// If node is linked into any list it is unlinked first.
func (l *List[T]) PushFront(node *Node[T]) {
	l.lazyInit()
	l.sentinel.insertAfter(node)
}

// PushBack links node at the back of the list.
// If node is linked into any list it is unlinked first.
func (l *List[T]) PushBack(node *Node[T]) {
	l.lazyInit()
	l.sentinel.insertBefore(node)
}

// PopFront unlinks the first node and returns it, or nil if the list
// is empty. The node is not destroyed.
func (l *List[T]) PopFront() *Node[T] {
	if l.Empty() {
		return nil
	}
	n := l.sentinel.next
	n.Remove()
	return n
}

// PopBack unlinks the last node and returns it, or nil if the list
// is empty. The node is not destroyed.
func (l *List[T]) PopBack() *Node[T] {
	if l.Empty() {
		return nil
	}
	n := l.sentinel.prev
	n.Remove()
	return n
}

// Insert links node before the position pos and returns an iterator
// on the inserted node. If node is linked into any list it is
// unlinked first.
func (l *List[T]) Insert(pos Iterator[T], node *Node[T]) Iterator[T] {
	l.lazyInit()
	pos.node.insertBefore(node)
	return Iterator[T]{node: node}
}

// Splice moves the range [first, last) out of whatever list holds it
// and links it before pos, preserving the range's relative order.
// This is O(1): only the four boundary links are retargeted, interior
// nodes are never visited. The origin list loses the nodes.
//
// If first == last the range is empty and pos is returned unchanged.
// Otherwise the returned iterator is first, now linked before pos.
//
// To move the entirety of list a to the front of list b:
//
//	b.Splice(b.Begin(), a.Begin(), a.End())
func (l *List[T]) Splice(pos, first, last Iterator[T]) Iterator[T] {
	if first == last {
		return pos
	}
	l.lazyInit()

	// tail is the last node actually moved.
	tail := last.node.prev

	// Close the origin list around the range.
	first.node.prev.next = last.node
	last.node.prev = first.node.prev

	// Stitch the range in before pos.
	at := pos.node
	at.prev.next = first.node
	first.node.prev = at.prev
	tail.next = at
	at.prev = tail

	return first
}

// Erase unlinks the node at pos, leaving it detached, and returns an
// iterator on the node that followed it, End if it was the last.
// The node is not destroyed; the caller keeps ownership.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	next := pos.node.next
	pos.node.Remove()
	return Iterator[T]{node: next}
}
