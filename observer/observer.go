// Package observer implements the classic Observer pattern on top of
// the intrusive list: an Observable broadcasts notifications to every
// attached Observer.
//
// Attachment is intrusive. Each observer is linked into the
// Observable through a caller-owned Handle, so attaching and
// detaching never allocate, and an observer may detach itself while
// a broadcast is in progress.
//
// See Design Patterns, Gamma et al, the Observer pattern, pp 293-303.
package observer

import (
	"go.lepak.sg/intrusive/list"
)

// Observer receives notifications from an Observable.
// Notify is expected to have side effects; it may even detach the
// observer's own Handle from the Observable mid-broadcast.
type Observer[T any] interface {
	Notify(T)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc[T any] func(T)

func (f ObserverFunc[T]) Notify(notification T) {
	f(notification)
}

// Handle links one Observer into one Observable. The caller owns the
// Handle, usually by embedding it in the same struct that implements
// Observer. A Handle may only be attached to one Observable at a
// time, and the zero Handle is ready to use.
type Handle[T any] struct {
	node list.Node[Observer[T]]
}

// Attached reports whether the handle is attached to an Observable.
func (h *Handle[T]) Attached() bool {
	return h.node.Linked()
}

// Observable dispatches notifications to attached observers.
// The zero Observable is ready to use. It is not safe for concurrent
// use; all attaching, detaching, and notifying must happen on one
// goroutine.
type Observable[T any] struct {
	observers list.List[Observer[T]]
}

// Attach subscribes obs to notifications, linked through h.
// If h is already attached anywhere it is detached first.
// Observers are notified in attachment order.
func (o *Observable[T]) Attach(h *Handle[T], obs Observer[T]) {
	h.node.Data = obs
	o.observers.PushBack(&h.node)
}

// Detach unsubscribes the observer linked through h.
// Detaching an unattached handle is a no-op.
// Detach may be called from inside a Notify callback.
func (o *Observable[T]) Detach(h *Handle[T]) {
	h.node.Remove()
}

// NotifyAll broadcasts notification to every attached observer.
//
// The iteration advances before each observer is invoked, so an
// observer that detaches itself during its own Notify does not
// disturb the broadcast. Detaching any other observer during a
// broadcast is not supported. Observers attached at the back during
// a broadcast are notified in the same broadcast.
func (o *Observable[T]) NotifyAll(notification T) {
	it, end := o.observers.Begin(), o.observers.End()
	for it != end {
		obs := it.Data()
		// Step off the node first: obs may detach itself,
		// which would invalidate an iterator still on it.
		it.Next()
		obs.Notify(notification)
	}
}

// Observers counts the attached observers. Like list.Len, O(n).
func (o *Observable[T]) Observers() int {
	return o.observers.Len()
}
