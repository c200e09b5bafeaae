package observer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder is an Observer that remembers what it was told,
// carrying its own intrusive Handle.
type recorder struct {
	handle Handle[string]
	name   string
	got    []string
}

func (r *recorder) Notify(notification string) {
	r.got = append(r.got, notification)
}

func TestNotifyAll(t *testing.T) {
	var subject Observable[string]
	a := &recorder{name: "a"}
	b := &recorder{name: "b"}
	c := &recorder{name: "c"}

	subject.Attach(&a.handle, a)
	subject.Attach(&b.handle, b)
	subject.Attach(&c.handle, c)
	assert.Equal(t, 3, subject.Observers())

	subject.NotifyAll("one")
	subject.NotifyAll("two")

	for _, r := range []*recorder{a, b, c} {
		assert.Equal(t, []string{"one", "two"}, r.got, r.name)
		assert.True(t, r.handle.Attached(), r.name)
	}
}

func TestNotifyAll_NoObservers(t *testing.T) {
	var subject Observable[string]
	assert.Zero(t, subject.Observers())
	subject.NotifyAll("nobody is listening")
}

func TestDetach(t *testing.T) {
	var subject Observable[string]
	a := &recorder{name: "a"}
	b := &recorder{name: "b"}

	subject.Attach(&a.handle, a)
	subject.Attach(&b.handle, b)

	subject.Detach(&a.handle)
	assert.False(t, a.handle.Attached())
	assert.True(t, b.handle.Attached())
	assert.Equal(t, 1, subject.Observers())

	subject.NotifyAll("after")
	assert.Empty(t, a.got)
	assert.Equal(t, []string{"after"}, b.got)

	// detaching twice is a no-op
	subject.Detach(&a.handle)
	assert.Equal(t, 1, subject.Observers())
}

// selfDetacher detaches itself on the first notification it sees.
type selfDetacher struct {
	handle  Handle[string]
	subject *Observable[string]
	got     []string
}

func (s *selfDetacher) Notify(notification string) {
	s.got = append(s.got, notification)
	s.subject.Detach(&s.handle)
}

func TestNotifyAll_SelfDetachMidBroadcast(t *testing.T) {
	var subject Observable[string]

	before := &recorder{name: "before"}
	leaver := &selfDetacher{subject: &subject}
	after := &recorder{name: "after"}

	subject.Attach(&before.handle, before)
	subject.Attach(&leaver.handle, leaver)
	subject.Attach(&after.handle, after)

	// the leaver detaches itself mid-broadcast; the broadcast must
	// still reach the observer behind it
	subject.NotifyAll("first")

	assert.Equal(t, []string{"first"}, before.got)
	assert.Equal(t, []string{"first"}, leaver.got)
	assert.Equal(t, []string{"first"}, after.got)
	assert.False(t, leaver.handle.Attached())
	assert.Equal(t, 2, subject.Observers())

	subject.NotifyAll("second")
	assert.Equal(t, []string{"first"}, leaver.got)
	assert.Equal(t, []string{"first", "second"}, after.got)
}

func TestObserverFunc(t *testing.T) {
	var subject Observable[int]
	var handle Handle[int]

	var sum int
	subject.Attach(&handle, ObserverFunc[int](func(n int) {
		sum += n
	}))

	subject.NotifyAll(1)
	subject.NotifyAll(2)
	assert.Equal(t, 3, sum)
}

func TestAttach_MovesHandle(t *testing.T) {
	var first, second Observable[string]
	a := &recorder{name: "a"}

	first.Attach(&a.handle, a)
	// attaching the same handle elsewhere moves it, like pushing a
	// linked node onto another list
	second.Attach(&a.handle, a)

	assert.Zero(t, first.Observers())
	assert.Equal(t, 1, second.Observers())

	first.NotifyAll("from first")
	second.NotifyAll("from second")
	assert.Equal(t, []string{"from second"}, a.got)
}
