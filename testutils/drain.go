// Package testutils holds helpers shared by tests in this module.
package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/intrusive/chops"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Drain expects to receive data in order from ch, then expects
// ch to be closed.
// The channel must already be filled with the expected data.
// This will not work if the producer is still sending
// when this is called.
func Drain[T any](t TestT, data []T, ch <-chan T) {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		chops.TryRecv(ch).Match(
			func(el T) {
				assert.Equal(t, datum, el)
			},
			func() {
				t.Errorf("channel closed early, expecting %v", datum)
			},
			func() {
				t.Errorf("channel was empty, expecting i=%d %v", i, datum)
			},
		)
	}

	chops.TryRecv(ch).Match(
		func(el T) {
			t.Errorf("channel should be closed, but received: %v", el)
		},
		func() {},
		func() {
			t.Error("at the end of draining, channel was empty but unclosed")
		},
	)
}

// DrainBlocking is like Drain, but tolerates a producer that is
// still sending: each receive may block for up to wait.
// After the expected data, the channel must be closed within wait.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, wait time.Duration) {
	t.Logf("draining (blocking): expecting %v", data)
	timeout := time.NewTimer(wait)
	defer timeout.Stop()

	for i, datum := range data {
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting %v", datum)
				return
			}
			assert.Equal(t, datum, el)
		case <-timeout.C:
			t.Errorf("timed out waiting for i=%d %v", i, datum)
			return
		}
	}

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	case <-timeout.C:
		t.Error("timed out waiting for the channel to close")
	}
}
