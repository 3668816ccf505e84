package rtsync

import "sync/atomic"

// A Shared bundles a canonical value of type T with a [Latest] channel
// that carries snapshots of it to a consumer goroutine. The producer
// edits the canonical value in place through Data and calls Publish to
// make a round of edits visible; the consumer checks HasUpdate once
// per work unit and, when it reports true, calls Latest to swap in the
// newest snapshot.
//
// The typical shape is a configuration or editing surface on the
// producer side and a periodic real-time callback on the consumer
// side:
//
//	if state.HasUpdate() {
//		cur = state.Latest() // safe to use until the next Latest
//	}
//
// A Shared supports exactly one producer goroutine and one consumer
// goroutine, like the channel it wraps.
type Shared[T any] struct {
	data    T
	ch      *Latest[T]
	pending atomic.Bool
	cur     *T // consumer's current slot, refreshed by Latest
}

// NewShared constructs a Shared holding init with an n-slot channel
// (0 selects [DefaultCap]; n < 2 panics, see [NewLatest]). The initial
// value is published immediately, so HasUpdate reports true until the
// consumer's first Latest.
func NewShared[T any](init T, n int) *Shared[T] {
	s := &Shared[T]{data: init, ch: NewLatest[T](n)}
	s.Publish()
	return s
}

// Data returns a pointer to the canonical value for in-place editing.
// No synchronization is applied: call it from the producer goroutine
// only, and call Publish afterward to make the edits visible to the
// consumer.
func (s *Shared[T]) Data() *T { return &s.data }

// Publish copies the current canonical value into the channel and
// flags an update as pending. Call it from the producer goroutine
// after every round of edits the consumer should see.
func (s *Shared[T]) Publish() {
	s.ch.Publish(s.data)
	s.pending.Store(true)
}

// HasUpdate reports whether a Publish has occurred since the last call
// to Latest. It does not alter any state, so the consumer can use it
// as a cheap peek at the start of each work unit.
func (s *Shared[T]) HasUpdate() bool { return s.pending.Load() }

// Latest claims the newest published snapshot and returns a pointer to
// it, clearing the pending flag. The pointer stays valid until the
// next call to Latest. Call it from the consumer goroutine only.
func (s *Shared[T]) Latest() *T {
	s.pending.Store(false)
	s.cur = s.ch.Take()
	return s.cur
}

// Current returns the pointer produced by the most recent call to
// Latest without claiming a new snapshot. NewShared publishes but does
// not take, so Current is nil until the consumer's first Latest.
func (s *Shared[T]) Current() *T { return s.cur }
