package rtsync

// A Wake pairs a [Latest] channel with a level-triggered signal so
// that a consumer which is allowed to block can sleep until a new
// snapshot arrives. It is meant for off-path consumers such as
// background refreshers or tooling; a real-time consumer should poll a
// [Shared] instead and never touch a channel receive.
//
// A producer calls Set to publish a snapshot and ring the signal. The
// signal does not queue: while one wakeup is pending, further Sets
// replace the snapshot but are otherwise discarded, preserving the
// latest-wins contract of the underlying channel. Set does not block.
type Wake[T any] struct {
	ch   *Latest[T]
	bell chan struct{}
}

// NewWake constructs a Wake with an n-slot channel (0 selects
// [DefaultCap]; n < 2 panics, see [NewLatest]).
func NewWake[T any](n int) *Wake[T] {
	return &Wake[T]{ch: NewLatest[T](n), bell: make(chan struct{}, 1)}
}

// Set publishes v as the newest snapshot and reports whether a wakeup
// was queued (true) or an earlier wakeup was still pending (false).
// Either way v becomes the snapshot the consumer will observe. Set
// does not block.
func (w *Wake[T]) Set(v T) bool {
	w.ch.Publish(v)
	select {
	case w.bell <- struct{}{}:
		return true
	default:
		return false
	}
}

// Ready returns a channel that delivers a signal when at least one Set
// has occurred since the last receive. After receiving, call Latest to
// claim the snapshot; further receives block until the next Set.
func (w *Wake[T]) Ready() <-chan struct{} { return w.bell }

// Latest claims the newest published snapshot and returns a pointer to
// it, valid until the next call to Latest. Consumer goroutine only.
func (w *Wake[T]) Latest() *T { return w.ch.Take() }
