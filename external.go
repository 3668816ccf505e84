package rtsync

// An External offers the consumer-side contract of [Shared] for a
// value that is owned and mutated by code outside the channel; only a
// reference to it is held. The producer mutates the external value on
// its own schedule and calls Publish to snapshot it; the consumer
// calls Begin at the start of every work unit to refresh its view.
//
// External keeps no pending flag: liveness tracking is left to the
// caller, and the consumer is expected to call Begin (or Latest)
// unconditionally each work unit.
type External[T any] struct {
	data *T
	ch   *Latest[T]
	cur  *T // consumer's current slot, refreshed by Begin
}

// NewExternal constructs an External referring to data, with an n-slot
// channel (0 selects [DefaultCap]; n < 2 panics, see [NewLatest]). The
// current contents of data are published immediately.
func NewExternal[T any](data *T, n int) *External[T] {
	e := &External[T]{data: data, ch: NewLatest[T](n)}
	e.Publish()
	return e
}

// Data returns the externally owned value. Producer side only.
func (e *External[T]) Data() *T { return e.data }

// Publish copies the current contents of the external value into the
// channel. The caller is responsible for the value being in a
// consistent state at the moment of the call. Call Publish from the
// producer goroutine only.
func (e *External[T]) Publish() { e.ch.Publish(*e.data) }

// Begin claims the newest published snapshot for the coming work unit,
// refreshing the pointer reported by Current. Call it from the
// consumer goroutine at the start of every work unit.
func (e *External[T]) Begin() { e.cur = e.ch.Take() }

// Latest is Begin followed by Current: it claims the newest snapshot
// and returns a pointer to it, valid until the next Begin or Latest.
func (e *External[T]) Latest() *T {
	e.Begin()
	return e.cur
}

// Current returns the pointer produced by the most recent Begin or
// Latest, or nil if the consumer has not begun a work unit yet.
func (e *External[T]) Current() *T { return e.cur }
