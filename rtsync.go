// Package rtsync provides primitives for handing snapshots of a value
// from a producer goroutine to a consumer goroutine whose execution
// path must never block, spin on a lock, or allocate, such as a
// periodic real-time callback.
//
// The core type is [Latest], a lock-free single-producer single-consumer
// channel that always exposes the most recently published snapshot and
// silently coalesces the rest. [Shared] and [External] wrap a Latest
// around a canonical value, owned and unowned respectively, and [Wake]
// adds a level-triggered signal for consumers that are allowed to
// block.
package rtsync

import "sync/atomic"

// DefaultCap is the slot capacity used when a constructor is given a
// capacity of zero.
const DefaultCap = 5

// A Latest is a lock-free channel that hands snapshots of a value of
// type T from one producer goroutine to one consumer goroutine. Only
// the newest published snapshot is observable: snapshots published
// between two Take calls are coalesced away. This makes it suitable
// for values the consumer only ever needs the current version of, and
// unsuitable as a message queue.
//
// Neither Publish nor Take blocks, and neither allocates, so Take is
// safe to call from a hard real-time callback without risking priority
// inversion or unbounded latency.
//
// A Latest supports exactly one producer goroutine and one consumer
// goroutine. Use by additional goroutines on either side is not
// detected and not supported.
type Latest[T any] struct {
	slots []T // fixed backing storage, allocated once at construction

	write  int          // next slot to write, touched only by the producer
	latest atomic.Int64 // newest published slot; producer writes, consumer reads
	hold   atomic.Int64 // slot the consumer holds; consumer writes, producer reads
}

// NewLatest constructs a channel with n slots. If n == 0, [DefaultCap]
// is used. NewLatest panics if n is 1 or negative: with a single slot
// the producer's slot-selection scan could never avoid the slot the
// consumer holds. With n == 2 the producer can be forced to reuse the
// slot it just published when the consumer has not advanced, weakening
// the held-slot guarantee under concurrent timing; use 3 or more slots
// (or the default) when both sides run concurrently.
//
// Until the first Publish, Take returns a pointer to a zero value
// of T.
func NewLatest[T any](n int) *Latest[T] {
	if n == 0 {
		n = DefaultCap
	}
	if n < 2 {
		panic("rtsync: channel capacity must be at least 2")
	}
	// Slot 0 holds the initial (zero) snapshot; the first write lands
	// in slot 1 so it can never race the consumer's initial hold.
	return &Latest[T]{slots: make([]T, n), write: 1}
}

// Publish records v as the newest available snapshot. It copies v into
// a free slot, marks that slot as the latest, and then picks the next
// write target, skipping the slot the consumer currently holds. The
// held slot is therefore never overwritten, no matter how far the
// producer runs ahead. Publish never blocks; at worst the target scan
// makes one step per slot.
//
// Call Publish from the producer goroutine only.
func (l *Latest[T]) Publish(v T) {
	loc := l.write
	l.slots[loc] = v

	// Publication point: the atomic store orders the slot write above
	// before the consumer's matching load in Take.
	l.latest.Store(int64(loc))

	for {
		loc++
		if loc == len(l.slots) {
			loc = 0
		}
		if int64(loc) != l.hold.Load() {
			break
		}
	}
	l.write = loc
}

// Take returns a pointer to the newest published snapshot and pins its
// slot against overwrite. The pointer stays valid, and the snapshot it
// refers to stays unchanged, until the next call to Take; after that
// the slot may be reused by the producer. Repeated calls with no
// intervening Publish return the same slot. Take never blocks.
//
// Call Take from the consumer goroutine only, and do not retain the
// returned pointer past the next Take.
func (l *Latest[T]) Take() *T {
	pos := l.latest.Load()
	l.hold.Store(pos)
	return &l.slots[pos]
}

// Cap reports the slot capacity of the channel.
func (l *Latest[T]) Cap() int { return len(l.slots) }
