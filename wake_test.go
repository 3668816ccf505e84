package rtsync_test

import (
	"testing"
	"time"

	"github.com/avonfeld/rtsync"
	"github.com/fortytw2/leaktest"
)

func TestWake(t *testing.T) {
	defer leaktest.Check(t)()

	w := rtsync.NewWake[int](0)

	mustSet := func(v int, want bool) {
		t.Helper()
		if got := w.Set(v); got != want {
			t.Errorf("Set(%v): got %v, want %v", v, got, want)
		}
	}

	// Multiple sets do not block; only the first queues a wakeup.
	mustSet(1, true)
	mustSet(2, false)
	mustSet(3, false)

	// The consumer wakes once and observes only the newest snapshot.
	<-w.Ready()
	if got := *w.Latest(); got != 3 {
		t.Errorf("Latest: got %v, want 3", got)
	}

	// Nothing more is pending until the next set.
	select {
	case <-time.After(100 * time.Millisecond):
		// OK, nothing here
	case <-w.Ready():
		t.Error("Ready: unexpected wakeup")
	}

	mustSet(4, true)
	<-w.Ready()
	if got := *w.Latest(); got != 4 {
		t.Errorf("Latest: got %v, want 4", got)
	}

	// A sleeping consumer is woken by a later set.
	got := make(chan int, 1)
	go func() {
		<-w.Ready()
		got <- *w.Latest()
	}()
	time.AfterFunc(5*time.Millisecond, func() { w.Set(7) })

	select {
	case v := <-got:
		if v != 7 {
			t.Errorf("Latest after wakeup: got %v, want 7", v)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for wakeup")
	}
}
