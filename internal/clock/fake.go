package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manually advanced Clock for tests. Callbacks registered with
// AfterFunc fire once Advance or Set moves the current time to or past
// their deadline.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	waiters []*fakeWaiter
}

type fakeWaiter struct {
	clock    *Fake
	deadline time.Time
	fn       func()
	stopped  bool
}

// NewFake returns a fake clock set to now.
func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

// Now returns the fake's current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// AfterFunc runs fn on the advancing goroutine once d has elapsed.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	w := &fakeWaiter{deadline: f.Now().Add(d), fn: fn}
	f.register(w)
	return w
}

// Advance moves the fake forward by d and fires everything that became due.
func (f *Fake) Advance(d time.Duration) {
	f.Set(f.Now().Add(d))
}

// Set moves the fake to t and fires everything that became due.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	f.now = t
	var due, pending []*fakeWaiter
	for _, w := range f.waiters {
		if w.stopped {
			continue
		}
		if !w.deadline.After(t) {
			due = append(due, w)
		} else {
			pending = append(pending, w)
		}
	}
	f.waiters = pending
	f.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].deadline.Before(due[j].deadline)
	})
	for _, w := range due {
		w.fn()
	}
}

// Pending reports how many waiters have not fired or been stopped.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, w := range f.waiters {
		if !w.stopped {
			n++
		}
	}
	return n
}

func (f *Fake) register(w *fakeWaiter) {
	w.clock = f
	f.mu.Lock()
	f.waiters = append(f.waiters, w)
	f.mu.Unlock()
}

// Stop cancels the waiter. It reports whether the call prevented it firing.
func (w *fakeWaiter) Stop() bool {
	w.clock.mu.Lock()
	defer w.clock.mu.Unlock()
	for _, p := range w.clock.waiters {
		if p == w && !w.stopped {
			w.stopped = true
			return true
		}
	}
	return false
}
