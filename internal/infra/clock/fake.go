package clock

import (
	"sync"
	"time"
)

// Fake is a virtual-time Scheduler for tests.
// Callbacks only run inside Advance, in order of due time; timers due at the
// same instant run in creation order. A repeating timer keeps its creation
// order for every firing.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*fakeTimer
}

// NewFake creates a fake clock starting at start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the virtual time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// AfterFunc schedules fn to run once d has elapsed on the virtual clock.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	return f.add(d, 0, fn)
}

// Every schedules fn to run each time d elapses on the virtual clock.
// It panics if d is not positive, like time.NewTicker.
func (f *Fake) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		panic("clock: non-positive interval for Every")
	}
	return f.add(d, d, fn)
}

// Advance moves the virtual clock forward by d, running due callbacks.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)

	for {
		t := f.nextLocked(target)
		if t == nil {
			break
		}
		f.now = t.due
		if t.period > 0 {
			t.due = t.due.Add(t.period)
		} else {
			t.stopped = true
			f.removeLocked(t)
		}

		f.mu.Unlock()
		t.fn()
		f.mu.Lock()
	}

	f.now = target
	f.mu.Unlock()
}

// Pending returns the number of active timers.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

func (f *Fake) add(d, period time.Duration, fn func()) *fakeTimer {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	t := &fakeTimer{
		clock:  f,
		due:    f.now.Add(d),
		period: period,
		order:  f.seq,
		fn:     fn,
	}
	f.timers = append(f.timers, t)
	return t
}

// nextLocked returns the earliest timer due at or before target.
func (f *Fake) nextLocked(target time.Time) *fakeTimer {
	var next *fakeTimer
	for _, t := range f.timers {
		if t.due.After(target) {
			continue
		}
		if next == nil || t.due.Before(next.due) || (t.due.Equal(next.due) && t.order < next.order) {
			next = t
		}
	}
	return next
}

func (f *Fake) removeLocked(t *fakeTimer) {
	for i, ft := range f.timers {
		if ft == t {
			f.timers = append(f.timers[:i], f.timers[i+1:]...)
			return
		}
	}
}

type fakeTimer struct {
	clock   *Fake
	due     time.Time
	period  time.Duration
	order   uint64
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped {
		return false
	}
	t.stopped = true
	t.clock.removeLocked(t)
	return true
}
