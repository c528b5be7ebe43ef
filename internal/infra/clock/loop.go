package clock

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrLoopStopped is returned when work is posted after the loop exited.
var ErrLoopStopped = errors.New("clock loop stopped")

// Loop is a wall-clock Scheduler that executes every callback on the
// goroutine running Run. Work from other goroutines enters through Post.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop with the given task buffer size.
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Run executes posted tasks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task := <-l.tasks:
			task()
		}
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Post queues f to run on the loop goroutine.
// Must not be called from the loop goroutine while the buffer may be full.
func (l *Loop) Post(f func()) error {
	select {
	case <-l.done:
		return ErrLoopStopped
	default:
	}

	select {
	case <-l.done:
		return ErrLoopStopped
	case l.tasks <- f:
		return nil
	}
}

// Now returns the wall-clock time.
func (l *Loop) Now() time.Time {
	return time.Now()
}

// AfterFunc runs f on the loop once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		_ = l.Post(func() {
			// A Stop issued after the firing was queued still wins.
			if t.stopped.Swap(true) {
				return
			}
			f()
		})
	})
	return t
}

// Every runs f on the loop each time d elapses.
func (l *Loop) Every(d time.Duration, f func()) Timer {
	t := &loopTimer{quit: make(chan struct{})}
	ticker := time.NewTicker(d)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.quit:
				return
			case <-l.done:
				return
			case <-ticker.C:
				err := l.Post(func() {
					if t.stopped.Load() {
						return
					}
					f()
				})
				if err != nil {
					return
				}
			}
		}
	}()

	return t
}

type loopTimer struct {
	stopped atomic.Bool
	timer   *time.Timer
	quit    chan struct{}
}

func (t *loopTimer) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	if t.quit != nil {
		close(t.quit)
	}
	return true
}
