// Package clock provides the scheduling abstraction used by the phase sequencer.
//
// Scheduler hides where time comes from: Loop runs callbacks against the wall
// clock on a single goroutine, Fake runs them against a virtual clock that only
// moves when the test advances it.
package clock

import "time"

// Timer represents a scheduled callback that can be stopped.
type Timer interface {
	// Stop prevents the callback from running again.
	// Returns false if the timer had already fired (one-shot) or was already stopped.
	Stop() bool
}

// Scheduler provides delayed and repeating callbacks.
// Callbacks never run concurrently with each other.
type Scheduler interface {
	// AfterFunc runs f once after d.
	AfterFunc(d time.Duration, f func()) Timer
	// Every runs f each time d elapses until the timer is stopped.
	Every(d time.Duration, f func()) Timer
	// Now returns the scheduler's current time.
	Now() time.Time
}
