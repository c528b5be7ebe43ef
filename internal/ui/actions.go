package ui

import (
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/breathbox/internal/app/sequencer"
)

// Action is a session control requested from the keyboard.
type Action int

const (
	ActionToggle      Action = iota // Start, pause or resume
	ActionStart                     // Start a session
	ActionPauseResume               // Pause when running, resume when paused
	ActionReset                     // Stop and return to idle
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionToggle:
		return "toggle"
	case ActionStart:
		return "start"
	case ActionPauseResume:
		return "pause_resume"
	case ActionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Controls is the part of the sequencer driven by keyboard actions.
type Controls interface {
	Start()
	Pause()
	Resume()
	Reset()
	Toggle()
	State() sequencer.State
}

// Poster runs work on the goroutine that owns the sequencer.
type Poster func(f func()) error

// NewDispatcher returns a function that applies actions to c on the
// sequencer's goroutine.
func NewDispatcher(post Poster, c Controls) func(Action) {
	return func(a Action) {
		err := post(func() {
			apply(c, a)
		})
		if err != nil {
			zlog.Warn().Msgf("dropped action %s: %v", a, err)
		}
	}
}

func apply(c Controls, a Action) {
	switch a {
	case ActionToggle:
		c.Toggle()
	case ActionStart:
		c.Start()
	case ActionPauseResume:
		if c.State() == sequencer.StatePaused {
			c.Resume()
		} else {
			c.Pause()
		}
	case ActionReset:
		c.Reset()
	}
}
