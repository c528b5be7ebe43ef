package sequencer

// State represents the session state.
type State int

const (
	StateIdle     State = iota // No session (never started or reset)
	StateRunning               // Phases are advancing
	StatePaused                // Current phase is frozen
	StateFinished              // All cycles completed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Active reports whether a session is in progress.
func (s State) Active() bool {
	return s == StateRunning || s == StatePaused
}
