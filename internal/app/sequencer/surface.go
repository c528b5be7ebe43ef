package sequencer

import (
	"time"

	"github.com/osa030/breathbox/internal/domain/breath"
)

// Pause button labels.
const (
	LabelPause  = "Pause"
	LabelResume = "Resume"
)

// Settings supplies the breathing pattern. Values are read at cycle start only.
type Settings interface {
	InhaleSeconds() int
	HoldSeconds() int
	ExhaleSeconds() int
	CycleCount() int
}

// ButtonsState describes which session controls are usable.
type ButtonsState struct {
	StartEnabled bool
	PauseEnabled bool
	ResetEnabled bool
	PauseLabel   string
}

// Surface receives the signals a renderer needs to draw the session.
type Surface interface {
	// PhaseChanged reports a new phase; breath.PhaseNone clears it.
	PhaseChanged(phase breath.PhaseName)
	// Countdown reports the whole seconds left in the current phase.
	Countdown(seconds int)
	// ButtonsChanged reports the control states.
	ButtonsChanged(state ButtonsState)
	// AnimationSync sets how long the current visual transition should take.
	AnimationSync(d time.Duration)
	// Finished reports natural completion of all cycles.
	Finished()
}

// CycleReporter is implemented by surfaces that show cycle progress.
// The total is the cycle count read when the session started.
type CycleReporter interface {
	CycleStarted(cycle, total int)
}

// NopSurface discards every signal.
type NopSurface struct{}

func (NopSurface) PhaseChanged(breath.PhaseName) {}
func (NopSurface) Countdown(int)                 {}
func (NopSurface) ButtonsChanged(ButtonsState)   {}
func (NopSurface) AnimationSync(time.Duration)   {}
func (NopSurface) Finished()                     {}

var (
	buttonsIdle = ButtonsState{
		StartEnabled: true,
		PauseLabel:   LabelPause,
	}
	buttonsRunning = ButtonsState{
		PauseEnabled: true,
		ResetEnabled: true,
		PauseLabel:   LabelPause,
	}
	buttonsPaused = ButtonsState{
		PauseEnabled: true,
		ResetEnabled: true,
		PauseLabel:   LabelResume,
	}
)
