// Package sequencer drives a breathing session through its timed phases.
package sequencer

import (
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/breathbox/internal/domain/breath"
	"github.com/osa030/breathbox/internal/infra/clock"
)

// Default timing.
const (
	DefaultTickInterval = 100 * time.Millisecond
	DefaultCycleGap     = 600 * time.Millisecond
)

// Config holds sequencer timing.
type Config struct {
	TickInterval time.Duration // Countdown refresh interval
	CycleGap     time.Duration // Rest between cycles (not pausable)
}

// Status is a snapshot of the session.
type Status struct {
	SessionID       string
	State           State
	Phase           breath.PhaseName
	Remaining       time.Duration
	CyclesRemaining int
	CyclesCompleted int
	Resting         bool // Inside the rest between cycles
}

// Label returns the text shown for the session: the phase name while a phase
// is active, "Ready" when idle and "Done" once finished.
func (s Status) Label() string {
	switch {
	case s.State == StateFinished:
		return breath.LabelDone
	case s.Phase != breath.PhaseNone:
		return s.Phase.Label()
	default:
		return breath.LabelReady
	}
}

// Sequencer is the phase state machine.
//
// It is not safe for concurrent use: every method and every scheduler callback
// must run on the same goroutine (clock.Loop guarantees this in production).
type Sequencer struct {
	config   Config
	settings Settings
	surface  Surface
	sched    clock.Scheduler

	// Session state
	sessionID       string
	state           State
	phases          breath.Sequence
	phaseIdx        int
	current         *breath.Phase
	remaining       time.Duration
	deadline        time.Time // When the running phase completes
	cyclesRemaining int
	cyclesCompleted int
	resting         bool

	// Timers
	tickTimer  clock.Timer
	phaseTimer clock.Timer
	gapTimer   clock.Timer
}

// New creates a sequencer. Zero timing values fall back to the defaults.
func New(config Config, settings Settings, surface Surface, sched clock.Scheduler) *Sequencer {
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}
	if config.CycleGap <= 0 {
		config.CycleGap = DefaultCycleGap
	}
	if surface == nil {
		surface = NopSurface{}
	}
	return &Sequencer{
		config:   config,
		settings: settings,
		surface:  surface,
		sched:    sched,
		state:    StateIdle,
	}
}

// Start begins a new session. Ignored unless idle or finished.
func (s *Sequencer) Start() {
	if s.state.Active() {
		return
	}

	s.sessionID = uuid.New().String()
	s.state = StateRunning
	s.cyclesRemaining = breath.ClampCycles(s.settings.CycleCount())
	s.cyclesCompleted = 0
	s.resting = false

	zlog.Debug().Str("session", s.sessionID).Msgf("sequencer: session started: cycles=%d", s.cyclesRemaining)

	s.surface.ButtonsChanged(buttonsRunning)
	s.runCycle()
}

// Pause freezes the current phase. Ignored unless running, and ignored
// during the rest between cycles.
func (s *Sequencer) Pause() {
	if s.state != StateRunning || s.resting || s.current == nil {
		return
	}

	s.stopPhaseTimers()

	remaining := s.deadline.Sub(s.sched.Now())
	if remaining < 0 {
		remaining = 0
	}
	s.remaining = remaining
	s.state = StatePaused

	zlog.Debug().Str("session", s.sessionID).Msgf("sequencer: paused: phase=%s remaining=%v", s.current.Name, s.remaining)

	s.surface.ButtonsChanged(buttonsPaused)
}

// Resume continues a paused phase for exactly its preserved remaining time.
func (s *Sequencer) Resume() {
	if s.state != StatePaused {
		return
	}

	s.state = StateRunning

	zlog.Debug().Str("session", s.sessionID).Msgf("sequencer: resumed: phase=%s remaining=%v", s.current.Name, s.remaining)

	s.surface.ButtonsChanged(buttonsRunning)
	s.surface.AnimationSync(s.remaining)
	s.startPhaseTimers(s.remaining)
}

// Reset stops the session and returns to idle from any state.
func (s *Sequencer) Reset() {
	s.stopPhaseTimers()
	s.stopGapTimer()

	if s.state != StateIdle {
		zlog.Debug().Str("session", s.sessionID).Msgf("sequencer: reset from %s", s.state)
	}

	s.state = StateIdle
	s.current = nil
	s.phases = nil
	s.phaseIdx = 0
	s.remaining = 0
	s.cyclesRemaining = 0
	s.resting = false

	s.surface.PhaseChanged(breath.PhaseNone)
	s.surface.Countdown(0)
	s.surface.ButtonsChanged(buttonsIdle)
}

// Toggle starts, pauses or resumes depending on the current state.
func (s *Sequencer) Toggle() {
	switch s.state {
	case StateIdle, StateFinished:
		s.Start()
	case StateRunning:
		s.Pause()
	case StatePaused:
		s.Resume()
	}
}

// State returns the session state.
func (s *Sequencer) State() State {
	return s.state
}

// Status returns a snapshot of the session.
func (s *Sequencer) Status() Status {
	st := Status{
		SessionID:       s.sessionID,
		State:           s.state,
		CyclesRemaining: s.cyclesRemaining,
		CyclesCompleted: s.cyclesCompleted,
		Resting:         s.resting,
	}
	if s.current != nil {
		st.Phase = s.current.Name
		st.Remaining = s.remaining
	}
	return st
}

// runCycle builds the phase sequence from the current settings and starts it.
func (s *Sequencer) runCycle() {
	s.resting = false
	s.gapTimer = nil

	if s.cyclesRemaining <= 0 {
		s.finish()
		return
	}

	s.phases = breath.BuildSequence(
		s.settings.InhaleSeconds(),
		s.settings.HoldSeconds(),
		s.settings.ExhaleSeconds(),
	)
	s.phaseIdx = 0

	zlog.Debug().Str("session", s.sessionID).Msgf("sequencer: cycle %d started: phases=%v",
		s.cyclesCompleted+1, s.phases.Names())

	if r, ok := s.surface.(CycleReporter); ok {
		r.CycleStarted(s.cyclesCompleted+1, s.cyclesCompleted+s.cyclesRemaining)
	}
	s.beginPhase()
}

// beginPhase starts the phase at phaseIdx with its full duration.
func (s *Sequencer) beginPhase() {
	p := s.phases[s.phaseIdx]
	s.current = &p
	total := p.Duration()
	s.remaining = total

	s.surface.PhaseChanged(p.Name)
	s.surface.Countdown(breath.CountdownSeconds(s.remaining))
	s.surface.AnimationSync(total)

	s.startPhaseTimers(total)
}

// onTick refreshes the countdown.
func (s *Sequencer) onTick() {
	if s.state != StateRunning || s.current == nil {
		return
	}
	s.remaining -= s.config.TickInterval
	if s.remaining < 0 {
		s.remaining = 0
	}
	s.surface.Countdown(breath.CountdownSeconds(s.remaining))
}

// onPhaseComplete ends the current phase and advances.
func (s *Sequencer) onPhaseComplete() {
	s.phaseTimer = nil
	if s.state != StateRunning || s.current == nil {
		return
	}

	// The tick must not fire after the phase has logically ended.
	s.stopTickTimer()
	s.remaining = 0
	s.surface.Countdown(0)

	s.phaseIdx++
	if s.phaseIdx < len(s.phases) {
		s.beginPhase()
		return
	}

	s.onCycleComplete()
}

// onCycleComplete counts the cycle and either rests or finishes.
func (s *Sequencer) onCycleComplete() {
	s.cyclesRemaining--
	s.cyclesCompleted++
	s.current = nil

	zlog.Debug().Str("session", s.sessionID).Msgf("sequencer: cycle %d completed: remaining_cycles=%d",
		s.cyclesCompleted, s.cyclesRemaining)

	if s.cyclesRemaining <= 0 {
		s.finish()
		return
	}

	s.resting = true
	s.gapTimer = s.sched.AfterFunc(s.config.CycleGap, s.runCycle)
}

// finish ends the session naturally.
func (s *Sequencer) finish() {
	s.stopPhaseTimers()
	s.stopGapTimer()

	s.state = StateFinished
	s.current = nil
	s.phases = nil
	s.remaining = 0
	s.cyclesRemaining = 0
	s.resting = false

	zlog.Debug().Str("session", s.sessionID).Msgf("sequencer: session finished: cycles=%d", s.cyclesCompleted)

	s.surface.ButtonsChanged(buttonsIdle)
	s.surface.Finished()
}

// startPhaseTimers starts the countdown tick and the completion timer.
func (s *Sequencer) startPhaseTimers(d time.Duration) {
	s.stopPhaseTimers()
	s.deadline = s.sched.Now().Add(d)
	s.tickTimer = s.sched.Every(s.config.TickInterval, s.onTick)
	s.phaseTimer = s.sched.AfterFunc(d, s.onPhaseComplete)
}

func (s *Sequencer) stopPhaseTimers() {
	s.stopTickTimer()
	if s.phaseTimer != nil {
		s.phaseTimer.Stop()
		s.phaseTimer = nil
	}
}

func (s *Sequencer) stopTickTimer() {
	if s.tickTimer != nil {
		s.tickTimer.Stop()
		s.tickTimer = nil
	}
}

func (s *Sequencer) stopGapTimer() {
	if s.gapTimer != nil {
		s.gapTimer.Stop()
		s.gapTimer = nil
	}
}
