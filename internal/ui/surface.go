// Package ui provides the terminal rendering surface and keyboard input for a session.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/breathbox/internal/app/sequencer"
	"github.com/osa030/breathbox/internal/domain/breath"
)

// Messages delivered to the Model by Surface.
type (
	phaseMsg     struct{ phase breath.PhaseName }
	countdownMsg struct{ seconds int }
	buttonsMsg   struct{ state sequencer.ButtonsState }
	syncMsg      struct{ d time.Duration }
	cycleMsg     struct{ cycle, total int }
	finishedMsg  struct{}
)

// Sender delivers messages to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Surface forwards sequencer signals to the terminal program.
type Surface struct {
	sender Sender
}

var (
	_ sequencer.Surface       = (*Surface)(nil)
	_ sequencer.CycleReporter = (*Surface)(nil)
)

// NewSurface creates a surface that sends to the given program.
func NewSurface(sender Sender) *Surface {
	return &Surface{sender: sender}
}

// PhaseChanged sends the new phase.
func (s *Surface) PhaseChanged(phase breath.PhaseName) {
	s.sender.Send(phaseMsg{phase: phase})
}

// Countdown sends the countdown value.
func (s *Surface) Countdown(seconds int) {
	s.sender.Send(countdownMsg{seconds: seconds})
}

// ButtonsChanged sends the control states.
func (s *Surface) ButtonsChanged(st sequencer.ButtonsState) {
	s.sender.Send(buttonsMsg{state: st})
}

// AnimationSync sends the ring transition duration.
func (s *Surface) AnimationSync(d time.Duration) {
	s.sender.Send(syncMsg{d: d})
}

// CycleStarted sends cycle progress.
func (s *Surface) CycleStarted(cycle, total int) {
	s.sender.Send(cycleMsg{cycle: cycle, total: total})
}

// Finished sends session completion.
func (s *Surface) Finished() {
	s.sender.Send(finishedMsg{})
}

// LogSurface writes session transitions to the global logger.
// Countdown updates are logged at trace level only.
type LogSurface struct{}

var (
	_ sequencer.Surface       = LogSurface{}
	_ sequencer.CycleReporter = LogSurface{}
)

func (LogSurface) PhaseChanged(phase breath.PhaseName) {
	if phase == breath.PhaseNone {
		zlog.Info().Msg("session reset")
		return
	}
	zlog.Info().Msgf("phase: %s", phase.Label())
}

func (LogSurface) Countdown(seconds int) {
	zlog.Trace().Msgf("countdown: %s", breath.FormatCountdown(seconds))
}

func (LogSurface) ButtonsChanged(st sequencer.ButtonsState) {
	zlog.Debug().Msgf("controls: start=%v pause=%v(%s) reset=%v",
		st.StartEnabled, st.PauseEnabled, st.PauseLabel, st.ResetEnabled)
}

func (LogSurface) AnimationSync(d time.Duration) {
	zlog.Debug().Msgf("animation: %v", d)
}

func (LogSurface) CycleStarted(cycle, total int) {
	zlog.Info().Msgf("cycle %d/%d", cycle, total)
}

func (LogSurface) Finished() {
	zlog.Info().Msg(breath.LabelDone)
}
