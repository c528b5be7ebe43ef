package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/osa030/breathbox/internal/app/sequencer"
	"github.com/osa030/breathbox/internal/app/settings"
	"github.com/osa030/breathbox/internal/domain/breath"
)

const (
	frameInterval = 50 * time.Millisecond
	ringRadius    = 6
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Padding(1, 0)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	countdownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99"))

	disabledButtonStyle = buttonStyle.Foreground(lipgloss.Color("240")).BorderForeground(lipgloss.Color("238"))

	// Ring colors per phase.
	ringColors = map[breath.PhaseName]lipgloss.Color{
		breath.PhaseNone:   lipgloss.Color("240"),
		breath.PhaseInhale: lipgloss.Color("39"),  // Blue
		breath.PhaseHold:   lipgloss.Color("141"), // Violet
		breath.PhaseExhale: lipgloss.Color("42"),  // Green
	}
)

// Adjuster edits the breathing values from the keyboard.
type Adjuster interface {
	Adjust(field settings.Field, delta int) (breath.Values, error)
	Values() breath.Values
	Preset() string
}

type frameMsg time.Time

// Model is the terminal rendering surface and input source.
type Model struct {
	dispatch func(Action)
	settings Adjuster
	keys     keyMap
	help     help.Model
	now      func() time.Time

	label     string
	phase     breath.PhaseName
	countdown int
	buttons   sequencer.ButtonsState
	ring      ringAnim
	glowUntil time.Time
	cycle     int
	total     int
	notice    string
	width     int
}

// NewModel creates the session model.
func NewModel(dispatch func(Action), adjuster Adjuster) *Model {
	return &Model{
		dispatch: dispatch,
		settings: adjuster,
		keys:     newKeyMap(),
		help:     help.New(),
		now:      time.Now,
		label:    breath.LabelReady,
		buttons: sequencer.ButtonsState{
			StartEnabled: true,
			PauseLabel:   sequencer.LabelPause,
		},
		ring: ringAnim{from: ringMinScale, to: ringMinScale},
	}
}

// Init starts the animation frames.
func (m *Model) Init() tea.Cmd {
	return frame()
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles key presses and sequencer signals.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	now := m.now()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case frameMsg:
		return m, frame()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case phaseMsg:
		m.phase = msg.phase
		if msg.phase == breath.PhaseNone {
			m.label = breath.LabelReady
			m.ring = m.ring.retarget(now, ringMinScale, 0)
			m.cycle = 0
			m.total = 0
		} else {
			m.label = msg.phase.Label()
		}

	case cycleMsg:
		m.cycle = msg.cycle
		m.total = msg.total

	case countdownMsg:
		m.countdown = msg.seconds

	case syncMsg:
		m.ring = m.ring.retarget(now, targetScale(m.phase, m.ring.scaleAt(now)), msg.d)
		m.glowUntil = now.Add(glowDuration(msg.d))

	case buttonsMsg:
		started := m.buttons.StartEnabled && !msg.state.StartEnabled
		if started {
			m.cycle = 0
			m.total = 0
		}
		if msg.state.PauseLabel == sequencer.LabelResume {
			m.ring = m.ring.freeze(now)
		}
		m.buttons = msg.state

	case finishedMsg:
		m.label = breath.LabelDone
		m.phase = breath.PhaseNone
		m.ring = m.ring.retarget(now, ringMinScale, 0)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Toggle):
		m.dispatch(ActionToggle)
	case key.Matches(msg, m.keys.Start):
		if m.buttons.StartEnabled {
			m.dispatch(ActionStart)
		}
	case key.Matches(msg, m.keys.PauseResume):
		if m.buttons.PauseEnabled {
			m.dispatch(ActionPauseResume)
		}
	case key.Matches(msg, m.keys.Reset):
		if m.buttons.ResetEnabled {
			m.dispatch(ActionReset)
		}
	case key.Matches(msg, m.keys.InhaleDown):
		m.adjust(settings.FieldInhale, -1)
	case key.Matches(msg, m.keys.InhaleUp):
		m.adjust(settings.FieldInhale, 1)
	case key.Matches(msg, m.keys.HoldDown):
		m.adjust(settings.FieldHold, -1)
	case key.Matches(msg, m.keys.HoldUp):
		m.adjust(settings.FieldHold, 1)
	case key.Matches(msg, m.keys.ExhaleDown):
		m.adjust(settings.FieldExhale, -1)
	case key.Matches(msg, m.keys.ExhaleUp):
		m.adjust(settings.FieldExhale, 1)
	case key.Matches(msg, m.keys.CyclesDown):
		m.adjust(settings.FieldCycles, -1)
	case key.Matches(msg, m.keys.CyclesUp):
		m.adjust(settings.FieldCycles, 1)
	}
	return m, nil
}

// adjust edits one value; the change applies from the next cycle.
func (m *Model) adjust(field settings.Field, delta int) {
	if _, err := m.settings.Adjust(field, delta); err != nil {
		m.notice = fmt.Sprintf("%s cannot go %s", field, direction(delta))
		return
	}
	m.notice = ""
}

func direction(delta int) string {
	if delta < 0 {
		return "lower"
	}
	return "higher"
}

// View renders the session.
func (m *Model) View() string {
	now := m.now()

	ringStyle := lipgloss.NewStyle().Foreground(ringColors[m.phase])
	if now.Before(m.glowUntil) {
		ringStyle = ringStyle.Bold(true)
	}
	ring := ringStyle.Render(drawRing(m.ring.scaleAt(now), ringRadius))

	status := lipgloss.JoinHorizontal(lipgloss.Center,
		labelStyle.Render(m.label),
		"   ",
		countdownStyle.Render(breath.FormatCountdown(m.countdown)),
	)

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("breathbox"),
		ring,
		"",
		status,
		infoStyle.Render(m.infoLine()),
		m.buttonsView(),
	)

	var b strings.Builder
	if m.width > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	} else {
		b.WriteString(body)
	}
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) infoLine() string {
	v := m.settings.Values()
	line := v.String()
	if p := m.settings.Preset(); p != "" {
		line += " (" + p + ")"
	}
	if m.cycle > 0 {
		line = fmt.Sprintf("cycle %d/%d · %s", m.cycle, m.total, line)
	}
	return line
}

func (m *Model) buttonsView() string {
	render := func(label string, enabled bool) string {
		if enabled {
			return buttonStyle.Render(label)
		}
		return disabledButtonStyle.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		render("Start", m.buttons.StartEnabled),
		" ",
		render(m.buttons.PauseLabel, m.buttons.PauseEnabled),
		" ",
		render("Reset", m.buttons.ResetEnabled),
	)
}
