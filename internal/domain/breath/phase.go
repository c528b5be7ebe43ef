// Package breath provides the breathing-phase domain entities.
package breath

import (
	"fmt"
	"strings"
	"time"
)

// PhaseName identifies a segment of the breathing cycle.
type PhaseName string

const (
	PhaseNone   PhaseName = ""       // No active phase
	PhaseInhale PhaseName = "inhale" // Breathe in
	PhaseHold   PhaseName = "hold"   // Hold the breath
	PhaseExhale PhaseName = "exhale" // Breathe out
)

// Label returns the display text for the phase ("Inhale", "Hold", "Exhale").
func (n PhaseName) Label() string {
	if n == PhaseNone {
		return ""
	}
	s := string(n)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Phase is one timed segment of a cycle.
type Phase struct {
	Name    PhaseName
	Seconds int
}

// Duration returns the phase length.
func (p Phase) Duration() time.Duration {
	return time.Duration(p.Seconds) * time.Second
}

// Values holds the configurable breathing pattern.
type Values struct {
	Inhale int `yaml:"inhale_sec" mapstructure:"inhale_sec" validate:"gte=1,lte=120"`
	Hold   int `yaml:"hold_sec" mapstructure:"hold_sec" validate:"gte=0,lte=120"`
	Exhale int `yaml:"exhale_sec" mapstructure:"exhale_sec" validate:"gte=1,lte=120"`
	Cycles int `yaml:"cycles" mapstructure:"cycles" validate:"gte=1,lte=100"`
}

// String returns the compact "inhale-hold-exhale xN" form.
func (v Values) String() string {
	return fmt.Sprintf("%d-%d-%d x%d", v.Inhale, v.Hold, v.Exhale, v.Cycles)
}

// Sequence is the ordered list of phases for one cycle.
type Sequence []Phase

// BuildSequence returns the phases of one cycle.
// The hold phase is omitted entirely when its duration is zero or negative.
func BuildSequence(inhale, hold, exhale int) Sequence {
	seq := make(Sequence, 0, 3)
	seq = append(seq, Phase{Name: PhaseInhale, Seconds: inhale})
	if hold > 0 {
		seq = append(seq, Phase{Name: PhaseHold, Seconds: hold})
	}
	seq = append(seq, Phase{Name: PhaseExhale, Seconds: exhale})
	return seq
}

// Duration returns the total length of the sequence.
func (s Sequence) Duration() time.Duration {
	var total time.Duration
	for _, p := range s {
		total += p.Duration()
	}
	return total
}

// Names returns the phase names in order.
func (s Sequence) Names() []PhaseName {
	names := make([]PhaseName, len(s))
	for i, p := range s {
		names[i] = p.Name
	}
	return names
}

// ClampCycles returns the effective cycle count (minimum 1).
func ClampCycles(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// SessionDuration returns the wall time of a full session with the given
// rest gap between cycles. No gap follows the last cycle.
func SessionDuration(v Values, gap time.Duration) time.Duration {
	cycles := ClampCycles(v.Cycles)
	perCycle := BuildSequence(v.Inhale, v.Hold, v.Exhale).Duration()
	return time.Duration(cycles)*perCycle + time.Duration(cycles-1)*gap
}
