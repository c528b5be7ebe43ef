package ui

import (
	"math"
	"strings"
	"time"

	"github.com/osa030/breathbox/internal/domain/breath"
)

// Ring scale bounds: fully exhaled and fully inhaled.
const (
	ringMinScale = 0.45
	ringMaxScale = 1.0
	minGlow      = 250 * time.Millisecond
)

// targetScale returns the ring size a phase animates towards.
func targetScale(phase breath.PhaseName, current float64) float64 {
	switch phase {
	case breath.PhaseInhale:
		return ringMaxScale
	case breath.PhaseHold:
		return current
	default:
		return ringMinScale
	}
}

// glowDuration returns how long the phase-change highlight lasts.
func glowDuration(d time.Duration) time.Duration {
	if g := d / 6; g > minGlow {
		return g
	}
	return minGlow
}

// easeInOut is a cubic ease-in-out curve on [0,1].
func easeInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 4 * t * t * t
	default:
		return 1 - math.Pow(-2*t+2, 3)/2
	}
}

// ringAnim interpolates the ring scale over a transition.
type ringAnim struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	frozen   bool
}

// scaleAt returns the scale at time now.
func (a ringAnim) scaleAt(now time.Time) float64 {
	if a.frozen || a.duration <= 0 {
		return a.to
	}
	t := float64(now.Sub(a.start)) / float64(a.duration)
	return a.from + (a.to-a.from)*easeInOut(t)
}

// retarget starts a transition from the current scale.
func (a ringAnim) retarget(now time.Time, to float64, d time.Duration) ringAnim {
	return ringAnim{
		from:     a.scaleAt(now),
		to:       to,
		start:    now,
		duration: d,
	}
}

// freeze holds the ring at its current scale.
func (a ringAnim) freeze(now time.Time) ringAnim {
	cur := a.scaleAt(now)
	return ringAnim{from: cur, to: cur, start: now, frozen: true}
}

// drawRing renders a circle outline of the given scale inside a square
// area of radius maxRadius rows. Columns are doubled for terminal aspect.
func drawRing(scale float64, maxRadius int) string {
	r := scale * float64(maxRadius)
	height := 2*maxRadius + 1
	width := 4*maxRadius + 1
	cy := float64(maxRadius)
	cx := float64(2 * maxRadius)

	var b strings.Builder
	for y := 0; y < height; y++ {
		row := make([]rune, width)
		for x := 0; x < width; x++ {
			dx := (float64(x) - cx) / 2
			dy := float64(y) - cy
			if math.Abs(math.Hypot(dx, dy)-r) < 0.5 {
				row[x] = '●'
			} else {
				row[x] = ' '
			}
		}
		b.WriteString(strings.TrimRight(string(row), " "))
		if y < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
