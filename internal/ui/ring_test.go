package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osa030/breathbox/internal/domain/breath"
)

func TestGlowDuration(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, glowDuration(time.Second))
	assert.Equal(t, 250*time.Millisecond, glowDuration(1500*time.Millisecond))
	assert.Equal(t, time.Second, glowDuration(6*time.Second))
	assert.Equal(t, 250*time.Millisecond, glowDuration(0))
}

func TestTargetScale(t *testing.T) {
	assert.Equal(t, ringMaxScale, targetScale(breath.PhaseInhale, 0.5))
	assert.Equal(t, 0.7, targetScale(breath.PhaseHold, 0.7))
	assert.Equal(t, ringMinScale, targetScale(breath.PhaseExhale, 0.9))
	assert.Equal(t, ringMinScale, targetScale(breath.PhaseNone, 0.9))
}

func TestEaseInOut(t *testing.T) {
	assert.Equal(t, 0.0, easeInOut(-1))
	assert.Equal(t, 0.0, easeInOut(0))
	assert.InDelta(t, 0.5, easeInOut(0.5), 1e-9)
	assert.Equal(t, 1.0, easeInOut(1))
	assert.Equal(t, 1.0, easeInOut(2))
	assert.Less(t, easeInOut(0.25), 0.25)
	assert.Greater(t, easeInOut(0.75), 0.75)
}

func TestRingAnim(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := ringAnim{from: ringMinScale, to: ringMinScale}

	a = a.retarget(start, ringMaxScale, 4*time.Second)
	assert.InDelta(t, ringMinScale, a.scaleAt(start), 1e-9)
	assert.InDelta(t, (ringMinScale+ringMaxScale)/2, a.scaleAt(start.Add(2*time.Second)), 1e-9)
	assert.InDelta(t, ringMaxScale, a.scaleAt(start.Add(4*time.Second)), 1e-9)
	assert.InDelta(t, ringMaxScale, a.scaleAt(start.Add(time.Minute)), 1e-9)

	mid := start.Add(2 * time.Second)
	frozen := a.freeze(mid)
	held := frozen.scaleAt(mid)
	assert.InDelta(t, held, frozen.scaleAt(mid.Add(time.Hour)), 1e-9)

	// Resuming continues from the frozen scale.
	resumed := frozen.retarget(mid, ringMaxScale, 2*time.Second)
	assert.InDelta(t, held, resumed.scaleAt(mid), 1e-9)
	assert.InDelta(t, ringMaxScale, resumed.scaleAt(mid.Add(2*time.Second)), 1e-9)
}

func TestDrawRing(t *testing.T) {
	out := drawRing(1.0, 4)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 9)
	assert.Contains(t, out, "●")
	for _, l := range lines {
		assert.LessOrEqual(t, len([]rune(l)), 17)
	}

	// A smaller ring stays off the outer rows.
	small := strings.Split(drawRing(0.45, 4), "\n")
	assert.NotContains(t, small[0], "●")
	assert.NotContains(t, small[len(small)-1], "●")
}
