package breath

import (
	"fmt"
	"time"
)

// Display labels outside an active phase.
const (
	LabelReady = "Ready"
	LabelDone  = "Done"
)

// CountdownSeconds returns the whole seconds shown for the remaining time.
// It rounds up, so the display reads the second about to elapse.
func CountdownSeconds(remaining time.Duration) int {
	if remaining <= 0 {
		return 0
	}
	ms := remaining.Milliseconds()
	return int((ms + 999) / 1000)
}

// FormatCountdown renders seconds as two zero-padded digits.
func FormatCountdown(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d", sec)
}
