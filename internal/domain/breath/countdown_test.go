package breath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountdownSeconds(t *testing.T) {
	tests := []struct {
		remaining time.Duration
		expected  int
	}{
		{4000 * time.Millisecond, 4},
		{3900 * time.Millisecond, 4},
		{3001 * time.Millisecond, 4},
		{3000 * time.Millisecond, 3},
		{100 * time.Millisecond, 1},
		{1 * time.Millisecond, 1},
		{0, 0},
		{-50 * time.Millisecond, 0},
	}

	for _, tt := range tests {
		t.Run(tt.remaining.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, CountdownSeconds(tt.remaining))
		})
	}
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "04", FormatCountdown(4))
	assert.Equal(t, "00", FormatCountdown(0))
	assert.Equal(t, "12", FormatCountdown(12))
	assert.Equal(t, "120", FormatCountdown(120))
	assert.Equal(t, "00", FormatCountdown(-3))
}
