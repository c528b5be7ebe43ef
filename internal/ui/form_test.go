package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/breathbox/internal/domain/breath"
)

func TestIntInRange(t *testing.T) {
	check := intInRange(1, 120)

	assert.NoError(t, check("1"))
	assert.NoError(t, check("120"))
	assert.Error(t, check("0"))
	assert.Error(t, check("121"))
	assert.Error(t, check("four"))
	assert.Error(t, check(""))
}

func TestSettingsForm_Values(t *testing.T) {
	f := newSettingsForm(breath.Values{Inhale: 4, Hold: 7, Exhale: 8, Cycles: 3})
	assert.Equal(t, "4", f.inhale)
	assert.Equal(t, "7", f.hold)

	f.hold = "0"
	f.cycles = "6"
	v, err := f.values()
	require.NoError(t, err)
	assert.Equal(t, breath.Values{Inhale: 4, Hold: 0, Exhale: 8, Cycles: 6}, v)
}

func TestSettingsForm_InvalidValues(t *testing.T) {
	f := newSettingsForm(breath.Values{Inhale: 4, Hold: 4, Exhale: 4, Cycles: 4})

	f.exhale = "x"
	_, err := f.values()
	assert.Error(t, err)

	f.exhale = "4"
	f.cycles = "0"
	_, err = f.values()
	assert.Error(t, err)
}

func TestSettingsForm_Build(t *testing.T) {
	f := newSettingsForm(breath.Values{Inhale: 4, Hold: 4, Exhale: 4, Cycles: 4})
	assert.NotNil(t, f.build())
}
