package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/breathbox/internal/app/preset"
	"github.com/osa030/breathbox/internal/infra/config"
	"github.com/osa030/breathbox/internal/infra/logger"
)

func withPreset(t *testing.T, name string) {
	t.Helper()
	prev := *presetName
	*presetName = name
	t.Cleanup(func() { *presetName = prev })
}

func TestNewStore_PresetFlagWins(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Breathing.Preset = "calm"
	catalog, err := preset.NewCatalog(nil)
	require.NoError(t, err)

	withPreset(t, "box")
	store, err := newStore(cfg, catalog)
	require.NoError(t, err)
	assert.Equal(t, "box", store.Preset())
	assert.Equal(t, 4, store.HoldSeconds())
}

func TestNewStore_ConfigValues(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	catalog, err := preset.NewCatalog(nil)
	require.NoError(t, err)

	withPreset(t, "")
	store, err := newStore(cfg, catalog)
	require.NoError(t, err)
	assert.Empty(t, store.Preset())
	assert.Equal(t, cfg.Values(), store.Values())
}

func TestNewStore_UnknownPreset(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	catalog, err := preset.NewCatalog(nil)
	require.NoError(t, err)

	withPreset(t, "nope")
	_, err = newStore(cfg, catalog)
	assert.ErrorIs(t, err, preset.ErrNotFound)
}

func TestPrintPlan(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	catalog, err := preset.NewCatalog(nil)
	require.NoError(t, err)

	withPreset(t, "box")
	store, err := newStore(cfg, catalog)
	require.NoError(t, err)

	var buf bytes.Buffer
	printPlan(&buf, store, 600*time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "Pattern: box (4-4-4 x4)")
	assert.Contains(t, out, "1. Inhale")
	assert.Contains(t, out, "2. Hold")
	assert.Contains(t, out, "3. Exhale")
	assert.Contains(t, out, "Cycle: 12s, rest between cycles: 600ms")
	assert.Contains(t, out, "Session: 4 cycles, 49.8s")
}

func TestPrintPlan_NoHold(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	catalog, err := preset.NewCatalog(nil)
	require.NoError(t, err)

	withPreset(t, "calm")
	store, err := newStore(cfg, catalog)
	require.NoError(t, err)

	var buf bytes.Buffer
	printPlan(&buf, store, 600*time.Millisecond)

	assert.NotContains(t, buf.String(), "Hold")
	assert.Contains(t, buf.String(), "2. Exhale")
}

func TestPrintPresets(t *testing.T) {
	catalog, err := preset.NewCatalog(nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	printPresets(&buf, catalog)

	out := buf.String()
	assert.Contains(t, out, "Available Presets:")
	for _, name := range []string{"box", "calm", "coherent", "relax"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "4-7-8 x4")
}

func TestLogConfig(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	// Console output is discarded under the full-screen UI.
	assert.Equal(t, logger.OutputDiscard, logConfig(cfg, true).Output)
	assert.Equal(t, "", logConfig(cfg, false).Output)

	cfg.Log.File = "logs/breathbox.log"
	assert.Equal(t, "logs/breathbox.log", logConfig(cfg, true).Output)
}
