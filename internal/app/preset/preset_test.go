package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/breathbox/internal/app/settings"
	"github.com/osa030/breathbox/internal/domain/breath"
)

func TestBuiltinsAreValid(t *testing.T) {
	registered := GetRegistered()
	require.NotEmpty(t, registered)

	for name, factory := range registered {
		t.Run(name, func(t *testing.T) {
			p := factory()
			assert.Equal(t, name, p.Name)
			assert.NotEmpty(t, p.Description)
			assert.NoError(t, settings.Validate(p.Values))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]any
		expected breath.Values
		wantErr  bool
	}{
		{
			name: "all fields",
			settings: map[string]any{
				"inhale_sec": 3,
				"hold_sec":   1,
				"exhale_sec": 6,
				"cycles":     8,
			},
			expected: breath.Values{Inhale: 3, Hold: 1, Exhale: 6, Cycles: 8},
		},
		{
			name:     "defaults fill missing fields",
			settings: map[string]any{"exhale_sec": 7},
			expected: breath.Values{Inhale: 4, Hold: 0, Exhale: 7, Cycles: 5},
		},
		{
			name:     "string numbers are accepted",
			settings: map[string]any{"inhale_sec": "2", "exhale_sec": "2", "cycles": "3"},
			expected: breath.Values{Inhale: 2, Hold: 0, Exhale: 2, Cycles: 3},
		},
		{
			name:     "negative hold",
			settings: map[string]any{"hold_sec": -2},
			wantErr:  true,
		},
		{
			name:     "too many cycles",
			settings: map[string]any{"cycles": 1000},
			wantErr:  true,
		},
		{
			name:     "unknown key",
			settings: map[string]any{"inhale": 4},
			wantErr:  true,
		},
		{
			name:     "non numeric value",
			settings: map[string]any{"inhale_sec": "slow"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode("custom", tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "custom", p.Name)
			assert.Equal(t, tt.expected, p.Values)
		})
	}
}

func TestCatalog(t *testing.T) {
	c, err := NewCatalog(map[string]map[string]any{
		"morning": {"description": "Wake up", "inhale_sec": 6, "exhale_sec": 2, "cycles": 10},
		"box":     {"inhale_sec": 5, "hold_sec": 5, "exhale_sec": 5, "cycles": 2},
	})
	require.NoError(t, err)

	morning, err := c.Get("morning")
	require.NoError(t, err)
	assert.Equal(t, "Wake up", morning.Description)
	assert.Equal(t, breath.Values{Inhale: 6, Hold: 0, Exhale: 2, Cycles: 10}, morning.Values)

	box, err := c.Get("box")
	require.NoError(t, err)
	assert.Equal(t, 5, box.Values.Inhale, "config presets replace built-ins")

	_, err = c.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	list := c.List()
	require.Len(t, list, len(GetRegistered())+1)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Name, list[i].Name)
	}
}

func TestNewCatalog_InvalidPreset(t *testing.T) {
	_, err := NewCatalog(map[string]map[string]any{
		"broken": {"cycles": 0, "inhale_sec": -1},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
