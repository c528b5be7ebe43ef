// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osa030/breathbox/internal/domain/breath"
)

// Config represents the application configuration.
type Config struct {
	Breathing BreathingConfig           `yaml:"breathing"`
	Timing    TimingConfig              `yaml:"timing"`
	Presets   map[string]map[string]any `yaml:"presets"`
	Log       LogConfig                 `yaml:"log"`
}

// BreathingConfig represents the initial breathing pattern.
type BreathingConfig struct {
	InhaleSec int    `yaml:"inhale_sec" default:"4" validate:"gte=1,lte=120"`
	HoldSec   *int   `yaml:"hold_sec" default:"2" validate:"omitempty,gte=0,lte=120"`
	ExhaleSec int    `yaml:"exhale_sec" default:"4" validate:"gte=1,lte=120"`
	Cycles    int    `yaml:"cycles" default:"5" validate:"gte=1,lte=100"`
	Preset    string `yaml:"preset"`
}

// TimingConfig represents sequencer timing.
type TimingConfig struct {
	TickIntervalMs int `yaml:"tick_interval_ms" default:"100" validate:"gte=10,lte=1000"`
	CycleGapMs     int `yaml:"cycle_gap_ms" default:"600" validate:"gte=0,lte=10000"`
}

// LogConfig represents logger configuration.
type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn warning error"`
	Output string `yaml:"output"`
	File   string `yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() (*Config, error) {
	var cfg Config
	cfg.overrideFromEnv()
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return &cfg, nil
}

// Load loads configuration from a YAML file.
// An empty path yields the defaults. Environment variables take precedence
// over file values.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("BREATHBOX_PRESET"); v != "" {
		c.Breathing.Preset = v
	}
	if v := os.Getenv("BREATHBOX_CYCLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Breathing.Cycles = n
		}
	}
	if v := os.Getenv("BREATHBOX_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}

// Values returns the configured breathing pattern.
func (c *Config) Values() breath.Values {
	hold := 0
	if c.Breathing.HoldSec != nil {
		hold = *c.Breathing.HoldSec
	}
	return breath.Values{
		Inhale: c.Breathing.InhaleSec,
		Hold:   hold,
		Exhale: c.Breathing.ExhaleSec,
		Cycles: c.Breathing.Cycles,
	}
}

// TickInterval returns the countdown refresh interval.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMs) * time.Millisecond
}

// CycleGap returns the rest between cycles.
func (c *Config) CycleGap() time.Duration {
	return time.Duration(c.Timing.CycleGapMs) * time.Millisecond
}
