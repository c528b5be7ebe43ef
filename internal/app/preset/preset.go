// Package preset provides named breathing patterns.
package preset

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/breathbox/internal/domain/breath"
)

// ErrNotFound is returned when a preset name is unknown.
var ErrNotFound = errors.New("preset not found")

// Preset is a named breathing pattern.
type Preset struct {
	Name        string
	Description string
	Values      breath.Values
}

// Settings represents a preset defined in the config file.
type Settings struct {
	Description string `mapstructure:"description"`
	InhaleSec   int    `mapstructure:"inhale_sec" default:"4" validate:"gte=1,lte=120"`
	HoldSec     int    `mapstructure:"hold_sec" validate:"gte=0,lte=120"`
	ExhaleSec   int    `mapstructure:"exhale_sec" default:"4" validate:"gte=1,lte=120"`
	Cycles      int    `mapstructure:"cycles" default:"5" validate:"gte=1,lte=100"`
}

// registry holds built-in preset factories.
var registry = make(map[string]func() Preset)

// Register registers a built-in preset factory.
func Register(name string, factory func() Preset) {
	registry[name] = factory
}

// GetRegistered returns all registered preset factories.
func GetRegistered() map[string]func() Preset {
	return registry
}

// Decode builds a preset from a config settings map.
func Decode(name string, settings map[string]any) (Preset, error) {
	var cfg Settings

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Preset{}, errors.Wrap(err, "failed to create decoder")
	}

	if err := decoder.Decode(settings); err != nil {
		return Preset{}, errors.Wrapf(err, "failed to decode preset %s", name)
	}

	if err := defaults.Set(&cfg); err != nil {
		return Preset{}, errors.Wrap(err, "failed to set defaults")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return Preset{}, errors.Wrapf(err, "preset %s validation failed", name)
	}

	return Preset{
		Name:        name,
		Description: cfg.Description,
		Values: breath.Values{
			Inhale: cfg.InhaleSec,
			Hold:   cfg.HoldSec,
			Exhale: cfg.ExhaleSec,
			Cycles: cfg.Cycles,
		},
	}, nil
}

// Catalog combines the built-in presets with config-defined ones.
// Config-defined presets replace built-ins of the same name.
type Catalog struct {
	presets map[string]Preset
}

// NewCatalog creates a catalog from config-defined preset settings.
func NewCatalog(custom map[string]map[string]any) (*Catalog, error) {
	c := &Catalog{presets: make(map[string]Preset)}

	for name, factory := range GetRegistered() {
		c.presets[name] = factory()
	}

	for name, settings := range custom {
		p, err := Decode(name, settings)
		if err != nil {
			return nil, err
		}
		if _, exists := c.presets[name]; exists {
			zlog.Info().Msgf("preset %s overridden by config", name)
		}
		c.presets[name] = p
	}

	return c, nil
}

// Get returns the preset with the given name.
func (c *Catalog) Get(name string) (Preset, error) {
	p, ok := c.presets[name]
	if !ok {
		return Preset{}, errors.Wrapf(ErrNotFound, "name=%s", name)
	}
	return p, nil
}

// List returns all presets sorted by name.
func (c *Catalog) List() []Preset {
	result := make([]Preset, 0, len(c.presets))
	for _, p := range c.presets {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
