package ui

import (
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"

	"github.com/osa030/breathbox/internal/app/settings"
	"github.com/osa030/breathbox/internal/domain/breath"
)

// ErrAborted is returned when the settings form is cancelled.
var ErrAborted = errors.New("settings form aborted")

// settingsForm holds the text values bound to the form inputs.
type settingsForm struct {
	inhale string
	hold   string
	exhale string
	cycles string
}

func newSettingsForm(v breath.Values) *settingsForm {
	return &settingsForm{
		inhale: strconv.Itoa(v.Inhale),
		hold:   strconv.Itoa(v.Hold),
		exhale: strconv.Itoa(v.Exhale),
		cycles: strconv.Itoa(v.Cycles),
	}
}

// intInRange returns an input validator accepting integers in [lo, hi].
func intInRange(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.New("enter a whole number")
		}
		if n < lo || n > hi {
			return errors.Newf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func (f *settingsForm) build() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Inhale").
				Description("Seconds breathing in").
				Value(&f.inhale).
				Validate(intInRange(1, 120)),
			huh.NewInput().
				Title("Hold").
				Description("Seconds holding, 0 to skip").
				Value(&f.hold).
				Validate(intInRange(0, 120)),
			huh.NewInput().
				Title("Exhale").
				Description("Seconds breathing out").
				Value(&f.exhale).
				Validate(intInRange(1, 120)),
			huh.NewInput().
				Title("Cycles").
				Value(&f.cycles).
				Validate(intInRange(1, 100)),
		),
	)
}

// values converts the form inputs back into breathing values.
func (f *settingsForm) values() (breath.Values, error) {
	var v breath.Values
	for _, field := range []struct {
		dst *int
		src string
	}{
		{&v.Inhale, f.inhale},
		{&v.Hold, f.hold},
		{&v.Exhale, f.exhale},
		{&v.Cycles, f.cycles},
	} {
		n, err := strconv.Atoi(field.src)
		if err != nil {
			return breath.Values{}, errors.Wrapf(err, "invalid value %q", field.src)
		}
		*field.dst = n
	}
	if err := settings.Validate(v); err != nil {
		return breath.Values{}, err
	}
	return v, nil
}

// AskSettings prompts for the breathing values, starting from current.
func AskSettings(current breath.Values) (breath.Values, error) {
	f := newSettingsForm(current)
	if err := f.build().Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return breath.Values{}, ErrAborted
		}
		return breath.Values{}, errors.Wrap(err, "failed to run settings form")
	}
	return f.values()
}
