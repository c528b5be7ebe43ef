// Package settings provides the breathing pattern store read by the sequencer.
package settings

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/osa030/breathbox/internal/domain/breath"
)

// Field identifies an adjustable value.
type Field int

const (
	FieldInhale Field = iota // Inhale seconds
	FieldHold                // Hold seconds
	FieldExhale              // Exhale seconds
	FieldCycles              // Cycle count
)

// String returns the string representation of the field.
func (f Field) String() string {
	switch f {
	case FieldInhale:
		return "inhale"
	case FieldHold:
		return "hold"
	case FieldExhale:
		return "exhale"
	case FieldCycles:
		return "cycles"
	default:
		return "unknown"
	}
}

// ErrUnknownField is returned by Adjust for an invalid field.
var ErrUnknownField = errors.New("unknown settings field")

var validate = validator.New()

// Validate checks that values form a runnable pattern.
func Validate(v breath.Values) error {
	if err := validate.Struct(v); err != nil {
		return errors.Wrap(err, "invalid breathing values")
	}
	return nil
}

// Store holds the current breathing values with thread-safe access.
type Store struct {
	mu     sync.RWMutex
	values breath.Values
	preset string
}

// NewStore creates a store with validated initial values.
func NewStore(initial breath.Values) (*Store, error) {
	if err := Validate(initial); err != nil {
		return nil, err
	}
	return &Store{values: initial}, nil
}

// InhaleSeconds returns the inhale duration.
func (s *Store) InhaleSeconds() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.Inhale
}

// HoldSeconds returns the hold duration (0 disables the phase).
func (s *Store) HoldSeconds() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.Hold
}

// ExhaleSeconds returns the exhale duration.
func (s *Store) ExhaleSeconds() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.Exhale
}

// CycleCount returns the number of cycles per session.
func (s *Store) CycleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.Cycles
}

// Values returns a copy of all values.
func (s *Store) Values() breath.Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values
}

// Preset returns the name of the last applied preset, if any.
func (s *Store) Preset() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preset
}

// Set replaces all values. Invalid values leave the store unchanged.
func (s *Store) Set(v breath.Values) error {
	if err := Validate(v); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = v
	s.preset = ""
	return nil
}

// Apply replaces the values with a named pattern.
func (s *Store) Apply(name string, v breath.Values) error {
	if err := Validate(v); err != nil {
		return errors.Wrapf(err, "preset %s", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = v
	s.preset = name
	return nil
}

// Adjust adds delta to one field and returns the new values.
// An adjustment that would leave the valid range is rejected.
func (s *Store) Adjust(field Field, delta int) (breath.Values, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.values
	switch field {
	case FieldInhale:
		next.Inhale += delta
	case FieldHold:
		next.Hold += delta
	case FieldExhale:
		next.Exhale += delta
	case FieldCycles:
		next.Cycles += delta
	default:
		return s.values, errors.Wrapf(ErrUnknownField, "field %d", int(field))
	}

	if err := Validate(next); err != nil {
		return s.values, errors.Wrapf(err, "adjust %s by %d", field, delta)
	}

	s.values = next
	s.preset = ""
	return next, nil
}
