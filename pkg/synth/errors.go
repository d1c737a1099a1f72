package synth

import (
	"errors"
	"fmt"
)

var (
	// ErrReflection is matched by every *ReflectionError.
	ErrReflection = errors.New("reflection failed")
	// ErrCycleGuard reports a placeholder that disappeared while its type was being resolved.
	ErrCycleGuard = errors.New("cycle guard violation")
	// ErrDuplicateID reports two distinct types resolving to the same schema id.
	ErrDuplicateID = errors.New("duplicate schema id")
	// ErrEmptyID reports a naming convention that produced no id.
	ErrEmptyID = errors.New("empty schema id")
)

// ReflectionError reports a type whose properties could not be enumerated or classified.
type ReflectionError struct {
	// Type is the type being synthesized.
	Type string
	// Property is the offending property, empty when the type itself failed.
	Property string
	Err      error
}

func (e *ReflectionError) Error() string {
	if e.Property != "" {
		return fmt.Sprintf("reflect %s.%s: %v", e.Type, e.Property, e.Err)
	}
	return fmt.Sprintf("reflect %s: %v", e.Type, e.Err)
}

func (e *ReflectionError) Unwrap() []error {
	return []error{ErrReflection, e.Err}
}
