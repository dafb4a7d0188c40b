package mlp

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUninitialized = errors.New("network is not initialized")
	ErrPersistence   = errors.New("persistence failed")
	ErrInvalidConfig = errors.New("invalid network config")

	// ErrInvalidSnapshot marks a snapshot that decoded but does not describe
	// a consistent two-layer network.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// InputError describes an input vector or label rejected before any state was
// touched. It unwraps to ErrInvalidInput.
type InputError struct {
	Field string // "input" or "label"
	Got   int    // Offending length or label
	Want  int    // Expected length, or the exclusive upper label bound
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Field == "label" {
		return fmt.Sprintf("%v: label %d outside [0, %d)", ErrInvalidInput, e.Got, e.Want)
	}
	return fmt.Sprintf("%v: %s length %d, expected %d", ErrInvalidInput, e.Field, e.Got, e.Want)
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// persistError wraps err so that it matches both ErrPersistence and err.
func persistError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
