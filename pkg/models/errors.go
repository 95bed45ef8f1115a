package models

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec is the sentinel error wrapped by every SpecError.
var ErrInvalidSpec = errors.New("models: invalid project spec")

// SpecError describes a single invalid ProjectSpec field.
type SpecError struct {
	Field   string
	Message string
	Value   string
}

// Error implements the error interface.
func (e *SpecError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns the sentinel error for errors.Is support.
func (e *SpecError) Unwrap() error {
	return ErrInvalidSpec
}
