package serialization

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMalformedState is returned for persisted state that cannot be parsed
// or is missing required fields.
var ErrMalformedState = errors.New("serialization: malformed persisted state")

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Field   string // JSON path of the offending field (e.g., "weights[1]")
	Details string // What is wrong with it
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrMalformedState, e.Field, e.Details)
}

// Unwrap makes errors.Is(err, ErrMalformedState) hold.
func (e *ValidationError) Unwrap() error {
	return ErrMalformedState
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Details: fmt.Sprintf(format, args...)}
}
