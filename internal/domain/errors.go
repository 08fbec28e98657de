package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an admin action is attempted from an
// order status the transition table does not allow it from.
var ErrInvalidTransition = errors.New("invalid order status transition")

// ValidationError reports malformed input. It is always raised before any
// repository or storage call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
