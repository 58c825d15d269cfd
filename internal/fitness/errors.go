package fitness

import (
	"errors"
	"fmt"
)

var ErrInvalidActivityType = errors.New("invalid activity type")

// ValidationError is returned for malformed or missing input.
// It is surfaced to the caller as is and must never be retried.
type ValidationError struct {
	Field   string
	Message string
	err     error
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func invalidActivityType(raw string) *ValidationError {
	msg := fmt.Sprintf("unknown activity type [%s]", raw)
	if raw == "" {
		msg = "activity type is required"
	}
	return &ValidationError{
		Field:   "type",
		Message: msg,
		err:     ErrInvalidActivityType,
	}
}

// IsValidationError reports whether any error in err's chain is a *ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
