package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates an unknown request id.
	ErrNotFound = errors.New("request not found")
	// ErrNotPending indicates a decision attempted on an already decided request.
	ErrNotPending = errors.New("request is not pending")
	// ErrForbidden indicates the actor's role lacks permission for the operation.
	ErrForbidden = errors.New("operation not permitted for this role")
	// ErrInvalidCredentials indicates a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a missing or invalid input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
