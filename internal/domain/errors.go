package domain

import (
	"errors"
	"fmt"
)

var (
	ErrGuestNotFound      = errors.New("guest not found")
	ErrInvitationNotFound = errors.New("invitation not found")
)

// ValidationError rejects a mutation before it reaches the repository.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
