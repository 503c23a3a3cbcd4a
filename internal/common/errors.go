// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrValidation indicates caller-supplied input violated a field constraint.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates an update or delete targeted a row that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a delete was refused because dependent rows reference
	// the target, or a uniqueness rule was violated.
	ErrConflict = errors.New("referential conflict")

	// ErrStorage indicates an underlying I/O failure in the persistence layer.
	ErrStorage = errors.New("storage failure")

	// ErrUnauthorized indicates a failed credential check.
	ErrUnauthorized = errors.New("invalid credentials")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
