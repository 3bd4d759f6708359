// Package apperr defines the error categories the dataidea commands distinguish.
//
//	UserError     bad input such as an unknown sort key or a malformed flag value.
//	              Only the message is printed. Exit code 1.
//
//	ErrCancelled  the user declined a confirmation dialog, e.g. opening an external
//	              download link. Exit code 0.
//
// Network and decoding failures stay plain wrapped errors; a missing dataset is a
// rendered state rather than an error.
package apperr

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user explicitly aborts an interactive operation.
var ErrCancelled = errors.New("operation cancelled")

// UserError represents an error caused by invalid or missing user input.
type UserError struct {
	Message string
}

func (e *UserError) Error() string { return e.Message }

// User creates a UserError with the given message.
func User(msg string) error { return &UserError{Message: msg} }

// Userf creates a formatted UserError.
func Userf(format string, args ...any) error {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// IsUser reports whether err is (or wraps) a *UserError.
func IsUser(err error) bool {
	var u *UserError
	return errors.As(err, &u)
}

// IsCancelled reports whether err is (or wraps) ErrCancelled.
func IsCancelled(err error) bool { return errors.Is(err, ErrCancelled) }
