// Package apperror defines the closed set of error kinds the API can produce.
// Handlers branch on these with errors.Is instead of matching message text.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrDuplicate  = errors.New("duplicate")
	ErrNotFound   = errors.New("not found")
	ErrAuth       = errors.New("unauthorized")
	ErrStorage    = errors.New("storage failure")
)

type AppError struct {
	Err     error  // one of the sentinels above, or a wrapped storage error
	Message string // safe to return to the client
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message}
}

func Duplicate(message string) *AppError {
	return &AppError{Err: ErrDuplicate, Message: message}
}

func NotFound(resource string) *AppError {
	return &AppError{Err: ErrNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Auth(message string) *AppError {
	return &AppError{Err: ErrAuth, Message: message}
}

// Storage wraps an unexpected store error. The cause is kept for logging but
// the client only ever sees an opaque message.
func Storage(cause error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %w", ErrStorage, cause),
		Message: "Internal server error",
	}
}
