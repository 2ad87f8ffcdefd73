package apperror

import (
	"errors"
	"fmt"
)

const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeNotFound      = "NOT_FOUND"
	CodeInternalError = "INTERNAL_ERROR"
)

type AppError struct {
	Code    string // Error code (e.g., INVALID_INPUT)
	Message string // User-facing message
	Err     error  // Wrapped original error (optional)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another AppError carrying the same code and message, so a wrapped
// copy still compares equal to its sentinel.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap returns a copy of base carrying err as its cause.
func Wrap(base *AppError, err error) *AppError {
	if err == nil {
		return base
	}
	return &AppError{Code: base.Code, Message: base.Message, Err: err}
}

// Wrapf is Wrap with a formatted cause.
func Wrapf(base *AppError, format string, args ...any) *AppError {
	return Wrap(base, fmt.Errorf(format, args...))
}
