package domain

import (
	"errors"
	"fmt"
)

// HTTP-like codes carried by domain errors.
const (
	CodeInvalid  = 400
	CodeNotFound = 404
	CodeConflict = 409
	CodeInternal = 500
)

// Sentinel kinds for errors.Is checks.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// DomainError is a business failure with a stable code. Expected failures
// travel across the service boundary as values, never as panics.
type DomainError struct {
	code    int
	message string
	kind    error
}

// NewValidationError creates a validation failure (code 400).
func NewValidationError(format string, args ...any) *DomainError {
	return &DomainError{code: CodeInvalid, message: fmt.Sprintf(format, args...), kind: ErrValidation}
}

// NewNotFoundError creates a not-found failure (code 404).
func NewNotFoundError(format string, args ...any) *DomainError {
	return &DomainError{code: CodeNotFound, message: fmt.Sprintf(format, args...), kind: ErrNotFound}
}

// NewConflictError creates a uniqueness-violation failure (code 409).
func NewConflictError(format string, args ...any) *DomainError {
	return &DomainError{code: CodeConflict, message: fmt.Sprintf(format, args...), kind: ErrConflict}
}

// WrapError wraps an unexpected error as an internal failure (code 500).
func WrapError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var derr *DomainError
	if errors.As(err, &derr) {
		return derr
	}
	return &DomainError{code: CodeInternal, message: err.Error(), kind: err}
}

func (e *DomainError) Error() string { return e.message }

// Code returns the HTTP-like status code of the failure.
func (e *DomainError) Code() int { return e.code }

// Unwrap exposes the sentinel kind for errors.Is.
func (e *DomainError) Unwrap() error { return e.kind }

// CodeOf extracts the code from any error, defaulting to CodeInternal.
func CodeOf(err error) int {
	var derr *DomainError
	if errors.As(err, &derr) {
		return derr.code
	}
	return CodeInternal
}
