package services

import "fmt"

// ValidationError reports missing or malformed input. Mapped to HTTP 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NewValidationError builds a ValidationError with a formatted reason.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an identifier that does not resolve. Mapped to HTTP 404.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// NewNotFoundError builds a NotFoundError for the named resource.
func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

// AuthError reports a missing or invalid credential. Mapped to HTTP 401.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string { return e.Reason }

// NewAuthError builds an AuthError with the given reason.
func NewAuthError(reason string) error {
	return &AuthError{Reason: reason}
}

// InsufficientBalanceError reports a redeem attempt exceeding the current
// reward balance. Mapped to HTTP 400. The balance is left untouched.
type InsufficientBalanceError struct {
	Requested int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient reward balance for %d points", e.Requested)
}
