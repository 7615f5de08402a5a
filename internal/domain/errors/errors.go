// Package errors defines the error taxonomy of the sign-in client.
package errors

import (
	"fmt"

	"beacon/internal/errors"
)

// AuthError defines the interface for client-side authentication errors
type AuthError interface {
	error
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AuthError interface
type BaseError struct {
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(errorCode, message, details string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Link and settings errors, raised before any backend call

	ErrMalformedLink = NewBaseError(
		"MALFORMED_LINK",
		"sign-in link does not contain an oobCode parameter",
		"",
	)

	ErrInvalidSettings = NewBaseError(
		"INVALID_SETTINGS",
		"action code settings are incomplete",
		"",
	)

	ErrMissingToken = NewBaseError(
		"MISSING_TOKEN",
		"access token is required for account lookup",
		"",
	)

	// Decode errors, raised when a backend reply is missing required fields

	ErrMalformedResponse = NewBaseError(
		"MALFORMED_RESPONSE",
		"backend response is missing required fields",
		"",
	)

	// Validation errors, raised on caller input before a request is built

	ErrValidationFailed = NewBaseError(
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)
)

// BackendError carries an opaque transport or server failure. The status
// code and message come from the backend verbatim and are never interpreted
// by the client beyond propagation.
type BackendError struct {
	StatusCode int    // HTTP status code reported by the backend
	Code       string // backend error token, e.g. "INVALID_OOB_CODE"
}

// NewBackendError creates a backend error from a backend reply.
func NewBackendError(statusCode int, code string) *BackendError {
	return &BackendError{
		StatusCode: statusCode,
		Code:       code,
	}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error %d: %s", e.StatusCode, e.Code)
}

// ErrorCode returns the backend error token
func (e *BackendError) ErrorCode() string {
	return e.Code
}

// Message returns the user-facing rendering of the backend failure
func (e *BackendError) Message() string {
	return e.Error()
}

// Details returns detailed error information
func (e *BackendError) Details() string {
	return ""
}

// IsBackendError reports whether err carries a BackendError and returns it
// when present.
func IsBackendError(err error) (*BackendError, bool) {
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr, true
	}

	return nil, false
}
