// ABOUTME: Error types and handling for the POI translation library
// ABOUTME: Wraps engine errors in a typed Error so callers need not import core packages

package poitranslate

import (
	"errors"
	"fmt"

	coreerrors "poi-translation-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates invalid input
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNotFound indicates a review item was not found
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeProvider indicates an external source failed
	ErrorTypeProvider ErrorType = "provider"

	// ErrorTypeConfiguration indicates the client was built incorrectly
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeInternal indicates an unexpected failure
	ErrorTypeInternal ErrorType = "internal"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

var (
	// ErrNoSources is returned when neither a search provider nor a translation provider is set
	ErrNoSources = NewError(ErrorTypeConfiguration, "at least one search or translation provider is required")

	// ErrNoReviewQueue is returned by review operations when no queue is configured
	ErrNoReviewQueue = NewError(ErrorTypeConfiguration, "no review queue configured")

	// ErrClientClosed is returned when a batch is attempted after Close
	ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")
)

// wrapError converts engine errors to library errors
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	var libErr *Error
	if errors.As(err, &libErr) {
		return err
	}

	switch {
	case coreerrors.IsValidation(err):
		return NewError(ErrorTypeValidation, "invalid request").WithCause(err)
	case coreerrors.IsNotFound(err):
		return NewError(ErrorTypeNotFound, "not found").WithCause(err)
	case coreerrors.IsProvider(err), coreerrors.IsTimeout(err):
		return NewError(ErrorTypeProvider, "provider failed").WithCause(err)
	default:
		return NewError(ErrorTypeInternal, "operation failed").WithCause(err)
	}
}

func isType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsProviderError checks if an error came from an external source
func IsProviderError(err error) bool {
	return isType(err, ErrorTypeProvider)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}
