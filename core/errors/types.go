// ABOUTME: Custom error types for the translation engine
// ABOUTME: Provides structured errors for invalid input, provider failures and missing resources

package errors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents invalid input supplied by a caller
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ProviderError represents a failure reported by an external translation or search provider
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("provider error from %s: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("provider error from %s: %d - %s", e.Provider, e.StatusCode, e.Message)
}

// ProviderTimeoutError is returned when a provider call exceeds its deadline
type ProviderTimeoutError struct {
	Provider string
	Timeout  time.Duration
}

// Error implements the error interface
func (e *ProviderTimeoutError) Error() string {
	return fmt.Sprintf("provider %s timed out after %s", e.Provider, e.Timeout)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsProvider checks if an error is a ProviderError
func IsProvider(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr)
}

// IsTimeout checks if an error is a ProviderTimeoutError
func IsTimeout(err error) bool {
	var timeoutErr *ProviderTimeoutError
	return errors.As(err, &timeoutErr)
}

// ClassifyProviderError converts a raw error from a provider call into the
// taxonomy above. Deadline errors become ProviderTimeoutError, typed errors
// pass through, anything else becomes a ProviderError.
func ClassifyProviderError(provider string, timeout time.Duration, err error) error {
	if err == nil {
		return nil
	}
	if IsTimeout(err) || IsProvider(err) || IsValidation(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &ProviderTimeoutError{Provider: provider, Timeout: timeout}
	}
	return &ProviderError{Provider: provider, Message: err.Error()}
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
