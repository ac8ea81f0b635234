package client

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrInvalidCredential is returned when the upstream rejects the API key.
	ErrInvalidCredential = errors.New("invalid API credential")

	// ErrForbidden is returned when the API key lacks access to the resource.
	ErrForbidden = errors.New("credential lacks access")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRetryExhausted is returned when all retry attempts are exhausted.
	ErrRetryExhausted = errors.New("retry attempts exhausted")
)

// ErrorClass represents a classification of upstream failures.
type ErrorClass string

const (
	// ErrorClassThrottled represents 429 quota-exceeded responses. The only
	// retriable class.
	ErrorClassThrottled ErrorClass = "throttled"

	// ErrorClassAuth represents 401/403 credential failures.
	ErrorClassAuth ErrorClass = "auth"

	// ErrorClassNotFound represents 404 responses.
	ErrorClassNotFound ErrorClass = "not_found"

	// ErrorClassUpstream represents other upstream failures (5xx, malformed
	// requests) and transport errors.
	ErrorClassUpstream ErrorClass = "upstream"
)

// APIError represents an upstream failure with enough context for the caller
// to log and hint the user.
type APIError struct {
	Operation  string
	StatusCode int
	Class      ErrorClass
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("riot %s: %s error (status %d): %s: %v",
			e.Operation, e.Class, e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("riot %s: %s error (status %d): %s",
		e.Operation, e.Class, e.StatusCode, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsRetriable reports whether an error is transient upstream throttling.
// Everything else (auth failure, not-found, malformed request, network
// error) is fatal and must not be retried.
func IsRetriable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Class == ErrorClassThrottled
	}
	return false
}
