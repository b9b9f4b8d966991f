package api

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned by NewClient when the key is empty
	ErrMissingAPIKey = errors.New("api key is required")

	// ErrInvalidRequest is matched by every local validation error
	ErrInvalidRequest = errors.New("invalid request")
)

// ValidationError is a local precondition failure. It is returned before any
// request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func missing(field string) *ValidationError {
	return newValidationError(field, "is required")
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap lets errors.Is match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// ErrorResponse is the error body returned with any non-2xx status
type ErrorResponse struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"msg"`
}

// Error implements the error interface.
func (e *ErrorResponse) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("request failed with status %d: %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// AsErrorResponse extracts a remote error from err
func AsErrorResponse(err error) (*ErrorResponse, bool) {
	var resp *ErrorResponse
	if errors.As(err, &resp) {
		return resp, true
	}
	return nil, false
}

// IsValidationError reports whether err is a local precondition failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}
