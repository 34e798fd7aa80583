// Package errors provides typed errors for reportflow
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error
	ErrConfig ErrorType = iota
	// ErrBackend indicates a backend API transport error
	ErrBackend
	// ErrAuth indicates an authentication error (login or token extraction)
	ErrAuth
	// ErrValidation indicates an input validation error
	ErrValidation
)

// FlowError is the base error type for all reportflow errors
type FlowError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the error message
func (e *FlowError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *FlowError) Unwrap() error {
	return e.Cause
}

// New creates a new FlowError
func New(errType ErrorType, message string, cause error) *FlowError {
	return &FlowError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *FlowError {
	return New(ErrConfig, message, cause)
}

// BackendError creates a backend transport error
func BackendError(message string, cause error) *FlowError {
	return New(ErrBackend, message, cause)
}

// AuthError creates an authentication error
func AuthError(message string, cause error) *FlowError {
	return New(ErrAuth, message, cause)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *FlowError {
	return New(ErrValidation, message, cause)
}

// WithContext adds context to the error
func (e *FlowError) WithContext(key string, value interface{}) *FlowError {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var flowErr *FlowError
	if err == nil {
		return false
	}
	if errors.As(err, &flowErr) {
		return flowErr.Type == errType
	}
	return false
}

// IsFatal returns true if the error must abort the run.
//
// Registration and report failures are surfaced but never abort: duplicate
// accounts and already-filed reports are expected across repeated runs.
// Auth errors abort, since reporting is meaningless without a bearer token.
// Config and validation errors abort because the operator has to fix input.
func IsFatal(err error) bool {
	var flowErr *FlowError
	if !errors.As(err, &flowErr) {
		return false
	}

	switch flowErr.Type {
	case ErrAuth, ErrConfig, ErrValidation:
		return true
	default:
		return false
	}
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrBackend:
		return "BACKEND"
	case ErrAuth:
		return "AUTH"
	case ErrValidation:
		return "VALIDATION"
	default:
		return "UNKNOWN"
	}
}
