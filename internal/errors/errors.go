// Package errors provides a lightweight structured error type (ToolError)
// for category-based classification in the datebuilder CLI.
package errors

import (
	"fmt"
)

// ErrorCategory classifies a ToolError for exit-code and display decisions.
type ErrorCategory string

const (
	// User-facing input and configuration errors
	CategoryValidation ErrorCategory = "validation"
	CategoryConfig     ErrorCategory = "config"

	// Everything that indicates a bug in the tool itself
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal ErrorSeverity = "fatal" // Stops execution
	SeverityError ErrorSeverity = "error" // Error, but not fatal
)

// ToolError is a structured error with category, severity and optional cause.
type ToolError struct {
	Category ErrorCategory
	Severity ErrorSeverity
	Message  string
	Cause    error
}

// Error implements the error interface
func (e *ToolError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *ToolError) Unwrap() error {
	return e.Cause
}

// New creates a new ToolError
func New(category ErrorCategory, severity ErrorSeverity, message string) *ToolError {
	return &ToolError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new ToolError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *ToolError {
	return &ToolError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// NewValidation creates a fatal user-input error.
func NewValidation(message string) *ToolError {
	return New(CategoryValidation, SeverityFatal, message)
}

// NewConfig creates a fatal configuration error.
func NewConfig(message string) *ToolError {
	return New(CategoryConfig, SeverityFatal, message)
}

// WrapConfig wraps a configuration failure.
func WrapConfig(cause error, message string) *ToolError {
	return Wrap(cause, CategoryConfig, SeverityFatal, message)
}

// WrapInternal wraps an unexpected internal failure.
func WrapInternal(cause error, message string) *ToolError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
