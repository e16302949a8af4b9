// Package errors provides structured error types for the bellows generator.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the geometry engine, layout and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages naming the offending parameter or path
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow the failure categories of a single generator run:
//   - INVALID_*: Input validation failures, reported before any geometry
//   - INSUFFICIENT_DRAW_LENGTH: the draw cannot hold a single fold pair
//   - UNSUPPORTED_FORMAT: unknown export format or page size
//   - EXPORT_FAILURE: the renderer or the file system failed
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDimension, "front width must be positive, got %g", w)
//	if errors.Is(err, errors.ErrCodeInvalidDimension) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeExportFailure, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidDimension Code = "INVALID_DIMENSION"

	// Geometry errors
	ErrCodeInsufficientDraw Code = "INSUFFICIENT_DRAW_LENGTH"

	// Output errors
	ErrCodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	ErrCodeExportFailure     Code = "EXPORT_FAILURE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// coder is implemented by error types that carry a code without being an *Error.
type coder interface {
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a coded error with a matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// DrawLengthError reports a maximum draw too short for one fold pair.
// MinDraw is the smallest draw that fits a pair with the requested construction.
type DrawLengthError struct {
	MaxDraw float64
	MinDraw float64
}

// Error implements the error interface.
func (e *DrawLengthError) Error() string {
	return fmt.Sprintf("%s: max draw %.2fmm cannot hold one fold pair, need at least %.2fmm",
		ErrCodeInsufficientDraw, e.MaxDraw, e.MinDraw)
}

// Code returns the error code for this error type.
func (e *DrawLengthError) Code() Code {
	return ErrCodeInsufficientDraw
}
