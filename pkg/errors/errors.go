// Package errors provides structured error types for datastripes.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP preview server
//   - Machine-readable error codes for programmatic handling
//   - User-friendly diagnostics naming the offending file and line
//
// # Error Codes
//
// The codes mirror the failure taxonomy of the stripe pipeline:
//   - PARSE_ERROR: malformed count line, malformed value line, missing header
//   - CONFIGURATION_ERROR: stripe count does not fit the target width, bad constants
//   - DIMENSION_MISMATCH: bars of inconsistent size passed to the compositor
//
// # Usage
//
//	err := errors.New(errors.ErrCodeConfiguration, "too many stripes: %d", n)
//	if errors.Is(err, errors.ErrCodeConfiguration) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeParse, origErr, "%s:%d: invalid value", file, line)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Pipeline errors
	ErrCodeParse             Code = "PARSE_ERROR"
	ErrCodeConfiguration     Code = "CONFIGURATION_ERROR"
	ErrCodeDimensionMismatch Code = "DIMENSION_MISMATCH"

	// Input errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidPath  Code = "INVALID_PATH"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
// A cause whose text is already the message is not repeated.
func (e *Error) Error() string {
	if e.Cause != nil && e.Cause.Error() != e.Message {
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

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
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

// LineError locates a parse failure within an input file.
// Line is 1-based; zero means the failure is not tied to a single line.
type LineError struct {
	File string
	Line int
	Err  error
}

// Error implements the error interface.
func (e *LineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

// Unwrap returns the wrapped error.
func (e *LineError) Unwrap() error { return e.Err }

// Parse builds a PARSE_ERROR located at file:line.
func Parse(file string, line int, format string, args ...any) *Error {
	loc := &LineError{File: file, Line: line, Err: fmt.Errorf(format, args...)}
	return &Error{Code: ErrCodeParse, Message: loc.Error(), Cause: loc}
}

// Location returns the file and line recorded in err's chain, if any.
func Location(err error) (file string, line int, ok bool) {
	var le *LineError
	if errors.As(err, &le) {
		return le.File, le.Line, true
	}
	return "", 0, false
}
