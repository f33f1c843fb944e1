package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
const (
	// ExitSuccess indicates the manifest was updated or already current.
	ExitSuccess = 0

	// ExitFailure indicates the manifest could not be loaded or written.
	ExitFailure = 1

	// ExitUsage indicates an invalid command line.
	ExitUsage = 2
)

// ExitError represents a command termination with a specific exit code.
//
// Fields:
//   - Code: Exit code (ExitSuccess, ExitFailure, ExitUsage)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
//
// Example:
//
//	return &ExitError{
//	    Code:    ExitFailure,
//	    Message: "failed to load manifest",
//	    Err:     err,
//	}
type ExitError struct {
	// Code is the exit code for the command.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise the underlying error's message,
// or a default message with the exit code.
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess. If err carries a code (ExitError or
// UsageError anywhere in its chain), returns that code. Otherwise returns
// ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
//
// Example:
//
//	code := errors.GetExitCode(err)
//	os.Exit(code)
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if _, ok := IsUsageError(err); ok {
		return ExitUsage
	}

	return ExitFailure
}

// IsExitError checks if err is an ExitError and returns it.
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// UsageError indicates the command line could not be accepted.
//
// Fields:
//   - Usage: The usage line to show the user
//   - Reason: What was wrong, e.g. "expected 3 arguments, got 2"
type UsageError struct {
	// Usage is the one-line usage synopsis.
	Usage string

	// Reason describes what was wrong with the invocation.
	Reason string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	if e.Reason == "" {
		return "usage: " + e.Usage
	}
	return fmt.Sprintf("%s\nusage: %s", e.Reason, e.Usage)
}

// NewUsageError creates a UsageError.
//
// Parameters:
//   - usage: Usage synopsis
//   - reason: What was wrong; may be empty
//
// Returns:
//   - *UsageError: New usage error
func NewUsageError(usage, reason string) *UsageError {
	return &UsageError{Usage: usage, Reason: reason}
}

// IsUsageError checks if err is a UsageError and returns it.
func IsUsageError(err error) (*UsageError, bool) {
	var ue *UsageError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// FileAccessError indicates the manifest path does not exist.
type FileAccessError struct {
	// Path is the manifest path that was requested.
	Path string

	// Err is the underlying filesystem error.
	Err error
}

// Error implements the error interface.
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// Unwrap returns the underlying filesystem error.
func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// IsFileAccessError checks if err is a FileAccessError and returns it.
func IsFileAccessError(err error) (*FileAccessError, bool) {
	var fe *FileAccessError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// FormatError indicates the manifest content is not valid YAML.
type FormatError struct {
	// Path is the manifest path.
	Path string

	// Err is the parser error.
	Err error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid YAML in %s: %v", e.Path, e.Err)
}

// Unwrap returns the parser error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsFormatError checks if err is a FormatError and returns it.
func IsFormatError(err error) (*FormatError, bool) {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// IO operations reported by IOError.
const (
	OpRead  = "read"
	OpWrite = "write"
)

// IOError indicates a read or write failure other than a missing file.
//
// Fields:
//   - Op: OpRead or OpWrite
//   - Path: The manifest path
//   - Err: The underlying error
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOError checks if err is an IOError and returns it.
func IsIOError(err error) (*IOError, bool) {
	var ie *IOError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
