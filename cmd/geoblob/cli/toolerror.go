// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies command errors so that scripts driving the
// CLI can decide whether to fix their input or report a bug without
// parsing message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// wrong argument count, unparseable values, a blob that fails its
	// checks. The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced file does not exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryConflict indicates the operation conflicts with existing
	// state, such as an output file that already exists.
	CategoryConflict ErrorCategory = "conflict"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, or output the tool itself produced failing to parse.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by CLI commands.
//
// ToolError wraps an inner error, preserving the full error chain for
// errors.Is (a blob ErrConsistency stays matchable) while adding
// category metadata. Use the category-specific constructors rather
// than constructing ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is an optional next step appended to the message after a
	// blank line.
	Hint string
}

// Error returns the underlying error message, followed by the hint
// when one is set.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the hint and returns the receiver for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced file does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Conflict creates a conflict error: the operation conflicts with existing state.
func Conflict(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryConflict, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
