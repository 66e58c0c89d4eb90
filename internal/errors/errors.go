// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package errors provides structured error handling for the intmap CLI.
//
// UserError carries what went wrong, why, and how to fix it, together with
// the exit code the process should terminate with.
//
// # Formatted Output
//
//	err := errors.NewInputError(
//	    "Cannot apply transform",
//	    `Unknown transform "cube"`,
//	    "Use one of: decrement, double, identity, increment, negate, square",
//	)
//	fmt.Fprint(os.Stderr, err.Format(false))
//	// Error: Cannot apply transform
//	// Cause: Unknown transform "cube"
//	// Fix:   Use one of: decrement, double, identity, increment, negate, square
//
// With --json the same error is encoded with ToJSON:
//
//	{
//	  "error": "Cannot apply transform",
//	  "cause": "Unknown transform \"cube\"",
//	  "fix": "Use one of: ...",
//	  "exit_code": 4
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Successful execution
//   - ExitConfig (1): Configuration errors (unreadable or malformed config)
//   - ExitInput (4): Invalid input (bad values, unknown or missing transform)
//   - ExitIO (7): Output stream failures
//   - ExitInternal (10): Internal errors (bugs)
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/kraklabs/intmap/pkg/sequence"
)

// Exit codes for different error categories.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitConfig indicates configuration errors.
	ExitConfig = 1

	// ExitInput indicates invalid user input.
	ExitInput = 4

	// ExitIO indicates the output stream could not be written or flushed.
	ExitIO = 7

	// ExitInternal indicates internal errors.
	// Exit code 10 signals "this is a bug that should be reported".
	ExitInternal = 10
)

// UserError represents an error with structured context for end users.
//
// It provides three levels of information:
//   - Message: What went wrong
//   - Cause: Why it happened
//   - Fix: How to fix it
type UserError struct {
	Message  string
	Cause    string
	Fix      string
	ExitCode int

	// Err is the underlying error, if any. It is exposed through Unwrap so
	// errors.Is matches sentinel kinds such as sequence.ErrIO.
	Err error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error with exit code ExitConfig.
func NewConfigError(msg, cause, fix string, err error) *UserError {
	return &UserError{Message: msg, Cause: cause, Fix: fix, ExitCode: ExitConfig, Err: err}
}

// NewInputError creates an input validation error with exit code ExitInput.
//
// Input errors typically do not wrap an underlying error.
func NewInputError(msg, cause, fix string) *UserError {
	return &UserError{Message: msg, Cause: cause, Fix: fix, ExitCode: ExitInput}
}

// NewIOError creates an output failure error with exit code ExitIO.
func NewIOError(msg, cause, fix string, err error) *UserError {
	return &UserError{Message: msg, Cause: cause, Fix: fix, ExitCode: ExitIO, Err: err}
}

// NewInternalError creates an internal error with exit code ExitInternal.
func NewInternalError(msg, cause, fix string, err error) *UserError {
	return &UserError{Message: msg, Cause: cause, Fix: fix, ExitCode: ExitInternal, Err: err}
}

// FromError converts err into a UserError, classifying the sequence
// package's error kinds. A UserError is returned unchanged; nil stays nil.
func FromError(msg string, err error) *UserError {
	if err == nil {
		return nil
	}
	var ue *UserError
	if stderrors.As(err, &ue) {
		return ue
	}

	switch {
	case stderrors.Is(err, sequence.ErrInvalidArgument):
		return &UserError{
			Message:  msg,
			Cause:    err.Error(),
			Fix:      "Use one of: " + strings.Join(sequence.Names(), ", "),
			ExitCode: ExitInput,
			Err:      err,
		}
	case stderrors.Is(err, sequence.ErrIO):
		return NewIOError(msg, err.Error(), "Check that standard output is open and writable", err)
	default:
		return NewInternalError(msg, err.Error(), "This is a bug. Please report it", err)
	}
}

// Color definitions for error formatting.
var (
	colorError = color.New(color.FgRed, color.Bold)
	colorCause = color.New(color.FgYellow)
	colorFix   = color.New(color.FgGreen)
)

// Format returns a formatted error message for terminal display.
//
// Color output respects NO_COLOR and can be disabled with noColor. Empty
// Cause or Fix fields are omitted.
//
// Note: This method temporarily modifies the global color.NoColor state
// and restores it after formatting.
func (e *UserError) Format(noColor bool) string {
	originalNoColor := color.NoColor
	defer func() { color.NoColor = originalNoColor }()

	if noColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	var out strings.Builder
	out.WriteString(colorError.Sprint("Error: "))
	out.WriteString(e.Message)
	out.WriteString("\n")

	if e.Cause != "" {
		out.WriteString(colorCause.Sprint("Cause: "))
		out.WriteString(e.Cause)
		out.WriteString("\n")
	}

	if e.Fix != "" {
		out.WriteString(colorFix.Sprint("Fix:   "))
		out.WriteString(e.Fix)
		out.WriteString("\n")
	}

	return out.String()
}

// ErrorJSON represents error information in JSON format.
type ErrorJSON struct {
	Error    string `json:"error"`
	Cause    string `json:"cause,omitempty"`
	Fix      string `json:"fix,omitempty"`
	ExitCode int    `json:"exit_code"`
}

// ToJSON converts the UserError to a JSON-serializable structure.
func (e *UserError) ToJSON() ErrorJSON {
	return ErrorJSON{
		Error:    e.Message,
		Cause:    e.Cause,
		Fix:      e.Fix,
		ExitCode: e.ExitCode,
	}
}

// Report writes err to w, as JSON when jsonOutput is set and as colored text
// otherwise, and returns the exit code the process should use. Non-UserError
// values are reported as internal errors.
func Report(w io.Writer, err error, jsonOutput, noColor bool) int {
	if err == nil {
		return ExitSuccess
	}

	ue, ok := err.(*UserError)
	if !ok {
		fmt.Fprintf(w, "Error: %v\n", err)
		return ExitInternal
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		// The process is about to exit; the exit code still reports the failure.
		_ = enc.Encode(ue.ToJSON())
	} else {
		fmt.Fprint(w, ue.Format(noColor))
	}
	return ue.ExitCode
}

// FatalError reports err on stderr and exits with the matching code.
// It does nothing when err is nil.
func FatalError(err error, jsonOutput bool) {
	if err == nil {
		return
	}
	os.Exit(Report(os.Stderr, err, jsonOutput, false))
}
