// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package ui provides colored status output for the intmap CLI.
//
// Everything here writes to Out (stderr by default) so that stdout carries
// only the printed sequence. Colors respect --no-color, NO_COLOR, and are
// turned off when stderr is not a terminal.
//
// Color usage guidelines:
//   - Yellow: Warnings
//   - Green: Success
//   - Cyan: Info, counts
//   - Bold: Labels
package ui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Out is where status output goes.
var Out io.Writer = color.Error

var (
	// Yellow is used for warnings.
	Yellow = color.New(color.FgYellow)

	// Green is used for success messages.
	Green = color.New(color.FgGreen)

	// Cyan is used for informational messages and counts.
	Cyan = color.New(color.FgCyan)

	// Bold is used for labels.
	Bold = color.New(color.Bold)
)

// ColorEnabled reports whether colored output should be used on f.
func ColorEnabled(noColor bool, f *os.File) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// InitColors configures global color output. Call it once after flag parsing.
func InitColors(noColor bool) {
	color.NoColor = noColor
}

// Successf prints a formatted green success message with a checkmark prefix.
func Successf(format string, args ...any) {
	_, _ = Green.Fprintf(Out, "✓ "+format+"\n", args...)
}

// Warningf prints a formatted yellow warning with a warning symbol prefix.
func Warningf(format string, args ...any) {
	_, _ = Yellow.Fprintf(Out, "⚠ "+format+"\n", args...)
}

// Infof prints a formatted cyan informational message.
//
// Example output: "ℹ Mapped 5 elements with increment"
func Infof(format string, args ...any) {
	_, _ = Cyan.Fprintf(Out, "ℹ "+format+"\n", args...)
}

// Label returns a bold-formatted label string for inline use.
func Label(text string) string {
	return Bold.Sprint(text)
}

// CountText returns a cyan-formatted count value.
func CountText(count int) string {
	return Cyan.Sprint(count)
}
