// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package contract holds input limits shared by the intmap packages.
//
// The number of values a run may map is capped so a typo in a config file
// cannot allocate an unbounded sequence. The cap defaults to
// DefaultMaxValues and can be changed through INTMAP_MAX_VALUES:
//
//	export INTMAP_MAX_VALUES=1000
//
// Unset, non-numeric or non-positive values fall back to the default.
package contract

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// DefaultMaxValues is the baseline cap on sequence length.
	DefaultMaxValues = 1 << 20

	// EnvMaxValues overrides DefaultMaxValues.
	EnvMaxValues = "INTMAP_MAX_VALUES"
)

// MaxValues returns the effective cap on sequence length.
func MaxValues() int {
	if v := os.Getenv(EnvMaxValues); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxValues
}

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	OK      bool
	Message string
}

// ValidateLength checks a sequence length against MaxValues.
func ValidateLength(n int) *ValidationResult {
	if limit := MaxValues(); n > limit {
		return &ValidationResult{
			OK:      false,
			Message: fmt.Sprintf("%d values exceed the limit of %d (%s)", n, limit, EnvMaxValues),
		}
	}
	return &ValidationResult{OK: true}
}
