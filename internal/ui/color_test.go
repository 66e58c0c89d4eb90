// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package ui

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withPlainOutput disables colors and captures Out for the test's duration.
func withPlainOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	originalNoColor, originalOut := color.NoColor, Out
	t.Cleanup(func() {
		color.NoColor = originalNoColor
		Out = originalOut
	})

	var buf bytes.Buffer
	color.NoColor = true
	Out = &buf
	return &buf
}

func TestInitColors(t *testing.T) {
	original := color.NoColor
	defer func() { color.NoColor = original }()

	InitColors(true)
	assert.True(t, color.NoColor)
	InitColors(false)
	assert.False(t, color.NoColor)
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name  string
		print func()
		want  string
	}{
		{"success", func() { Successf("wrote %s", "metrics.prom") }, "✓ wrote metrics.prom\n"},
		{"warning", func() { Warningf("ignoring %d", 3) }, "⚠ ignoring 3\n"},
		{"info", func() { Infof("Mapped %d elements", 5) }, "ℹ Mapped 5 elements\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := withPlainOutput(t)
			tt.print()
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestInlineHelpers(t *testing.T) {
	withPlainOutput(t)
	assert.Equal(t, "Transform:", Label("Transform:"))
	assert.Equal(t, "42", CountText(42))
}

func TestColorEnabled(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, ColorEnabled(true, f), "--no-color must win")
	assert.False(t, ColorEnabled(false, f), "regular files are not terminals")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(false, os.Stderr))
}
