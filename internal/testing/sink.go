// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package testing provides test helpers for intmap packages.
//
// CaptureSink stands in for standard output: it records what was written and
// how often it was flushed, and can be told to fail either operation.
//
//	sink := intmaptest.NewCaptureSink()
//	require.NoError(t, sequence.Print(sink, seq))
//	intmaptest.RequireFlushedOutput(t, sink, "2, 3, 4, 5, 6, \n")
package testing

import (
	"bytes"
	"testing"
)

// CaptureSink is an in-memory sink. Written bytes stay pending until Flush,
// which moves them to the flushed output.
type CaptureSink struct {
	pending bytes.Buffer
	flushed bytes.Buffer

	// Flushes counts successful Flush calls.
	Flushes int

	// WriteErr and FlushErr, when set, are returned by Write and Flush.
	WriteErr error
	FlushErr error
}

// NewCaptureSink returns an empty CaptureSink.
func NewCaptureSink() *CaptureSink {
	return &CaptureSink{}
}

// Write buffers p until the next Flush.
func (s *CaptureSink) Write(p []byte) (int, error) {
	if s.WriteErr != nil {
		return 0, s.WriteErr
	}
	return s.pending.Write(p)
}

// Flush publishes the pending bytes.
func (s *CaptureSink) Flush() error {
	if s.FlushErr != nil {
		return s.FlushErr
	}
	_, _ = s.pending.WriteTo(&s.flushed)
	s.Flushes++
	return nil
}

// Pending returns bytes written but not yet flushed.
func (s *CaptureSink) Pending() string {
	return s.pending.String()
}

// Output returns everything flushed so far.
func (s *CaptureSink) Output() string {
	return s.flushed.String()
}

// RequireFlushedOutput fails the test unless sink's flushed output equals want
// and nothing is left pending.
func RequireFlushedOutput(t *testing.T, sink *CaptureSink, want string) {
	t.Helper()

	if got := sink.Pending(); got != "" {
		t.Fatalf("unflushed output %q", got)
	}
	if got := sink.Output(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}
