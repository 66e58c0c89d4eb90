// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package output provides machine-readable output for the intmap CLI.
//
// It complements the sequence printer (the human-readable debug line) and the
// errors package (error rendering). With --json the CLI emits:
//
//	{
//	  "length": 5,
//	  "elements": [2, 3, 4, 5, 6],
//	  "transform": "increment"
//	}
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kraklabs/intmap/pkg/sequence"
)

// SequenceJSON is the --json form of a mapped sequence.
type SequenceJSON struct {
	Length    int    `json:"length"`
	Elements  []int  `json:"elements"`
	Transform string `json:"transform"`
}

// NewSequenceJSON captures seq and the transform list that produced it.
func NewSequenceJSON(seq *sequence.Sequence, transform string) SequenceJSON {
	return SequenceJSON{
		Length:    seq.Len(),
		Elements:  seq.Values(),
		Transform: transform,
	}
}

// JSONTo writes data as pretty-printed JSON (2-space indent) to w.
//
// Returns an error if encoding or writing fails.
func JSONTo(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

// SequenceTo writes seq as SequenceJSON to sink and flushes it. Failures wrap
// sequence.ErrIO so they classify like printer failures.
func SequenceTo(sink sequence.Sink, seq *sequence.Sequence, transform string) error {
	if err := JSONTo(sink, NewSequenceJSON(seq, transform)); err != nil {
		return fmt.Errorf("%w: %v", sequence.ErrIO, err)
	}
	if err := sink.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %v", sequence.ErrIO, err)
	}
	return nil
}
