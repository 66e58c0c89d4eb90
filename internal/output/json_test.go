// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/intmap/pkg/sequence"
)

// TestJSONTo verifies pretty-printed output with 2-space indentation.
func TestJSONTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONTo(&buf, map[string]any{"transform": "negate", "length": 3}))

	out := buf.String()
	assert.Contains(t, out, `  "transform": "negate"`)
	assert.Contains(t, out, `  "length": 3`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

// TestJSONTo_Unencodable verifies that encoding errors are reported.
func TestJSONTo_Unencodable(t *testing.T) {
	var buf bytes.Buffer
	err := JSONTo(&buf, map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON encoding failed")
}

func TestSequenceTo(t *testing.T) {
	var buf bytes.Buffer
	sink := bufio.NewWriter(&buf)

	require.NoError(t, SequenceTo(sink, sequence.New(1, 0, -5), "negate"))

	var got SequenceJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, SequenceJSON{Length: 3, Elements: []int{1, 0, -5}, Transform: "negate"}, got)
}

func TestSequenceTo_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SequenceTo(bufio.NewWriter(&buf), sequence.New(), "identity"))
	assert.Contains(t, buf.String(), `"elements": []`)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestSequenceTo_IOError(t *testing.T) {
	err := SequenceTo(bufio.NewWriterSize(brokenWriter{}, 16), sequence.New(1, 2, 3), "increment")
	require.ErrorIs(t, err, sequence.ErrIO)
}
