// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package sequence

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Separator follows every printed element, including the last one.
const Separator = ", "

// Sink is an output destination that buffers writes until flushed.
// *bufio.Writer satisfies it.
type Sink interface {
	io.Writer
	Flush() error
}

// NewSink returns w itself if it is already a Sink, otherwise w wrapped in a
// bufio.Writer.
func NewSink(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	return bufio.NewWriter(w)
}

// Format returns the line Print would write for seq.
func Format(seq *Sequence) string {
	return string(appendLine(nil, seq))
}

func appendLine(buf []byte, seq *Sequence) []byte {
	for i := 0; i < seq.Len(); i++ {
		buf = strconv.AppendInt(buf, int64(seq.elements[i]), 10)
		buf = append(buf, Separator...)
	}
	return append(buf, '\n')
}

// Print writes every element of seq in decimal, each followed by Separator,
// then a newline, and flushes sink. An empty sequence prints just "\n".
//
// Write and flush failures are returned wrapped in ErrIO.
func Print(sink Sink, seq *Sequence) error {
	if sink == nil {
		return fmt.Errorf("print: %w: sink is nil", ErrInvalidArgument)
	}
	if _, err := sink.Write(appendLine(make([]byte, 0, 4*seq.Len()+1), seq)); err != nil {
		return fmt.Errorf("print: %w: %v", ErrIO, err)
	}
	if err := sink.Flush(); err != nil {
		return fmt.Errorf("print: %w: flush: %v", ErrIO, err)
	}
	return nil
}

// Printer prints sequences to a fixed sink.
type Printer struct {
	sink Sink
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{sink: NewSink(w)}
}

// Print writes seq to the printer's sink. See the package-level Print.
func (p *Printer) Print(seq *Sequence) error {
	return Print(p.sink, seq)
}
