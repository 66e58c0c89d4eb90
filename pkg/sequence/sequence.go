// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package sequence

import "errors"

// Error kinds returned by this package. Match them with errors.Is.
var (
	// ErrInvalidArgument reports a missing transform or sequence.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO reports a failed write or flush on a Sink.
	ErrIO = errors.New("i/o error")
)

// Sequence is a mutable integer sequence whose length is fixed at creation.
//
// The zero value is an empty sequence.
type Sequence struct {
	elements []int
}

// New returns a sequence holding a copy of values.
func New(values ...int) *Sequence {
	elements := make([]int, len(values))
	copy(elements, values)
	return &Sequence{elements: elements}
}

// Make returns a zero-filled sequence of length n. It panics if n is negative,
// like make does.
func Make(n int) *Sequence {
	return &Sequence{elements: make([]int, n)}
}

// Len returns the number of elements.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.elements)
}

// At returns the element at index i. It panics if i is out of range.
func (s *Sequence) At(i int) int {
	return s.elements[i]
}

// Set replaces the element at index i. It panics if i is out of range.
func (s *Sequence) Set(i, v int) {
	s.elements[i] = v
}

// Values returns a copy of the elements.
func (s *Sequence) Values() []int {
	out := make([]int, s.Len())
	if s != nil {
		copy(out, s.elements)
	}
	return out
}

// Clone returns an independent copy of s.
func (s *Sequence) Clone() *Sequence {
	return New(s.Values()...)
}

// Equal reports whether s and other hold the same elements in the same order.
func (s *Sequence) Equal(other *Sequence) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if s.elements[i] != other.elements[i] {
			return false
		}
	}
	return true
}
