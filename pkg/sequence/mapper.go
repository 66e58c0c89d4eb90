// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package sequence

import "fmt"

// Map replaces every element of seq with transform(element), in increasing
// index order. The sequence is mutated in place and keeps its length.
//
// A nil transform or sequence returns ErrInvalidArgument and leaves the
// sequence unchanged.
func Map(transform Transform, seq *Sequence) error {
	if transform == nil {
		return fmt.Errorf("map: %w: transform is nil", ErrInvalidArgument)
	}
	if seq == nil {
		return fmt.Errorf("map: %w: sequence is nil", ErrInvalidArgument)
	}
	for i, v := range seq.elements {
		seq.elements[i] = transform(v)
	}
	return nil
}

// MapWith is Map for any Transformer.
func MapWith(tr Transformer, seq *Sequence) error {
	return Map(FromTransformer(tr), seq)
}
