// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package sequence provides a fixed-length integer sequence together with an
// in-place element-wise map and a debug printer.
//
// # Mapping
//
// Map applies a Transform to every element, in index order, without
// allocating:
//
//	seq := sequence.New(1, 2, 3, 4, 5)
//	if err := sequence.Map(sequence.Increment, seq); err != nil {
//	    return err
//	}
//
// A nil transform is rejected with ErrInvalidArgument before any element is
// touched. Mapping an empty sequence is a no-op.
//
// # Printing
//
// Print writes each element followed by ", " and a final newline to a Sink,
// then flushes it:
//
//	sink := sequence.NewSink(os.Stdout)
//	_ = sequence.Print(sink, seq) // "2, 3, 4, 5, 6, \n"
//
// Write and flush failures are reported as errors wrapping ErrIO.
//
// # Transforms
//
// The package ships a small catalog of named transforms (see Lookup) and
// Compose/Chain for building composite ones. Any type with an Apply(int) int
// method can be used through MapWith.
package sequence
