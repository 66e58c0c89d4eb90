// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package sequence

import (
	"fmt"
	"sort"
	"strings"
)

// Transform maps one integer to another. Transforms are expected to be pure.
type Transform func(int) int

// Apply calls t, so that a Transform satisfies Transformer.
func (t Transform) Apply(x int) int {
	return t(x)
}

// Transformer is anything that can transform a single integer.
type Transformer interface {
	Apply(x int) int
}

// FromTransformer adapts a Transformer to a Transform. It returns nil for a
// nil Transformer.
func FromTransformer(tr Transformer) Transform {
	if tr == nil {
		return nil
	}
	if t, ok := tr.(Transform); ok {
		return t
	}
	return tr.Apply
}

// Built-in transforms.
var (
	Identity  Transform = func(x int) int { return x }
	Increment Transform = func(x int) int { return x + 1 }
	Decrement Transform = func(x int) int { return x - 1 }
	Negate    Transform = func(x int) int { return -x }
	Double    Transform = func(x int) int { return x * 2 }
	Square    Transform = func(x int) int { return x * x }
)

var catalog = map[string]Transform{
	"identity":  Identity,
	"increment": Increment,
	"decrement": Decrement,
	"negate":    Negate,
	"double":    Double,
	"square":    Square,
}

// Names returns the names accepted by Lookup, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the built-in transform registered under name.
func Lookup(name string) (Transform, bool) {
	t, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Compose returns x -> f(g(x)).
func Compose(f, g Transform) Transform {
	return func(x int) int { return f(g(x)) }
}

// Chain returns a transform applying ts left to right. An empty chain is
// Identity.
func Chain(ts ...Transform) Transform {
	out := Identity
	for _, t := range ts {
		out = Compose(t, out)
	}
	return out
}

// Parse builds a transform from a comma-separated list of built-in names,
// applied left to right ("increment,negate" is x -> -(x+1)).
func Parse(list string) (Transform, error) {
	parts := strings.Split(list, ",")
	ts := make([]Transform, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			return nil, fmt.Errorf("%w: empty transform name in %q", ErrInvalidArgument, list)
		}
		t, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown transform %q (known: %s)",
				ErrInvalidArgument, name, strings.Join(Names(), ", "))
		}
		ts = append(ts, t)
	}
	return Chain(ts...), nil
}
