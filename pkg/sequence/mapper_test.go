// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name      string
		input     []int
		transform Transform
		want      []int
	}{
		{"increment", []int{1, 2, 3, 4, 5}, Increment, []int{2, 3, 4, 5, 6}},
		{"negate", []int{-1, 0, 5}, Negate, []int{1, 0, -5}},
		{"square", []int{-3, 0, 4}, Square, []int{9, 0, 16}},
		{"empty", nil, Increment, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := New(tt.input...)
			require.NoError(t, Map(tt.transform, seq))
			assert.Equal(t, tt.want, seq.Values())
		})
	}
}

func TestMap_NilTransform(t *testing.T) {
	seq := New(1, 2, 3)

	err := Map(nil, seq)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, []int{1, 2, 3}, seq.Values(), "sequence must not be touched")
}

func TestMap_NilSequence(t *testing.T) {
	require.ErrorIs(t, Map(Increment, nil), ErrInvalidArgument)
}

func TestMap_Identity(t *testing.T) {
	inputs := [][]int{{}, {0}, {7, -7, 42}, {1, 1, 1, 1}}
	for _, in := range inputs {
		seq := New(in...)
		before := seq.Clone()

		require.NoError(t, Map(Identity, seq))
		assert.True(t, before.Equal(seq), "identity changed %v", in)
		assert.Equal(t, before.Len(), seq.Len())
	}
}

func TestMap_Composition(t *testing.T) {
	f, g := Double, Increment
	in := []int{-2, -1, 0, 1, 2, 100}

	stepwise := New(in...)
	require.NoError(t, Map(g, stepwise))
	require.NoError(t, Map(f, stepwise))

	composed := New(in...)
	require.NoError(t, Map(Compose(f, g), composed))

	assert.Equal(t, stepwise.Values(), composed.Values())
}

func TestMap_PreservesLength(t *testing.T) {
	for n := 0; n < 16; n++ {
		seq := Make(n)
		require.NoError(t, Map(Increment, seq))
		assert.Equal(t, n, seq.Len())
	}
}

func TestMap_IndexIndependent(t *testing.T) {
	// Each element's result must depend only on its own value.
	seq := New(3, 1, 3, 2)
	require.NoError(t, Map(Square, seq))
	assert.Equal(t, seq.At(0), seq.At(2))
	assert.Equal(t, 1, seq.At(1))
	assert.Equal(t, 4, seq.At(3))
}

func TestMap_IndexOrder(t *testing.T) {
	var seen []int
	record := func(x int) int {
		seen = append(seen, x)
		return x
	}

	require.NoError(t, Map(record, New(5, 4, 3, 2, 1)))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, seen)
}

type addN int

func (a addN) Apply(x int) int { return x + int(a) }

func TestMapWith(t *testing.T) {
	seq := New(1, 2, 3)
	require.NoError(t, MapWith(addN(10), seq))
	assert.Equal(t, []int{11, 12, 13}, seq.Values())

	require.NoError(t, MapWith(Negate, seq))
	assert.Equal(t, []int{-11, -12, -13}, seq.Values())

	require.ErrorIs(t, MapWith(nil, seq), ErrInvalidArgument)
	require.ErrorIs(t, MapWith(Transform(nil), seq), ErrInvalidArgument)
}

func TestNew_CopiesInput(t *testing.T) {
	in := []int{1, 2, 3}
	seq := New(in...)
	require.NoError(t, Map(Increment, seq))
	assert.Equal(t, []int{1, 2, 3}, in)

	out := seq.Values()
	out[0] = 99
	assert.Equal(t, 2, seq.At(0))
}

func TestSequence_OutOfRangePanics(t *testing.T) {
	seq := New(1, 2)
	assert.Panics(t, func() { seq.At(2) })
	assert.Panics(t, func() { seq.Set(-1, 0) })
}
