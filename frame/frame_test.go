// SPDX-License-Identifier: MIT
package frame_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coda/frame"
)

// sample builds the canonical 2x4 composition table used across the module's
// tests: columns a,b,c,d with rows [65,12,18,5] and [63,16,15,6].
func sample(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.New(
		[]string{"a", "b", "c", "d"},
		[][]float64{
			{65, 12, 18, 5},
			{63, 16, 15, 6},
		},
	)
	require.NoError(t, err, "sample frame must construct")
	return f
}

// TestNew_HeaderValidation verifies the header error taxonomy: no columns,
// empty names and duplicate names each map to their own sentinel.
func TestNew_HeaderValidation(t *testing.T) {
	_, err := frame.New(nil, nil)
	assert.ErrorIs(t, err, frame.ErrNoColumns, "empty header must be rejected")

	_, err = frame.New([]string{"a", ""}, nil)
	assert.ErrorIs(t, err, frame.ErrEmptyName, "empty column name must be rejected")

	_, err = frame.New([]string{"a", "a"}, nil)
	assert.ErrorIs(t, err, frame.ErrDuplicateColumn, "duplicate column names must be rejected")
}

// TestNew_RaggedRows verifies that a row of the wrong width is rejected with
// ErrShapeMismatch instead of being padded or truncated.
func TestNew_RaggedRows(t *testing.T) {
	_, err := frame.New(
		[]string{"a", "b"},
		[][]float64{{1, 2}, {3}},
	)
	assert.ErrorIs(t, err, frame.ErrShapeMismatch)
}

// TestNew_ZeroRows verifies that a header-only frame is valid: zero rows,
// full column metadata.
func TestNew_ZeroRows(t *testing.T) {
	f, err := frame.New([]string{"a", "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, f.NumRows())
	assert.Equal(t, 2, f.NumCols())
}

// TestFromColumns_ShapeChecks verifies the column-major constructor rejects
// mismatched headers and unequal column lengths.
func TestFromColumns_ShapeChecks(t *testing.T) {
	_, err := frame.FromColumns([]string{"a", "b"}, [][]float64{{1, 2}})
	assert.ErrorIs(t, err, frame.ErrShapeMismatch, "header/column count mismatch")

	_, err = frame.FromColumns([]string{"a", "b"}, [][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, frame.ErrShapeMismatch, "unequal column lengths")
}

// TestFromColumns_CopiesInput verifies that mutating the caller's slices after
// construction does not leak into the frame.
func TestFromColumns_CopiesInput(t *testing.T) {
	col := []float64{1, 2}
	f, err := frame.FromColumns([]string{"a"}, [][]float64{col})
	require.NoError(t, err)

	col[0] = 99
	v, err := f.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "frame must hold a private copy")
}

// TestAccessors covers At, Column, ColumnByName, Row, Name and their bounds.
func TestAccessors(t *testing.T) {
	f := sample(t)

	v, err := f.At(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = f.At(2, 0)
	assert.ErrorIs(t, err, frame.ErrOutOfRange, "row index past the end")
	_, err = f.At(0, 4)
	assert.ErrorIs(t, err, frame.ErrOutOfRange, "column index past the end")
	_, err = f.At(-1, 0)
	assert.ErrorIs(t, err, frame.ErrOutOfRange, "negative row index")

	col, err := f.ColumnByName("d")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6}, col)

	_, err = f.ColumnByName("z")
	assert.ErrorIs(t, err, frame.ErrUnknownColumn)

	row, err := f.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{65, 12, 18, 5}, row)

	name, err := f.Name(2)
	require.NoError(t, err)
	assert.Equal(t, "c", name)
	_, err = f.Name(7)
	assert.ErrorIs(t, err, frame.ErrOutOfRange)
}

// TestResolveColumnIndex exercises the Python-style negative indexing contract:
// valid range is -NumCols..NumCols-1, everything outside reports ok=false.
func TestResolveColumnIndex(t *testing.T) {
	f := sample(t)

	cases := []struct {
		idx  int
		pos  int
		ok   bool
		note string
	}{
		{0, 0, true, "first column"},
		{3, 3, true, "last column, positive form"},
		{-1, 3, true, "last column, negative form"},
		{-4, 0, true, "first column, negative form"},
		{4, 0, false, "one past the end"},
		{-5, 0, false, "one before the start"},
	}
	for _, tc := range cases {
		pos, ok := f.ResolveColumnIndex(tc.idx)
		assert.Equal(t, tc.ok, ok, tc.note)
		if tc.ok {
			assert.Equal(t, tc.pos, pos, tc.note)
		}
	}
}

// TestSelectAndDrop verifies projection and removal preserve order and copy data.
func TestSelectAndDrop(t *testing.T) {
	f := sample(t)

	sel, err := f.Select("c", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, sel.Names(), "selection order is caller's order")

	_, err = f.Select("nope")
	assert.ErrorIs(t, err, frame.ErrUnknownColumn)

	drop, err := f.Drop("d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, drop.Names(), "survivors keep relative order")

	_, err = f.Drop("a", "b", "c", "d")
	assert.ErrorIs(t, err, frame.ErrNoColumns, "dropping every column is rejected")
}

// TestNaNAndInfDetection verifies the null / non-finite scanners.
func TestNaNAndInfDetection(t *testing.T) {
	f, err := frame.New(
		[]string{"a", "b"},
		[][]float64{{1, math.NaN()}, {3, 4}},
	)
	require.NoError(t, err)
	assert.True(t, f.HasNaN())
	assert.False(t, f.HasInf())

	g, err := frame.New(
		[]string{"a", "b"},
		[][]float64{{1, math.Inf(-1)}, {3, 4}},
	)
	require.NoError(t, err)
	assert.False(t, g.HasNaN())
	assert.True(t, g.HasInf())

	assert.False(t, sample(t).HasNaN())
}

// TestEquality covers Equal/EqualWithin including the NaN==NaN convention.
func TestEquality(t *testing.T) {
	f := sample(t)
	assert.True(t, f.Equal(f.Clone()), "clone must compare equal")
	assert.False(t, f.Equal(nil), "nil never compares equal")

	shifted, err := frame.New(
		[]string{"a", "b", "c", "d"},
		[][]float64{
			{65.0000001, 12, 18, 5},
			{63, 16, 15, 6},
		},
	)
	require.NoError(t, err)
	assert.False(t, f.Equal(shifted), "exact equality sees the perturbation")
	assert.True(t, f.EqualWithin(shifted, 1e-6), "tolerant equality absorbs it")

	withNaN := func() *frame.Frame {
		g, err := frame.New([]string{"a"}, [][]float64{{math.NaN()}})
		require.NoError(t, err)
		return g
	}
	assert.True(t, withNaN().Equal(withNaN()), "NaN cells match NaN cells")

	one, err := frame.New([]string{"a"}, [][]float64{{1}})
	require.NoError(t, err)
	assert.False(t, withNaN().Equal(one), "NaN never matches a number")
}
