// SPDX-License-Identifier: MIT
package coda_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coda"
	"github.com/katalvlaran/coda/frame"
)

// onesFrame builds an n x 4 table of all ones.
func onesFrame(t *testing.T, n int) *frame.Frame {
	t.Helper()
	rows := make([][]float64, n)
	for r := range rows {
		rows[r] = []float64{1, 1, 1, 1}
	}
	f, err := frame.New([]string{"a", "b", "c", "d"}, rows)
	require.NoError(t, err)
	return f
}

// TestCLR_OnesYieldZeros verifies the core identity: every value equals its
// row's geometric mean, so the transform is exactly zero everywhere.
func TestCLR_OnesYieldZeros(t *testing.T) {
	out, err := coda.CLR(onesFrame(t, 4))
	require.NoError(t, err)

	zeros, err := frame.New([]string{"a", "b", "c", "d"}, [][]float64{
		{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	})
	require.NoError(t, err)
	assert.True(t, out.Equal(zeros), "CLR of all-ones is exactly the zero table")
}

// TestCLR_EqualValuedRows verifies that any row of identical positive values
// maps to (numerically) all zeros, not just the all-ones case.
func TestCLR_EqualValuedRows(t *testing.T) {
	f, err := frame.New([]string{"a", "b", "c"}, [][]float64{
		{7, 7, 7},
		{0.013, 0.013, 0.013},
	})
	require.NoError(t, err)

	out, err := coda.CLR(f)
	require.NoError(t, err)
	for r := 0; r < out.NumRows(); r++ {
		row, rowErr := out.Row(r)
		require.NoError(t, rowErr)
		for _, v := range row {
			assert.InDelta(t, 0, v, floatTol)
		}
	}
}

// TestCLR_RowSumsAreZero verifies the defining invariant of centered
// log-ratios: each output row sums to zero up to floating point.
func TestCLR_RowSumsAreZero(t *testing.T) {
	out, err := coda.CLR(sampleComposition(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d"}, out.Names(), "shape and header are preserved")
	for r := 0; r < out.NumRows(); r++ {
		row, rowErr := out.Row(r)
		require.NoError(t, rowErr)
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		assert.InDelta(t, 0, sum, floatTol, "row %d", r)
	}
}

// TestCLR_MatchesGeometricMeanDefinition cross-checks the log-mean kernel
// against the direct ln(x/g) formulation on the sample table.
func TestCLR_MatchesGeometricMeanDefinition(t *testing.T) {
	out, err := coda.CLR(sampleComposition(t))
	require.NoError(t, err)

	raw := [][]float64{{65, 12, 18, 5}, {63, 16, 15, 6}}
	for r, row := range raw {
		g := math.Pow(row[0]*row[1]*row[2]*row[3], 0.25)
		for c, v := range row {
			got, atErr := out.At(r, c)
			require.NoError(t, atErr)
			assert.InDelta(t, math.Log(v/g), got, floatTol, "row %d col %d", r, c)
		}
	}
}

// TestCLR_ClosureInvariance verifies that rescaling rows to a constant sum
// leaves the transform output unchanged.
func TestCLR_ClosureInvariance(t *testing.T) {
	f := sampleComposition(t)

	closed, err := coda.Closure(f, 1)
	require.NoError(t, err)

	a, err := coda.CLR(f)
	require.NoError(t, err)
	b, err := coda.CLR(closed)
	require.NoError(t, err)
	assert.True(t, a.EqualWithin(b, floatTol), "CLR must be closure-invariant")
}

// TestCLR_ContainsZeros verifies that a single zero cell fails with
// ErrNumericValueSign before anything is computed.
func TestCLR_ContainsZeros(t *testing.T) {
	f, err := frame.New(
		[]string{"a", "b", "c", "d"},
		[][]float64{
			{0, 12, 18, 5},
			{63, 16, 15, 6},
		},
	)
	require.NoError(t, err)

	_, err = coda.CLR(f)
	assert.ErrorIs(t, err, coda.ErrNumericValueSign)
}

// TestCLR_NegativeValues verifies negatives are rejected the same way.
func TestCLR_NegativeValues(t *testing.T) {
	f, err := frame.New([]string{"a", "b"}, [][]float64{{1, -1}})
	require.NoError(t, err)

	_, err = coda.CLR(f)
	assert.ErrorIs(t, err, coda.ErrNumericValueSign)
}

// TestCLR_NullData verifies NaN cells (and nil frames) fail with
// ErrInvalidComposition ahead of the sign check.
func TestCLR_NullData(t *testing.T) {
	f, err := frame.New([]string{"a", "b"}, [][]float64{{1, math.NaN()}})
	require.NoError(t, err)

	_, err = coda.CLR(f)
	assert.ErrorIs(t, err, coda.ErrInvalidComposition)

	_, err = coda.CLR(nil)
	assert.ErrorIs(t, err, coda.ErrInvalidComposition)
}

// TestCLR_InputUntouched verifies the transform never mutates its input.
func TestCLR_InputUntouched(t *testing.T) {
	f := sampleComposition(t)
	before := f.Clone()

	_, err := coda.CLR(f)
	require.NoError(t, err)
	assert.True(t, f.Equal(before))
}
