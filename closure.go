// SPDX-License-Identifier: MIT

package coda

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coda/frame"
)

// Closure rescales every row of a composition so that it sums to total.
//
// Description:
//
//	Log-ratio transforms are closure-invariant: only the ratios between
//	parts carry information, not their absolute scale. Closure makes that
//	scale explicit by projecting each row onto the simplex of the given
//	total (1 for proportions, 100 for percentages, 1e6 for ppm):
//
//	  closure_j(x) = total * x_j / (x_1 + ... + x_n).
//
// Inputs:
//   - f: composition frame; every cell must be strictly positive.
//   - total: target row sum; must be finite and > 0.
//
// Returns:
//   - A new frame of identical shape and header whose rows each sum to
//     total (up to floating point).
//
// Errors:
//   - ErrInvalidComposition    — nil frame, or NaN/±Inf present.
//   - ErrInvalidParameterValue — total is NaN, ±Inf or <= 0.
//   - ErrNumericValueSign      — zero or negative cell.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols) for the output.
func Closure(f *frame.Frame, total float64) (*frame.Frame, error) {
	if err := ValidateComposition(f); err != nil {
		return nil, fmt.Errorf("%s: %w", opClosure, err)
	}
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return nil, fmt.Errorf("%s: total %v: %w", opClosure, total, ErrInvalidParameterValue)
	}
	if err := ValidateStrictlyPositive(f); err != nil {
		return nil, fmt.Errorf("%s: %w", opClosure, err)
	}

	nRows, nCols := f.NumRows(), f.NumCols()
	cols := make([][]float64, nCols)
	for c := 0; c < nCols; c++ {
		cols[c] = make([]float64, nRows)
	}

	for r := 0; r < nRows; r++ {
		sum := 0.0
		for c := 0; c < nCols; c++ {
			v, _ := f.At(r, c) // bounds are loop-derived
			sum += v
		}
		scale := total / sum // sum > 0 after the positivity scan
		for c := 0; c < nCols; c++ {
			v, _ := f.At(r, c)
			cols[c][r] = v * scale
		}
	}

	res, err := frame.FromColumns(f.Names(), cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opClosure, err) // unreachable: shapes are constructed
	}
	return res, nil
}
