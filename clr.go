// SPDX-License-Identifier: MIT

package coda

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coda/frame"
)

// CLR — Centered Log-Ratio transform.
//
// Description:
//
//	CLR maps a composition into real coordinates by dividing every part by
//	the geometric mean of its own row and taking natural logs:
//
//	  clr_j(x) = ln(x_j / g(x)),   g(x) = (x_1 * ... * x_n)^(1/n).
//
//	Equivalently clr_j(x) = ln(x_j) - mean(ln(x)), which is how the kernel
//	computes it: exponentiating the log-mean is avoided entirely, so large
//	products can never overflow. Each output row sums to zero (up to
//	floating point), and a row of all-equal values maps to all zeros.
//
// Algorithm Outline:
//  1. Validate the composition: nil frame or any NaN/±Inf cell fails fast.
//  2. Require every cell strictly positive — the geometric mean and the
//     log are undefined otherwise.
//  3. Per row, compute the mean of logs; subtract it from each log cell.
//  4. Assemble the output frame with the input's column names and order.
//
// Inputs:
//   - f: composition frame; every column is treated as a part.
//
// Returns:
//   - A new frame of identical shape and header; values are centered
//     log-ratios.
//
// Errors:
//   - ErrInvalidComposition — nil frame, or NaN/±Inf present (stage 1).
//   - ErrNumericValueSign   — zero or negative cell (stage 2).
//
// Determinism:
//   - Fixed row-then-column traversal; stable output.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols) for the output.
func CLR(f *frame.Frame) (*frame.Frame, error) {
	// Stage 1: composition validity.
	if err := ValidateComposition(f); err != nil {
		return nil, fmt.Errorf("%s: %w", opCLR, err)
	}

	// Stage 2: strict positivity — log and geometric mean domain.
	if err := ValidateStrictlyPositive(f); err != nil {
		return nil, fmt.Errorf("%s: %w", opCLR, err)
	}

	nRows, nCols := f.NumRows(), f.NumCols()
	cols := make([][]float64, nCols)
	for c := 0; c < nCols; c++ {
		cols[c] = make([]float64, nRows)
	}

	// Stage 3: ln(x) - mean(ln(row)) per cell, row by row.
	logRow := make([]float64, nCols) // scratch, reused across rows
	for r := 0; r < nRows; r++ {
		sum := 0.0
		for c := 0; c < nCols; c++ {
			v, _ := f.At(r, c) // bounds are loop-derived
			logRow[c] = math.Log(v)
			sum += logRow[c]
		}
		mean := sum / float64(nCols)
		for c := 0; c < nCols; c++ {
			cols[c][r] = logRow[c] - mean
		}
	}

	res, err := frame.FromColumns(f.Names(), cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCLR, err) // unreachable: shapes are constructed
	}
	return res, nil
}
