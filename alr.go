// SPDX-License-Identifier: MIT

package coda

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coda/frame"
)

// ALR — Additive Log-Ratio transform.
//
// Description:
//
//	ALR maps a composition (parts of a whole, strictly positive) into
//	unconstrained real coordinates by dividing every part by one chosen
//	reference part (the "denominator") and taking natural logs:
//
//	  alr_j(x) = ln(x_j / x_D)   for every part j != D.
//
//	The reference part carries no information after the transform
//	(ln(x_D/x_D) = 0), so it is dropped from the output by default; set
//	KeepRedundantColumn to retain it as an all-zero column at its original
//	relative position.
//
// Algorithm Outline:
//  1. Validate the composition: nil frame or any NaN/±Inf cell fails fast.
//  2. Require at least two columns — with a single part there is no ratio.
//  3. Resolve the denominator position from DenominatorIndex (negative
//     values count from the end); out-of-range is an error, never clamped.
//  4. Require every cell strictly positive: zeros and negatives would
//     silently turn into -Inf/NaN under log, so they are rejected up front.
//  5. For every numerator column, divide row-aligned by the denominator
//     column and apply math.Log; assemble the output frame.
//
// Inputs:
//   - f: composition frame (rows = observations, columns = parts).
//   - opts: *ALROptions; nil means DefaultALROptions() (denominator = last
//     column, redundant column dropped).
//
// Returns:
//   - A new frame with the same row count; columns are the numerator parts
//     in input order; values are natural-log ratios (may be negative).
//
// Errors:
//   - ErrInvalidComposition    — nil frame, or NaN/±Inf present (stage 1).
//   - ErrInvalidParameterValue — fewer than two columns (stage 2).
//   - ErrInvalidColumnIndex    — denominator index out of bounds (stage 3).
//   - ErrNumericValueSign      — zero or negative cell (stage 4).
//
// Determinism:
//   - Fixed column-major traversal; output column order equals input order.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols) for the output.
func ALR(f *frame.Frame, opts *ALROptions) (*frame.Frame, error) {
	// Stage 1: composition validity (null / non-finite scan over the full table).
	if err := ValidateComposition(f); err != nil {
		return nil, fmt.Errorf("%s: %w", opALR, err)
	}

	// Apply options or defaults.
	o := DefaultALROptions()
	if opts != nil {
		o = *opts
	}

	// Stage 2: structural precondition — a ratio needs at least two parts.
	if f.NumCols() < minALRColumns {
		return nil, fmt.Errorf("%s: need at least %d columns: %w", opALR, minALRColumns, ErrInvalidParameterValue)
	}

	// Stage 3: resolve the reference column; -1 (default) is the last column.
	denomPos, ok := f.ResolveColumnIndex(o.DenominatorIndex)
	if !ok {
		return nil, fmt.Errorf("%s: denominator index %d: %w", opALR, o.DenominatorIndex, ErrInvalidColumnIndex)
	}

	// Stage 4: log domain guard across every involved column. The numerator
	// set spans the whole table, so the scan covers it all; zeros must fail
	// here instead of surfacing as -Inf downstream.
	if err := ValidateStrictlyPositive(f); err != nil {
		return nil, fmt.Errorf("%s: %w", opALR, err)
	}

	denom, err := f.Column(denomPos)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opALR, err) // unreachable after stage 3
	}

	// Stage 5: numerator set = all input columns, minus the reference unless
	// retention is requested. Input order is preserved either way, so a
	// retained reference keeps its original relative position.
	nRows := f.NumRows()
	names := make([]string, 0, f.NumCols())
	cols := make([][]float64, 0, f.NumCols())
	for c, name := range f.Names() {
		if c == denomPos && !o.KeepRedundantColumn {
			continue
		}
		src, _ := f.Column(c) // bounds are loop-derived
		out := make([]float64, nRows)
		for r := 0; r < nRows; r++ {
			out[r] = math.Log(src[r] / denom[r])
		}
		names = append(names, name)
		cols = append(cols, out)
	}

	res, err := frame.FromColumns(names, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opALR, err) // unreachable: shapes are constructed
	}
	return res, nil
}
