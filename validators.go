// SPDX-License-Identifier: MIT
// Package: coda
//
// Purpose:
//   - Provide a single, canonical source of truth for the compositional
//     precondition checks shared by every transform entry point.
//   - Keep the transform kernels minimal by delegating null/sign/shape
//     guards here; kernels only run after their preconditions hold.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Each scan is O(rows*cols) over the full table: validation always runs
//     to completion before any arithmetic, so a violation anywhere in the
//     table is detected up front, never mid-transform.

package coda

import (
	"fmt"

	"github.com/katalvlaran/coda/frame"
)

// validatorErrorf wraps an underlying sentinel with the given operation tag.
// Used internally to maintain consistent labeling of precondition violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateComposition – the general "is this a valid composition" predicate.
//
// A valid composition table is non-nil and contains no null (NaN) and no
// non-finite (±Inf) cells. This is the precondition every log-ratio transform
// checks first, before any column selection or arithmetic.
//
// Inputs: composition frame.
// Returns ErrInvalidComposition on a nil frame or any NaN/Inf cell.
// Complexity: O(rows*cols).
func ValidateComposition(f *frame.Frame) error {
	if f == nil {
		return validatorErrorf("ValidateComposition", ErrInvalidComposition)
	}
	if f.HasNaN() || f.HasInf() {
		return validatorErrorf("ValidateComposition", ErrInvalidComposition)
	}
	return nil
}

// ValidateStrictlyPositive – domain guard for log and geometric-mean kernels.
//
// Implementation: assumes ValidateComposition has already passed (no NaN/Inf;
// caller must ensure). Scans every cell and rejects the first zero or
// negative value.
//
// Inputs: composition frame.
// Returns ErrNumericValueSign when any cell is <= 0.
// Complexity: O(rows*cols).
func ValidateStrictlyPositive(f *frame.Frame) error {
	nRows, nCols := f.NumRows(), f.NumCols()
	for c := 0; c < nCols; c++ {
		for r := 0; r < nRows; r++ {
			v, _ := f.At(r, c) // bounds are loop-derived; error path unreachable
			if v <= 0 {
				return validatorErrorf("ValidateStrictlyPositive", ErrNumericValueSign)
			}
		}
	}
	return nil
}
