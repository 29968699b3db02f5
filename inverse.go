// SPDX-License-Identifier: MIT

package coda

import (
	"fmt"

	"github.com/katalvlaran/coda/frame"
)

// InverseALR — placeholder for the inverse additive log-ratio transform.
//
// The back-transform's exact contract is still an open domain decision:
// recovering the original composition requires knowing the closure constant
// (row totals) that the forward ALR discards, so the result is only defined
// up to a per-row scale. Until that contract is fixed, this entry point
// fails unconditionally rather than guessing.
//
// Errors: always ErrNotImplemented.
func InverseALR(_ *frame.Frame) (*frame.Frame, error) {
	return nil, fmt.Errorf("%s: %w", opInverseALR, ErrNotImplemented)
}

// InverseCLR — placeholder for the inverse centered log-ratio transform.
//
// Same situation as InverseALR: the forward CLR is closure-invariant, so the
// inverse can only reproduce the composition up to a row-wise scale factor.
// Fails unconditionally until the intended contract is specified.
//
// Errors: always ErrNotImplemented.
func InverseCLR(_ *frame.Frame) (*frame.Frame, error) {
	return nil, fmt.Errorf("%s: %w", opInverseCLR, ErrNotImplemented)
}
