// SPDX-License-Identifier: MIT

// Package coda: option types and operation constants.
// Convention: a plain options struct per transform plus a DefaultXxxOptions
// constructor; a nil options pointer at the call site means "use the defaults".

package coda

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opALR        = "ALR"
	opCLR        = "CLR"
	opInverseALR = "InverseALR"
	opInverseCLR = "InverseCLR"
	opClosure    = "Closure"
)

// DefaultDenominatorIndex selects the last column as the ALR reference part,
// matching the compositional-analysis convention of dividing by the final
// (often "rest" or "filler") component.
const DefaultDenominatorIndex = -1

// minALRColumns is the smallest table width for which ALR is defined: with
// fewer than two parts there is no ratio to take.
const minALRColumns = 2

// ALROptions configures the additive log-ratio transform.
//
// Fields:
//   - DenominatorIndex    — integer position of the reference (denominator)
//     column. Negative values count from the end (-1 = last column, the
//     default). The valid range is -NumCols .. NumCols-1; anything outside
//     it yields ErrInvalidColumnIndex.
//   - KeepRedundantColumn — whether the denominator column appears in the
//     output. When true it is retained at its original relative position
//     with all-zero values (log of a value over itself); when false
//     (default) it is omitted.
//
// Example:
//
//	opts := coda.DefaultALROptions()
//	opts.DenominatorIndex = 0 // divide by the first part instead
//	out, err := coda.ALR(f, &opts)
type ALROptions struct {
	DenominatorIndex    int
	KeepRedundantColumn bool
}

// DefaultALROptions returns the canonical ALR configuration: last column as
// denominator, redundant column dropped from the output.
func DefaultALROptions() ALROptions {
	return ALROptions{
		DenominatorIndex:    DefaultDenominatorIndex,
		KeepRedundantColumn: false,
	}
}
