// SPDX-License-Identifier: MIT
// Package coda: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the coda
// package. All transforms MUST return these sentinels and tests MUST check
// them via errors.Is. No transform panics on user-triggered error conditions.

package coda

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "coda: ..." for consistency and to allow
// easy grepping across logs. Context is added at call sites via
// fmt.Errorf("op: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// composition (null/non-finite) -> structural (column count) -> column index
// -> numeric sign. Every precondition is checked in full before any
// arithmetic runs; a transform never returns a partially computed table.

var (
	// ErrInvalidComposition is returned when the input fails the general
	// "is this a valid composition" predicate: the frame is nil, or any cell
	// is NaN (null) or ±Inf. Nothing is computed on such data.
	ErrInvalidComposition = errors.New("coda: invalid composition (null or non-finite values)")

	// ErrInvalidColumnIndex is returned when a supplied denominator index is
	// outside the valid range -n_columns .. n_columns-1. Indices are never
	// clamped; an out-of-range index is a caller error.
	ErrInvalidColumnIndex = errors.New("coda: column index out of bounds")

	// ErrNumericValueSign is returned when a value required to be strictly
	// positive (log and geometric-mean domains) is zero or negative. The
	// transforms refuse to let -Inf or NaN propagate silently.
	ErrNumericValueSign = errors.New("coda: value must be strictly positive")

	// ErrInvalidParameterValue is returned when a structural precondition is
	// violated, e.g. too few columns for a meaningful log-ratio transform or
	// a non-positive closure total.
	ErrInvalidParameterValue = errors.New("coda: invalid parameter value")

	// ErrNotImplemented marks the inverse transforms: their exact contract
	// (recover the original composition, or only up to a closure constant)
	// is still an open domain decision, so they fail loudly instead of
	// guessing.
	ErrNotImplemented = errors.New("coda: operation not implemented")
)
