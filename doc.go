// SPDX-License-Identifier: MIT

// Package coda implements log-ratio transformations for compositional data:
// tables whose rows are parts of a whole (proportions, percentages, ppm),
// where only ratios between parts are meaningful and ordinary statistics are
// invalidated by the constant-sum constraint.
//
// 🚀 What is compositional data analysis?
//
//	When a row must sum to a constant, its parts cannot vary freely, so
//	correlations and distances computed on the raw values are spurious.
//	Log-ratio transforms (Aitchison) map the constrained simplex into
//	ordinary real coordinates where standard methods apply:
//	  • ALR — divide every part by one chosen reference part, take logs
//	  • CLR — divide every part by its row's geometric mean, take logs
//
// ✨ Key guarantees:
//   - Pure functions: inputs are never mutated, every call returns a fresh
//     frame; concurrent calls on independent tables need no coordination.
//   - Eager validation: nulls (NaN), non-finite cells, bad column indices,
//     non-positive values and degenerate shapes are rejected with typed
//     sentinel errors before any arithmetic runs — no -Inf ever leaks out.
//   - Closure invariance: scaling a row by any positive constant leaves
//     the transform output unchanged; Closure makes the scale explicit.
//   - Inverse transforms are deliberate placeholders: they return
//     ErrNotImplemented until their closure/scale contract is decided.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/coda"
//	  "github.com/katalvlaran/coda/frame"
//	)
//
//	f, _ := frame.New(
//	  []string{"a", "b", "c", "d"},
//	  [][]float64{{65, 12, 18, 5}, {63, 16, 15, 6}},
//	)
//
//	opts := coda.DefaultALROptions() // denominator = last column
//	alr, err := coda.ALR(f, &opts)   // columns a,b,c = ln(part/d)
//	clr, err2 := coda.CLR(f)         // same shape, row sums ≈ 0
//
// Performance:
//
//   - Every transform is a single O(rows*cols) pass plus one validation
//     scan of the same order; memory is one output table.
//
// See example_test.go for runnable scenarios and the sentinel list in
// errors.go for the full failure taxonomy.
package coda
