// SPDX-License-Identifier: MIT

// Package frame provides the in-memory composition table consumed by the
// log-ratio transforms: ordered named columns of float64 cells over aligned
// rows, with NaN standing in for a null value.
//
// 🚀 What is a frame?
//
//	A miniature, purpose-built dataframe. Compositional analysis only needs
//	a handful of table operations — name-addressed columns, row-aligned
//	arithmetic, null detection and positional (optionally negative) column
//	indexing — so the frame implements exactly those and nothing more.
//
// ✨ Key guarantees:
//   - Immutable by convention: constructors copy their inputs, accessors
//     return defensive copies, no method mutates a frame in place.
//   - Null = NaN: a single scalar type carries both data and missingness;
//     HasNaN is the canonical null detector.
//   - No silent coercion: out-of-bounds indices and unknown columns surface
//     as sentinel errors (ErrOutOfRange, ErrUnknownColumn), never clamped.
//   - Negative indexing: ResolveColumnIndex accepts -NumCols..NumCols-1,
//     counting from the end for negative values.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/coda/frame"
//
//	f, err := frame.New(
//	  []string{"a", "b", "c", "d"},
//	  [][]float64{
//	    {65, 12, 18, 5},
//	    {63, 16, 15, 6},
//	  },
//	)
//	if err != nil { ... }
//	col, _ := f.ColumnByName("d") // defensive copy
//
// All operations are O(rows*cols) or better, deterministic, and safe for
// concurrent use because frames are never mutated after construction.
package frame
