// SPDX-License-Identifier: MIT

// Package arrowio bridges composition frames and Apache Arrow record
// batches, the columnar format compositional datasets commonly travel in
// (parquet files, Flight streams, dataframe interchange).
//
// ✨ Conventions:
//   - FromRecord widens FLOAT64/FLOAT32/INT64/INT32 columns to float64 and
//     maps Arrow nulls to NaN — the frame's null marker — so validation and
//     error behavior are identical regardless of where a table came from.
//   - ToRecord emits an all-float64 nullable schema, turning NaN cells back
//     into Arrow nulls; FromRecord(ToRecord(f)) reproduces f exactly.
//   - Ownership follows Arrow rules: FromRecord never retains its input,
//     ToRecord's caller must Release the returned record.
//
// ⚙️ Usage:
//
//	f, err := arrowio.FromRecord(rec)
//	rec, err := arrowio.ToRecord(f, memory.NewGoAllocator())
//	defer rec.Release()
package arrowio
