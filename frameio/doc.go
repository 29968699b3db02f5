// SPDX-License-Identifier: MIT

// Package frameio moves composition tables between the in-memory frame
// representation and the formats they actually arrive in: CSV text and xlsx
// workbooks.
//
// ✨ Conventions (shared by every reader/writer):
//   - First row = header = column names.
//   - Empty cell = null = NaN in the frame; nothing is ever substituted for
//     a missing value — the transform validators decide what to do with it.
//   - Every other cell must be a parseable float; anything else fails with
//     ErrBadCell, naming the offending row and column.
//   - WriteCSV and ReadCSV round-trip exactly, including nulls.
//
// ⚙️ Usage:
//
//	f, err := frameio.ReadCSV(file)          // io.Reader
//	f, err = frameio.ReadExcel(path, "Data") // xlsx sheet
//	err = frameio.WriteCSV(out, f)
//
// The package holds no state; each call is a single pass over the data.
package frameio
