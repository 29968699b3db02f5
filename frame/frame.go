// SPDX-License-Identifier: MIT
// Package: frame
//
// Purpose:
//   - Provide the canonical in-memory table of named float64 columns used by
//     the coda transforms: ordered columns, aligned rows, value semantics.
//   - Encode "null" as math.NaN() so that a single scalar type carries both
//     data and missingness, exactly like the numeric tables it mirrors.
//
// Determinism & Performance:
//   - Storage is column-major ([][]float64) because every transform in this
//     module is a per-column kernel over row-aligned data.
//   - All accessors that hand out slices return defensive copies; the frame
//     itself is never mutated after construction.

package frame

import "math"

// Frame is an immutable-by-convention table: an ordered sequence of named
// float64 columns, all of equal length. A NaN cell encodes a null value.
//
// Construct via New (row-major input) or FromColumns (column-major input);
// the zero value is not usable.
type Frame struct {
	names []string       // column names, in presentation order
	index map[string]int // name -> position in names/cols
	cols  [][]float64    // column-major storage, len(cols[i]) == rows
	rows  int            // fixed row count
}

// New builds a Frame from row-major data: rows[r][c] is the cell at row r,
// column c. Every row must have exactly len(names) cells.
//
// Inputs:
//   - names: ordered, unique, non-empty column names (at least one).
//   - rows: zero or more rows of width len(names).
//
// Returns:
//   - *Frame holding a private copy of the data.
//
// Errors:
//   - ErrNoColumns, ErrEmptyName, ErrDuplicateColumn on bad headers.
//   - ErrShapeMismatch on a ragged row.
//
// Complexity: Time O(r*c), Space O(r*c).
func New(names []string, rows [][]float64) (*Frame, error) {
	index, err := buildIndex(names)
	if err != nil {
		return nil, err
	}

	nCols := len(names)
	cols := make([][]float64, nCols)
	for c := 0; c < nCols; c++ {
		cols[c] = make([]float64, len(rows))
	}

	// Transpose row-major input into the column-major store.
	for r, row := range rows {
		if len(row) != nCols {
			return nil, ErrShapeMismatch
		}
		for c := 0; c < nCols; c++ {
			cols[c][r] = row[c]
		}
	}

	return &Frame{
		names: copyNames(names),
		index: index,
		cols:  cols,
		rows:  len(rows),
	}, nil
}

// FromColumns builds a Frame from column-major data: cols[c] is the full
// column for names[c]. All columns must have equal length.
//
// Errors:
//   - ErrNoColumns, ErrEmptyName, ErrDuplicateColumn on bad headers.
//   - ErrShapeMismatch when len(cols) != len(names) or column lengths differ.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromColumns(names []string, cols [][]float64) (*Frame, error) {
	index, err := buildIndex(names)
	if err != nil {
		return nil, err
	}
	if len(cols) != len(names) {
		return nil, ErrShapeMismatch
	}

	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0])
	}
	store := make([][]float64, len(cols))
	for c, col := range cols {
		if len(col) != rows {
			return nil, ErrShapeMismatch
		}
		store[c] = append([]float64(nil), col...)
	}

	return &Frame{
		names: copyNames(names),
		index: index,
		cols:  store,
		rows:  rows,
	}, nil
}

// buildIndex validates the header and produces the name -> position map.
// Header order: non-empty list -> non-empty names -> unique names.
func buildIndex(names []string) (map[string]int, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, dup := index[name]; dup {
			return nil, ErrDuplicateColumn
		}
		index[name] = i
	}
	return index, nil
}

// copyNames returns a private copy of the header slice.
func copyNames(names []string) []string {
	return append([]string(nil), names...)
}

// NumRows reports the number of rows. O(1).
func (f *Frame) NumRows() int { return f.rows }

// NumCols reports the number of columns. O(1).
func (f *Frame) NumCols() int { return len(f.names) }

// Names returns a copy of the ordered column names. O(c).
func (f *Frame) Names() []string { return copyNames(f.names) }

// Name returns the name of the column at position c.
// Errors: ErrOutOfRange when c is outside 0..NumCols-1.
func (f *Frame) Name(c int) (string, error) {
	if c < 0 || c >= len(f.names) {
		return "", ErrOutOfRange
	}
	return f.names[c], nil
}

// HasColumn reports whether a column with the given name exists. O(1).
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// ColumnIndex returns the position of the named column.
// Errors: ErrUnknownColumn when no column carries that name.
func (f *Frame) ColumnIndex(name string) (int, error) {
	c, ok := f.index[name]
	if !ok {
		return 0, ErrUnknownColumn
	}
	return c, nil
}

// ResolveColumnIndex resolves a possibly negative position index against the
// frame's column count, Python-style: -1 addresses the last column, -NumCols
// the first. The valid range is -NumCols .. NumCols-1; anything outside it
// reports ok=false. Out-of-bounds indices are never clamped.
//
// Complexity: O(1).
func (f *Frame) ResolveColumnIndex(idx int) (pos int, ok bool) {
	n := len(f.names)
	if idx < -n || idx >= n {
		return 0, false
	}
	if idx < 0 {
		return idx + n, true
	}
	return idx, true
}

// At returns the cell at row r, column c with full bounds checking.
// Errors: ErrOutOfRange on either index.
func (f *Frame) At(r, c int) (float64, error) {
	if r < 0 || r >= f.rows || c < 0 || c >= len(f.cols) {
		return 0, ErrOutOfRange
	}
	return f.cols[c][r], nil
}

// Column returns a copy of the column at position c.
// Errors: ErrOutOfRange. Complexity: O(r).
func (f *Frame) Column(c int) ([]float64, error) {
	if c < 0 || c >= len(f.cols) {
		return nil, ErrOutOfRange
	}
	return append([]float64(nil), f.cols[c]...), nil
}

// ColumnByName returns a copy of the named column.
// Errors: ErrUnknownColumn. Complexity: O(r).
func (f *Frame) ColumnByName(name string) ([]float64, error) {
	c, err := f.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	return f.Column(c)
}

// Row returns a copy of row r in column order.
// Errors: ErrOutOfRange. Complexity: O(c).
func (f *Frame) Row(r int) ([]float64, error) {
	if r < 0 || r >= f.rows {
		return nil, ErrOutOfRange
	}
	row := make([]float64, len(f.cols))
	for c := range f.cols {
		row[c] = f.cols[c][r]
	}
	return row, nil
}

// Select returns a new Frame containing only the named columns, in the order
// given. The underlying data is copied; the receiver is left untouched.
// Errors: ErrUnknownColumn for any missing name, ErrNoColumns for zero names.
// Complexity: Time O(r*k) for k selected columns.
func (f *Frame) Select(names ...string) (*Frame, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	cols := make([][]float64, 0, len(names))
	for _, name := range names {
		c, err := f.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, f.cols[c])
	}
	return FromColumns(names, cols)
}

// Drop returns a new Frame with the named columns removed, preserving the
// relative order of the survivors.
// Errors: ErrUnknownColumn for any missing name, ErrNoColumns when nothing
// survives. Complexity: Time O(r*c).
func (f *Frame) Drop(names ...string) (*Frame, error) {
	dropped := make(map[string]bool, len(names))
	for _, name := range names {
		if !f.HasColumn(name) {
			return nil, ErrUnknownColumn
		}
		dropped[name] = true
	}
	kept := make([]string, 0, len(f.names))
	for _, name := range f.names {
		if !dropped[name] {
			kept = append(kept, name)
		}
	}
	if len(kept) == 0 {
		return nil, ErrNoColumns
	}
	return f.Select(kept...)
}

// HasNaN reports whether any cell is NaN (the frame's null marker).
// Always scans every cell. Complexity: O(r*c).
func (f *Frame) HasNaN() bool {
	for _, col := range f.cols {
		for _, v := range col {
			if math.IsNaN(v) {
				return true
			}
		}
	}
	return false
}

// HasInf reports whether any cell is ±Inf. Complexity: O(r*c).
func (f *Frame) HasInf() bool {
	for _, col := range f.cols {
		for _, v := range col {
			if math.IsInf(v, 0) {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy of the frame. Complexity: O(r*c).
func (f *Frame) Clone() *Frame {
	out, _ := FromColumns(f.names, f.cols) // inputs already validated
	return out
}

// Equal reports exact equality of header, shape and cells. Two NaN cells in
// the same position compare equal (both are "null"). Complexity: O(r*c).
func (f *Frame) Equal(other *Frame) bool {
	return f.EqualWithin(other, 0)
}

// EqualWithin reports equality of header and shape, with cells compared up to
// the absolute tolerance tol (|a-b| <= tol). NaN cells match only NaN cells.
// Complexity: O(r*c).
func (f *Frame) EqualWithin(other *Frame, tol float64) bool {
	if other == nil || f.rows != other.rows || len(f.names) != len(other.names) {
		return false
	}
	for c, name := range f.names {
		if other.names[c] != name {
			return false
		}
	}
	for c := range f.cols {
		for r := range f.cols[c] {
			a, b := f.cols[c][r], other.cols[c][r]
			if math.IsNaN(a) || math.IsNaN(b) {
				if !(math.IsNaN(a) && math.IsNaN(b)) {
					return false
				}
				continue
			}
			if math.Abs(a-b) > tol {
				return false
			}
		}
	}
	return true
}
