// SPDX-License-Identifier: MIT

package frameio

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/coda/frame"
)

// floatFormat parameters for WriteCSV: shortest round-trippable decimal form.
const (
	floatFmt  = 'g'
	floatPrec = -1
	floatBits = 64
)

// ReadCSV parses a composition table from CSV text.
//
// Conventions:
//   - The first record is the header (column names).
//   - An empty cell (or whitespace only) parses to NaN — the frame's null
//     marker — so missing values survive the round trip and are later caught
//     by the transform validators, never silently substituted.
//   - Any other cell must parse as a float; otherwise ErrBadCell is returned
//     with the offending row/column in the message.
//   - Zero data rows is valid: the result is a header-only frame.
//
// Errors:
//   - ErrEmptyInput on a source with no records at all.
//   - ErrBadCell on a non-numeric, non-empty cell.
//   - csv parse errors (ragged records included) are passed through wrapped.
//   - frame constructor sentinels on a bad header (duplicates, empty names).
//
// Complexity: O(rows*cols).
func ReadCSV(r io.Reader) (*frame.Frame, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("frameio: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	header := records[0]
	rows := make([][]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		row := make([]float64, len(record))
		for j, cell := range record {
			v, cellErr := parseCell(cell)
			if cellErr != nil {
				// +2: 1-based line numbering plus the header line.
				return nil, fmt.Errorf("frameio: row %d column %q: %w", i+2, header[j], cellErr)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	f, err := frame.New(header, rows)
	if err != nil {
		return nil, fmt.Errorf("frameio: build frame: %w", err)
	}
	return f, nil
}

// WriteCSV serializes a frame as CSV: header first, then one record per row.
// NaN cells are written as empty strings so that ReadCSV(WriteCSV(f))
// reproduces f exactly (NaN round-trips as null).
//
// Errors: ErrNilFrame, plus any underlying writer error.
// Complexity: O(rows*cols).
func WriteCSV(w io.Writer, f *frame.Frame) error {
	if f == nil {
		return ErrNilFrame
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(f.Names()); err != nil {
		return fmt.Errorf("frameio: write header: %w", err)
	}

	record := make([]string, f.NumCols())
	for r := 0; r < f.NumRows(); r++ {
		for c := 0; c < f.NumCols(); c++ {
			v, _ := f.At(r, c) // bounds are loop-derived
			if math.IsNaN(v) {
				record[c] = ""
				continue
			}
			record[c] = strconv.FormatFloat(v, floatFmt, floatPrec, floatBits)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("frameio: write row %d: %w", r, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("frameio: flush: %w", err)
	}
	return nil
}

// parseCell maps one textual cell to a float64: empty means null (NaN),
// anything else must be a valid float.
func parseCell(cell string) (float64, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, floatBits)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrBadCell)
	}
	return v, nil
}
