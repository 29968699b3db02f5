// SPDX-License-Identifier: MIT

package frameio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/coda/frame"
)

// ReadExcel loads a composition table from one sheet of an xlsx workbook.
//
// Cell conventions match ReadCSV: the first row is the header, empty cells
// (including cells the sheet simply omits — xlsx trims trailing blanks) are
// null (NaN), every other cell must parse as a float.
//
// Errors:
//   - ErrEmptyInput when the sheet has no header row.
//   - ErrBadCell on a non-numeric, non-empty cell.
//   - ErrShapeMismatch (via frame) never occurs: short rows are padded with
//     nulls to the header width, but a row wider than the header is rejected.
//   - excelize errors (missing file, unknown sheet) are passed through wrapped.
//
// Complexity: O(rows*cols) on top of workbook decoding.
func ReadExcel(path, sheet string) (*frame.Frame, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("frameio: open workbook: %w", err)
	}
	defer wb.Close()

	records, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("frameio: read sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	header := records[0]
	width := len(header)
	rows := make([][]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) > width {
			return nil, fmt.Errorf("frameio: row %d wider than header: %w", i+2, frame.ErrShapeMismatch)
		}
		row := make([]float64, width)
		for j := 0; j < width; j++ {
			cell := ""
			if j < len(record) {
				cell = record[j]
			}
			v, cellErr := parseCell(cell)
			if cellErr != nil {
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
