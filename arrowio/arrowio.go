// SPDX-License-Identifier: MIT

package arrowio

import (
	"errors"
	"fmt"
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/katalvlaran/coda/frame"
)

var (
	// ErrNilRecord indicates a nil arrow.Record was passed to FromRecord.
	ErrNilRecord = errors.New("arrowio: nil record")

	// ErrUnsupportedType indicates a record column whose Arrow type cannot
	// be widened to float64 (anything beyond FLOAT64/FLOAT32/INT64/INT32).
	ErrUnsupportedType = errors.New("arrowio: unsupported column type")

	// ErrNilFrame indicates a nil *frame.Frame was passed to ToRecord.
	ErrNilFrame = errors.New("arrowio: nil frame")
)

// FromRecord converts one Arrow record batch into a composition frame.
//
// Column handling:
//   - FLOAT64 columns are taken as-is; FLOAT32, INT64 and INT32 columns are
//     widened to float64.
//   - Arrow nulls become NaN cells — the frame's null marker — so a null in
//     a parquet pipeline is rejected by the transform validators exactly
//     like a null read from CSV.
//   - Any other column type fails with ErrUnsupportedType naming the field.
//
// The record is only read, never retained; the caller keeps ownership.
//
// Errors: ErrNilRecord, ErrUnsupportedType, frame header sentinels.
// Complexity: O(rows*cols).
func FromRecord(rec arrow.Record) (*frame.Frame, error) {
	if rec == nil {
		return nil, ErrNilRecord
	}

	nCols := int(rec.NumCols())
	nRows := int(rec.NumRows())
	names := make([]string, nCols)
	cols := make([][]float64, nCols)

	for c := 0; c < nCols; c++ {
		field := rec.Schema().Field(c)
		names[c] = field.Name

		col := make([]float64, nRows)
		if err := readColumn(rec.Column(c), col); err != nil {
			return nil, fmt.Errorf("arrowio: column %q: %w", field.Name, err)
		}
		cols[c] = col
	}

	f, err := frame.FromColumns(names, cols)
	if err != nil {
		return nil, fmt.Errorf("arrowio: build frame: %w", err)
	}
	return f, nil
}

// readColumn widens one Arrow array into dst, mapping nulls to NaN.
func readColumn(arr arrow.Array, dst []float64) error {
	switch col := arr.(type) {
	case *array.Float64:
		for r := range dst {
			dst[r] = valueOrNaN(col.IsNull(r), col.Value(r))
		}
	case *array.Float32:
		for r := range dst {
			dst[r] = valueOrNaN(col.IsNull(r), float64(col.Value(r)))
		}
	case *array.Int64:
		for r := range dst {
			dst[r] = valueOrNaN(col.IsNull(r), float64(col.Value(r)))
		}
	case *array.Int32:
		for r := range dst {
			dst[r] = valueOrNaN(col.IsNull(r), float64(col.Value(r)))
		}
	default:
		return fmt.Errorf("%s: %w", arr.DataType().Name(), ErrUnsupportedType)
	}
	return nil
}

// valueOrNaN maps an Arrow null flag + value pair onto the frame convention.
func valueOrNaN(isNull bool, v float64) float64 {
	if isNull {
		return math.NaN()
	}
	return v
}

// ToRecord converts a frame into an Arrow record batch with an all-float64,
// nullable schema. NaN cells are emitted as Arrow nulls, mirroring
// FromRecord, so the two functions round-trip losslessly.
//
// The caller owns the returned record and must Release it. A nil allocator
// falls back to memory.DefaultAllocator.
//
// Errors: ErrNilFrame.
// Complexity: O(rows*cols).
func ToRecord(f *frame.Frame, mem memory.Allocator) (arrow.Record, error) {
	if f == nil {
		return nil, ErrNilFrame
	}
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	nCols, nRows := f.NumCols(), f.NumRows()
	fields := make([]arrow.Field, nCols)
	arrays := make([]arrow.Array, nCols)

	for c := 0; c < nCols; c++ {
		name, _ := f.Name(c) // bounds are loop-derived
		fields[c] = arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64, Nullable: true}

		b := array.NewFloat64Builder(mem)
		b.Reserve(nRows)
		for r := 0; r < nRows; r++ {
			v, _ := f.At(r, c)
			if math.IsNaN(v) {
				b.AppendNull()
				continue
			}
			b.Append(v)
		}
		arrays[c] = b.NewArray()
		b.Release()
	}

	schema := arrow.NewSchema(fields, nil)
	rec := array.NewRecord(schema, arrays, int64(nRows))

	// The record retains the arrays; drop the builder references.
	for _, arr := range arrays {
		arr.Release()
	}
	return rec, nil
}
