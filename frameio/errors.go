// SPDX-License-Identifier: MIT
// Package frameio: sentinel error set (unified, consistent).
// Prefixed "frameio: ..." and matched via errors.Is, same conventions as the
// frame and coda packages.

package frameio

import "errors"

var (
	// ErrEmptyInput indicates that the source carries no header row, so no
	// frame can be constructed.
	ErrEmptyInput = errors.New("frameio: empty input (missing header row)")

	// ErrBadCell indicates a data cell that is neither empty (null) nor a
	// parseable floating-point number.
	ErrBadCell = errors.New("frameio: cell is not a number")

	// ErrNilFrame indicates a nil *frame.Frame was passed to a writer.
	ErrNilFrame = errors.New("frameio: nil frame")
)
