// SPDX-License-Identifier: MIT
// Package frame: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the frame
// package. All constructors and accessors MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package frame

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "frame: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the call site — callers will still use errors.Is to match.

var (
	// ErrNilFrame indicates that a nil *Frame (receiver or argument) was used.
	ErrNilFrame = errors.New("frame: nil frame")

	// ErrNoColumns is returned when a frame is constructed with zero columns.
	// A column-less table has no meaningful row width and is rejected outright.
	ErrNoColumns = errors.New("frame: no columns")

	// ErrEmptyName is returned when a column name is the empty string.
	ErrEmptyName = errors.New("frame: empty column name")

	// ErrDuplicateColumn is returned when two columns share the same name.
	// Column names are the frame's primary addressing scheme and must be unique.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrShapeMismatch indicates ragged input: a row (or column) whose length
	// disagrees with the frame's fixed width (or height).
	ErrShapeMismatch = errors.New("frame: shape mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers MUST return this, not panic, and never clamp.
	ErrOutOfRange = errors.New("frame: index out of range")

	// ErrUnknownColumn indicates that a referenced column name is not present
	// in the frame.
	ErrUnknownColumn = errors.New("frame: unknown column")
)
