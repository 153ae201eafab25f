// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set.
// Every message is prefixed with "dataset: ..."; boundaries wrap with
// fmt.Errorf("Ctx: %w", ErrX) and callers match with errors.Is.

package dataset

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<0).
	ErrBadShape = errors.New("dataset: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("dataset: index out of range")

	// ErrDimensionMismatch indicates columns of different lengths, or a target
	// vector whose length differs from the frame's row count.
	ErrDimensionMismatch = errors.New("dataset: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("dataset: NaN or Inf encountered")

	// ErrUnknownColumn indicates a target column name or index that is not in the header.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrParse indicates a CSV cell that is not a number.
	ErrParse = errors.New("dataset: cannot parse value")

	// ErrEmpty indicates a CSV source with no data rows.
	ErrEmpty = errors.New("dataset: no data rows")
)
