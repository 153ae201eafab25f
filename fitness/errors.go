// SPDX-License-Identifier: MIT

package fitness

import "errors"

// Sentinel errors for Score and SetBatched. Match with errors.Is.
var (
	// ErrNoRows indicates nRows <= 0 or nProgs < 0.
	ErrNoRows = errors.New("fitness: invalid row or program count")

	// ErrLengthMismatch indicates y, yPred or weights with the wrong length.
	ErrLengthMismatch = errors.New("fitness: length mismatch")

	// ErrBadWeight indicates a negative or non-finite sample weight.
	ErrBadWeight = errors.New("fitness: invalid sample weight")

	// ErrUnknownMetric indicates a metric outside the supported set.
	ErrUnknownMetric = errors.New("fitness: unknown metric")
)
