// SPDX-License-Identifier: MIT

package eval

import "errors"

// Sentinel errors for the shape checks at the kernel boundary.
var (
	// ErrNilData indicates a nil feature matrix.
	ErrNilData = errors.New("eval: nil feature matrix")

	// ErrNoRows indicates a feature matrix with zero rows.
	ErrNoRows = errors.New("eval: feature matrix has no rows")

	// ErrOutputSize indicates an output buffer whose length is not n_progs × n_rows.
	ErrOutputSize = errors.New("eval: output buffer size mismatch")

	// ErrEmptyProgram indicates a program with no nodes.
	ErrEmptyProgram = errors.New("eval: empty program")

	// ErrFeatureRange indicates a Variable node whose feature index is not a column of X.
	ErrFeatureRange = errors.New("eval: variable feature index out of range")
)
