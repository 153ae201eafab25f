// SPDX-License-Identifier: MIT

package genetic

import "errors"

// Sentinel errors returned by Params.Validate. Match with errors.Is.
var (
	// ErrEmptyFunctionSet indicates Params.FunctionSet has no operators.
	ErrEmptyFunctionSet = errors.New("genetic: function set is empty")

	// ErrInvalidOp indicates an operator outside the program catalog.
	ErrInvalidOp = errors.New("genetic: invalid operator in function set")

	// ErrBadFeatureCount indicates a negative feature count, or zero features
	// with constants disabled (no terminal could be drawn).
	ErrBadFeatureCount = errors.New("genetic: invalid feature count")

	// ErrBadConstRange indicates a non-finite or inverted constant range.
	ErrBadConstRange = errors.New("genetic: invalid constant range")

	// ErrBadInitDepth indicates a negative, inverted, or too deep init range.
	ErrBadInitDepth = errors.New("genetic: invalid init depth range")

	// ErrBadMaxDepth indicates a depth bound that cannot hold even a root and its leaves.
	ErrBadMaxDepth = errors.New("genetic: invalid max depth bound")

	// ErrBadInitMethod indicates an unknown initialization method.
	ErrBadInitMethod = errors.New("genetic: unknown init method")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("genetic: probability out of range")

	// ErrBadParsimony indicates a negative or non-finite parsimony coefficient.
	ErrBadParsimony = errors.New("genetic: invalid parsimony coefficient")

	// ErrBadMetric indicates a metric outside the supported set.
	ErrBadMetric = errors.New("genetic: invalid metric")
)
