// SPDX-License-Identifier: MIT

package program

import "errors"

// Every message is prefixed with "program: ..." so it greps cleanly in logs.
// Callers match with errors.Is; context is attached with %w at the boundary.
var (
	// ErrEmpty indicates a node sequence with no nodes.
	ErrEmpty = errors.New("program: empty node sequence")

	// ErrIncomplete indicates the sequence ends while argument slots are still open.
	ErrIncomplete = errors.New("program: incomplete prefix encoding")

	// ErrTrailingNodes indicates the tree closed before the last node.
	ErrTrailingNodes = errors.New("program: nodes after complete tree")

	// ErrBadNode indicates a node that is neither function, variable nor constant,
	// or a variable with a negative feature index.
	ErrBadNode = errors.New("program: invalid node")

	// ErrUnknownOp indicates an operator name outside the catalog.
	ErrUnknownOp = errors.New("program: unknown operator")

	// ErrUnknownMetric indicates a metric name outside the supported set.
	ErrUnknownMetric = errors.New("program: unknown metric")

	// ErrSyntax indicates malformed program text.
	ErrSyntax = errors.New("program: syntax error")
)
