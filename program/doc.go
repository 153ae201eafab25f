// SPDX-License-Identifier: MIT

// Package program defines the flat, prefix-encoded representation of a
// genetic-programming individual and the structural algorithms that walk it.
//
// 🚀 What is a Program?
//
//	An arithmetic expression tree stored as a single []Node in preorder:
//	a function node is immediately followed by the complete encoding of its
//	first child, then (for binary ops) its second child.
//
//	    add(X0, mul(X1, 0.5))   ⇒   [add, X0, mul, X1, 0.5]
//
// ✨ Structural algorithms (all driven by an explicit arity stack, no recursion):
//   - Depth         — maximum nesting level (root = 0), O(len) time, O(depth) space.
//   - Validate      — open-slot scan proving the sequence is one complete tree.
//   - SubtreeEnd    — minimal complete span starting at an index.
//   - SelectSubtree — Koza-style weighted pick (0.9 functions / 0.1 terminals).
//
// Ownership:
//
//	A Program exclusively owns its Nodes. Clone deep-copies; Move hands the
//	buffer to the returned value and leaves the source empty. No two Programs
//	ever alias the same backing array.
//
// Errors:
//   - ErrEmpty, ErrIncomplete, ErrTrailingNodes — structural validation.
//   - ErrUnknownOp, ErrUnknownMetric, ErrSyntax — text parsing.
package program
