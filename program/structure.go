// SPDX-License-Identifier: MIT

package program

import (
	"fmt"

	"github.com/katalvlaran/lvgp/rng"
)

// Koza selection weights: internal nodes are picked nine times as often as
// leaves, which biases crossover toward exchanging real structure.
const (
	nonterminalWeight = 0.9
	terminalWeight    = 0.1
)

// Depth returns the maximum nesting level of a prefix-encoded tree (root = 0).
//
// Algorithm (explicit arity stack, one frame per open function):
//  1. Before each node, depth = max(depth, len(stack)).
//  2. Function: push its arity.
//  3. Terminal: decrement the top frame; while the top frame reaches 0, pop it
//     and decrement the new top (a closing child may close its parent too).
//
// Works on any slice that is itself a complete subtree.
// Complexity: O(len) time, O(depth) space.
func Depth(nodes []Node) int {
	var (
		depth int
		stack = make([]int, 0, 16)
	)
	for i := range nodes {
		if len(stack) > depth {
			depth = len(stack)
		}
		if nodes[i].IsNonterminal() {
			stack = append(stack, nodes[i].Arity())
			continue
		}
		// A lone terminal is a depth-0 tree.
		if len(stack) == 0 {
			break
		}
		stack = Discharge(stack)
	}
	return depth
}

// Discharge fills one argument slot of the innermost open frame and pops
// every frame that becomes full, cascading outward. It returns the shortened
// stack (same backing array). An empty stack means the tree is complete.
//
// Complexity: O(frames closed).
func Discharge(stack []int) []int {
	if len(stack) == 0 {
		return stack
	}
	stack[len(stack)-1]--
	for len(stack) > 0 && stack[len(stack)-1] == 0 {
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			stack[len(stack)-1]--
		}
	}
	return stack
}

// Validate checks that nodes is exactly one syntactically complete prefix tree.
//
// Scan with an open-slot counter starting at 1: every node fills one slot and
// a function opens Arity() more. The counter must hit 0 at the last node,
// never earlier.
//
// Errors: ErrEmpty, ErrBadNode, ErrTrailingNodes, ErrIncomplete.
// Complexity: O(len) time, O(1) space.
func Validate(nodes []Node) error {
	if len(nodes) == 0 {
		return ErrEmpty
	}
	var open = 1
	for i := range nodes {
		if !nodes[i].valid() {
			return fmt.Errorf("node %d (%s): %w", i, nodes[i].Kind(), ErrBadNode)
		}
		if open == 0 {
			return fmt.Errorf("tree closes before node %d of %d: %w", i, len(nodes), ErrTrailingNodes)
		}
		open += nodes[i].Arity() - 1
	}
	if open != 0 {
		return fmt.Errorf("%d argument slot(s) left open: %w", open, ErrIncomplete)
	}
	return nil
}

// SubtreeEnd returns the exclusive end of the minimal complete subtree that
// starts at start: keep a count of required nodes (initially 1) and add each
// visited function's arity until the span covers them all.
//
// nodes may be any concatenation of complete subtrees. Panics if the span
// runs off the end, which means the input broke the prefix invariant.
// Complexity: O(end-start).
func SubtreeEnd(nodes []Node, start int) int {
	var (
		required = 1
		end      = start
	)
	for required > end-start {
		if end >= len(nodes) {
			panic(fmt.Sprintf("program: subtree at %d runs past %d nodes", start, len(nodes)))
		}
		required += nodes[end].Arity()
		end++
	}
	return end
}

// SelectSubtree picks a random complete subtree [start,end) of nodes.
//
// Implementation:
//   - Stage 1: weight every index 0.9 (function) or 0.1 (terminal).
//   - Stage 2: draw u ∈ [0,1) once; start is the first index whose normalized
//     cumulative weight is ≥ u (lower-bound search, ties go to the first).
//   - Stage 3: end = SubtreeEnd(nodes, start).
//
// Exactly one r.Float64() draw is consumed. nodes may be a concatenation of
// complete subtrees (e.g. a window's children); the span never crosses one.
// Complexity: O(len) time, O(1) extra space.
func SelectSubtree(nodes []Node, r rng.Source) (start, end int) {
	if len(nodes) == 0 {
		panic("program: SelectSubtree on empty node sequence")
	}
	var total float64
	for i := range nodes {
		total += selectionWeight(nodes[i])
	}

	var (
		bound = r.Float64() * total
		cum   float64
	)
	start = len(nodes) - 1 // guards rounding when bound lands on total
	for i := range nodes {
		cum += selectionWeight(nodes[i])
		if cum >= bound {
			start = i
			break
		}
	}
	return start, SubtreeEnd(nodes, start)
}

func selectionWeight(n Node) float64 {
	if n.IsNonterminal() {
		return nonterminalWeight
	}
	return terminalWeight
}
