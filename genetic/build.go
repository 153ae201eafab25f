// SPDX-License-Identifier: MIT

package genetic

import (
	"github.com/katalvlaran/lvgp/program"
	"github.com/katalvlaran/lvgp/rng"
)

// Build grows one random program (ramped half-and-half).
//
// Algorithm:
//  1. Draw the target depth D uniformly from [InitDepth[0], InitDepth[1]].
//  2. Emit a random function as the root and open its arity as the first frame.
//     The root is a function even when D == 0.
//  3. HalfAndHalf only: a fair coin fixes Grow (heads) or Full for this tree.
//  4. While frames are open, with level = number of open frames:
//     draw stop ~ Bernoulli(TerminalRatio);
//     if (Full or !stop) and level < D, emit a random function and push its arity;
//     otherwise emit a random terminal and discharge one slot (cascading).
//  5. Depth is the largest level observed in step 4.
//
// Draw order per loop step is fixed (stop, then function index or terminal
// draws), so equal rng state ⇒ equal programs.
// Complexity: O(len) time, O(D) stack.
func Build(p Params, r rng.Source) program.Program {
	var (
		target = r.IntRange(p.InitDepth[0], p.InitDepth[1])
		root   = randomFunction(p, r)
		method = p.InitMethod
		nodes  = make([]program.Node, 0, 2<<min(target, 6))
		stack  = make([]int, 0, target+1)
		depth  int
	)
	nodes = append(nodes, root)
	stack = append(stack, root.Arity())

	if method == HalfAndHalf {
		if r.Bernoulli(0.5) {
			method = Grow
		} else {
			method = Full
		}
	}

	for len(stack) > 0 {
		var level = len(stack)
		if level > depth {
			depth = level
		}
		var stop = r.Bernoulli(p.TerminalRatio)
		if (method == Full || !stop) && level < target {
			var fn = randomFunction(p, r)
			nodes = append(nodes, fn)
			stack = append(stack, fn.Arity())
			continue
		}
		nodes = append(nodes, randomTerminal(p, r))
		stack = program.Discharge(stack)
	}

	return program.Program{
		Nodes:      nodes,
		Depth:      depth,
		Metric:     p.Metric,
		Provenance: program.ProvenanceConstruction,
	}
}

// BuildPopulation builds n programs; program i is drawn from base.Derive(i),
// so the result does not depend on build order and can be split across workers.
func BuildPopulation(p Params, base *rng.Stream, n int) []program.Program {
	var out = make([]program.Program, n)
	for i := range out {
		out[i] = Build(p, base.Derive(uint64(i)))
	}
	return out
}

// randomFunction draws one operator uniformly from FunctionSet.
func randomFunction(p Params, r rng.Source) program.Node {
	return program.Function(p.FunctionSet[r.IntRange(0, len(p.FunctionSet)-1)])
}

// randomTerminal makes a categorical draw over {X0 … X(n-1), constant}: one
// uniform integer picks a feature or, for the extra slot, a constant whose
// value is then drawn from ConstRange. With NoConstants the extra slot is gone.
func randomTerminal(p Params, r rng.Source) program.Node {
	var slots = p.NumFeatures
	if p.NoConstants {
		slots--
	}
	var choice = r.IntRange(0, slots)
	if choice == p.NumFeatures {
		return program.Constant(r.Uniform(p.ConstRange[0], p.ConstRange[1]))
	}
	return program.Variable(choice)
}
