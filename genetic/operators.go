// SPDX-License-Identifier: MIT

package genetic

import (
	"fmt"

	"github.com/katalvlaran/lvgp/program"
	"github.com/katalvlaran/lvgp/rng"
)

// PointMutation returns a copy of parent where each node is resampled with
// probability p.PointReplace.
//
//   - Terminal: redrawn exactly as in Build (variable or constant).
//   - Function: replaced by a different operator drawn uniformly from the
//     FunctionSet members of the same arity. A node whose operator is the
//     only one of its arity is kept.
//
// Draw order: one r.Float64() per node first, then the replacement draws for
// the selected nodes in index order. Length and depth are unchanged.
// Complexity: O(len).
func PointMutation(parent program.Program, p Params, r rng.Source) program.Program {
	var (
		child = parent.Clone()
		pick  = make([]bool, len(child.Nodes))
	)
	for i := range pick {
		pick[i] = r.Float64() < p.PointReplace
	}

	var (
		index = p.ArityIndex()
		buf   []program.Op
	)
	for i, hit := range pick {
		if !hit {
			continue
		}
		var n = child.Nodes[i]
		if n.IsTerminal() {
			child.Nodes[i] = randomTerminal(p, r)
			continue
		}
		var alt = alternatives(index[n.Arity()], n.Op(), buf[:0])
		if len(alt) == 0 {
			continue
		}
		child.Nodes[i] = program.Function(alt[r.IntRange(0, len(alt)-1)])
		buf = alt
	}

	child.RawFitness = 0
	child.Metric = p.Metric
	child.Provenance = program.ProvenancePointMutation
	return child
}

// alternatives appends the members of same other than op to dst.
func alternatives(same []program.Op, op program.Op, dst []program.Op) []program.Op {
	for _, o := range same {
		if o != op {
			dst = append(dst, o)
		}
	}
	return dst
}

// Crossover replaces a random subtree of recipient with a random subtree of
// donor, keeping the child strictly below p.MaxDepth.
//
// Algorithm:
//  1. [rs,re) ← SelectSubtree(recipient).
//  2. window ← SelectSubtree(donor).
//  3. child ← recipient[:rs] + donor[window] + recipient[re:]; accept when
//     Depth(child) < MaxDepth.
//  4. Otherwise window ← SelectSubtree over the window's children
//     (donor[window.start+1 : window.end]) and go to 3.
//
// Step 4 moves at least one level down the donor per retry, so there are at
// most donor.Depth+1 attempts. A single terminal never deepens the recipient,
// so reaching one that still fails means recipient itself was too deep: panic.
// Complexity: O(attempts × len(child)).
func Crossover(recipient, donor program.Program, p Params, r rng.Source) program.Program {
	var child, _ = crossover(recipient, donor, p, r)
	return child
}

// crossover is Crossover plus the number of attempts it took.
func crossover(recipient, donor program.Program, p Params, r rng.Source) (program.Program, int) {
	var (
		rs, re = program.SelectSubtree(recipient.Nodes, r)
		ds, de = program.SelectSubtree(donor.Nodes, r)
		buf    []program.Node
	)
	for attempt := 1; ; attempt++ {
		buf = splice(buf[:0], recipient.Nodes, rs, re, donor.Nodes[ds:de])
		if depth := program.Depth(buf); depth < p.MaxDepth {
			var nodes = make([]program.Node, len(buf))
			copy(nodes, buf)
			return program.Program{
				Nodes:      nodes,
				Depth:      depth,
				Metric:     p.Metric,
				Provenance: program.ProvenanceCrossover,
			}, attempt
		}
		if de-ds == 1 {
			panic(fmt.Sprintf("genetic: crossover child exceeds depth bound %d with a terminal donor; recipient depth %d",
				p.MaxDepth, recipient.Depth))
		}
		var s, e = program.SelectSubtree(donor.Nodes[ds+1:de], r)
		ds, de = ds+1+s, ds+1+e
	}
}

// SubtreeMutation crosses parent with a freshly built program: mutation by
// importing new material through the ordinary crossover path.
// Draw order: Build's draws, then Crossover's.
func SubtreeMutation(parent program.Program, p Params, r rng.Source) program.Program {
	var (
		donor = Build(p, r)
		child = Crossover(parent, donor, p, r)
	)
	child.Provenance = program.ProvenanceSubtreeMutation
	return child
}

// HoistMutation picks a subtree A of parent, then a subtree B inside A, and
// replaces A with B. The child is never longer than parent and never deeper,
// so no depth retry is needed.
// Complexity: O(len).
func HoistMutation(parent program.Program, p Params, r rng.Source) program.Program {
	var (
		as, ae = program.SelectSubtree(parent.Nodes, r)
		bs, be = program.SelectSubtree(parent.Nodes[as:ae], r)
		nodes  = splice(make([]program.Node, 0, len(parent.Nodes)), parent.Nodes, as, ae, parent.Nodes[as+bs:as+be])
	)
	return program.Program{
		Nodes:      nodes,
		Depth:      program.Depth(nodes),
		Metric:     p.Metric,
		Provenance: program.ProvenanceHoist,
	}
}

// splice appends host[:start] + insert + host[end:] to dst.
func splice(dst, host []program.Node, start, end int, insert []program.Node) []program.Node {
	dst = append(dst, host[:start]...)
	dst = append(dst, insert...)
	return append(dst, host[end:]...)
}
