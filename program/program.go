// SPDX-License-Identifier: MIT

package program

import "fmt"

// Provenance records which operator produced a Program. Bookkeeping only;
// no algorithm reads it.
type Provenance uint8

const (
	ProvenanceNone Provenance = iota
	ProvenanceConstruction
	ProvenanceCrossover
	ProvenanceSubtreeMutation
	ProvenanceHoist
	ProvenancePointMutation
	ProvenanceReproduction
)

// String returns the provenance tag, e.g. "crossover".
func (p Provenance) String() string {
	switch p {
	case ProvenanceNone:
		return "none"
	case ProvenanceConstruction:
		return "construction"
	case ProvenanceCrossover:
		return "crossover"
	case ProvenanceSubtreeMutation:
		return "subtree-mutation"
	case ProvenanceHoist:
		return "hoist"
	case ProvenancePointMutation:
		return "point-mutation"
	case ProvenanceReproduction:
		return "reproduction"
	default:
		return fmt.Sprintf("provenance(%d)", uint8(p))
	}
}

// Program is one GP individual.
//
// Invariants (hold for every Program returned by this module):
//   - Len() ≥ 1 and Nodes is a complete prefix encoding (Validate(Nodes) == nil).
//   - Depth == Depth(Nodes).
//   - Nodes is never shared with another Program.
//
// The node count is len(Nodes); the slice header is the only length cache,
// so it cannot drift from the data.
type Program struct {
	Nodes      []Node
	Depth      int
	RawFitness float64
	Metric     Metric
	Provenance Provenance
}

// New validates nodes and returns a Program owning a private copy of them
// with Depth computed.
func New(nodes []Node) (Program, error) {
	if err := Validate(nodes); err != nil {
		return Program{}, fmt.Errorf("New: %w", err)
	}
	var own = make([]Node, len(nodes))
	copy(own, nodes)
	return Program{Nodes: own, Depth: Depth(own)}, nil
}

// Len returns the node count.
func (p Program) Len() int { return len(p.Nodes) }

// Clone returns a deep copy: same header fields, freshly allocated Nodes.
// Complexity: O(len).
func (p Program) Clone() Program {
	var out = p
	if p.Nodes != nil {
		out.Nodes = make([]Node, len(p.Nodes))
		copy(out.Nodes, p.Nodes)
	}
	return out
}

// Move transfers ownership of the node buffer to the returned Program and
// resets p to the empty state (no nodes, zero depth and fitness). Metric
// and Provenance are left as they were.
// Complexity: O(1).
func (p *Program) Move() Program {
	var out = *p
	p.Nodes = nil
	p.Depth = 0
	p.RawFitness = 0
	return out
}

// String renders the tree in functional notation, e.g. "add(X0, mul(X1, 0.5))".
func (p Program) String() string {
	return Format(p.Nodes)
}
