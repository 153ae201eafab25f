// SPDX-License-Identifier: MIT

package genetic

import (
	"testing"

	"github.com/katalvlaran/lvgp/program"
	"github.com/katalvlaran/lvgp/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted replays fixed uniform draws.
type scripted struct {
	vals []float64
	i    int
}

func (s *scripted) Float64() float64 {
	var v = s.vals[s.i%len(s.vals)]
	s.i++
	return v
}
func (s *scripted) Uniform(lo, hi float64) float64 { return lo + (hi-lo)*s.Float64() }
func (s *scripted) IntRange(lo, hi int) int        { return lo + int(s.Float64()*float64(hi-lo+1)) }
func (s *scripted) Bernoulli(p float64) bool       { return s.Float64() < p }

// sinChain returns sin(sin(...sin(X0))) with k functions (depth k).
func sinChain(k int) program.Program {
	var nodes = make([]program.Node, 0, k+1)
	for i := 0; i < k; i++ {
		nodes = append(nodes, program.Function(program.OpSin))
	}
	nodes = append(nodes, program.Variable(0))
	var prog, err = program.New(nodes)
	if err != nil {
		panic(err)
	}
	return prog
}

// TestCrossover_AttemptBound: every retry moves the donor window one level
// down at least, so attempts never exceed donor.Depth+1.
func TestCrossover_AttemptBound(t *testing.T) {
	var p = DefaultParams()
	p.NumFeatures = 2
	p.InitDepth = [2]int{1, 2}
	p.MaxDepth = 4
	require.NoError(t, p.Validate())

	var (
		donor     = sinChain(12)
		recipient = program.Program{Nodes: []program.Node{
			program.Function(program.OpAdd),
			program.Function(program.OpMul), program.Variable(0), program.Variable(1),
			program.Constant(1),
		}, Depth: 2}
		retried bool
	)
	for s := uint64(1); s <= 500; s++ {
		var child, attempts = crossover(recipient, donor, p, rng.New(s))
		require.Less(t, child.Depth, p.MaxDepth)
		require.NoError(t, program.Validate(child.Nodes))
		require.LessOrEqual(t, attempts, donor.Depth+1)
		if attempts > 1 {
			retried = true
		}
	}
	assert.True(t, retried, "a depth-12 donor under bound 4 must force retries")
}

// TestCrossover_NarrowsToTerminal scripts the worst case: the root of the
// donor is picked first and each retry takes the next chain link.
func TestCrossover_NarrowsToTerminal(t *testing.T) {
	var p = DefaultParams()
	p.NumFeatures = 1
	p.MaxDepth = 3
	p.InitDepth = [2]int{1, 2}
	require.NoError(t, p.Validate())

	var (
		recipient = program.Program{Nodes: []program.Node{
			program.Function(program.OpNeg), program.Variable(0),
		}, Depth: 1}
		donor = sinChain(6)
		// u=0 always selects index 0: recipient root, then each window's first child.
		src = &scripted{vals: []float64{0}}
	)
	var child, attempts = crossover(recipient, donor, p, src)
	// Windows: depth 6, 5, 4, 3 (rejected), then sin(sin(X0)) depth 2 accepted.
	assert.Equal(t, 5, attempts)
	assert.Equal(t, 2, child.Depth)
	assert.Equal(t, "sin(sin(X0))", child.String())
}

// TestCrossover_PanicsOnTooDeepRecipient: if even a terminal donor cannot
// satisfy the bound, the recipient already broke it.
func TestCrossover_PanicsOnTooDeepRecipient(t *testing.T) {
	var p = DefaultParams()
	p.NumFeatures = 1
	p.MaxDepth = 4

	var (
		recipient = sinChain(10)
		donor     = program.Program{Nodes: []program.Node{program.Variable(0)}}
		// 10×0.9 + 0.1 = 9.1 total weight; u=0.999999 lands on the last leaf.
		src = &scripted{vals: []float64{0.999999}}
	)
	assert.Panics(t, func() { Crossover(recipient, donor, p, src) })
}

func TestSplice(t *testing.T) {
	var (
		host   = []program.Node{program.Function(program.OpAdd), program.Variable(0), program.Variable(1)}
		insert = []program.Node{program.Constant(2)}
		got    = splice(nil, host, 2, 3, insert)
	)
	assert.Equal(t, "add(X0, 2)", program.Format(got))
	assert.Equal(t, "add(X0, X1)", program.Format(host))
}
