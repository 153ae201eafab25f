// SPDX-License-Identifier: MIT

package program_test

import (
	"testing"

	"github.com/katalvlaran/lvgp/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CopiesAndMeasures(t *testing.T) {
	var src = append([]program.Node(nil), skewed...)
	var p, err = program.New(src)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Len())
	assert.Equal(t, 3, p.Depth)

	src[0] = program.Function(program.OpSub)
	assert.Equal(t, add, p.Nodes[0], "New must not alias its input")

	_, err = program.New([]program.Node{add})
	assert.ErrorIs(t, err, program.ErrIncomplete)
}

func TestProgram_CloneIsDeep(t *testing.T) {
	var p, _ = program.New(flat)
	p.RawFitness = 1.25
	p.Metric = program.MetricRMSE
	p.Provenance = program.ProvenanceHoist

	var c = p.Clone()
	assert.Equal(t, p, c)

	c.Nodes[1] = c5
	assert.Equal(t, x0, p.Nodes[1], "mutating the clone must not reach the source")
}

func TestProgram_MoveEmptiesSource(t *testing.T) {
	var p, _ = program.New(skewed)
	p.RawFitness = 3
	var backing = &p.Nodes[0]

	var q = p.Move()
	assert.Equal(t, 6, q.Len())
	assert.Equal(t, 3, q.Depth)
	assert.Equal(t, 3.0, q.RawFitness)
	assert.Same(t, backing, &q.Nodes[0], "Move transfers the buffer without copying")

	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Nodes)
	assert.Equal(t, 0, p.Depth)
	assert.Equal(t, 0.0, p.RawFitness)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "X0", program.Format(leaf))
	assert.Equal(t, "add(X0, X1)", program.Format(flat))
	assert.Equal(t, "add(mul(X0, sin(X1)), 0.5)", program.Format(skewed))
	assert.Equal(t, "sin(sin(sin(X0)))", program.Format(chain))
}

func TestParse_RoundTrip(t *testing.T) {
	for _, nodes := range [][]program.Node{leaf, flat, skewed, chain} {
		var p, err = program.Parse(program.Format(nodes))
		require.NoError(t, err)
		assert.Equal(t, nodes, p.Nodes)
		assert.Equal(t, program.Depth(nodes), p.Depth)
	}

	var p, err = program.Parse("  ADD( x3 ,div(-1.5e-3, Inv(X0)) )")
	require.NoError(t, err)
	assert.Equal(t, []program.Node{
		add, program.Variable(3),
		program.Function(program.OpDiv), program.Constant(-1.5e-3),
		program.Function(program.OpInv), x0,
	}, p.Nodes)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		text string
		want error
	}{
		{"", program.ErrSyntax},
		{"add(X0)", program.ErrSyntax},
		{"add(X0, X1, X2)", program.ErrSyntax},
		{"sin(X0, X1)", program.ErrSyntax},
		{"add X0 X1", program.ErrSyntax},
		{"X0 X1", program.ErrSyntax},
		{"add(X0, X1", program.ErrSyntax},
		{"add(X0, X1))", program.ErrSyntax},
		{"frob(X0)", program.ErrUnknownOp},
		{"add(X0; X1)", program.ErrSyntax},
		{"(X0)", program.ErrSyntax},
	}
	for _, tc := range tests {
		var _, err = program.Parse(tc.text)
		assert.ErrorIs(t, err, tc.want, "text %q", tc.text)
	}
}

func TestOp_Catalog(t *testing.T) {
	var binary, unary int
	for _, op := range program.Ops() {
		switch op.Arity() {
		case 1:
			unary++
		case 2:
			binary++
		default:
			t.Fatalf("op %v has arity %d", op, op.Arity())
		}
		var back, err = program.ParseOp(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, back)
	}
	assert.Equal(t, 9, binary)
	assert.Equal(t, 22, unary)

	assert.False(t, program.Op(200).Valid())
	assert.Equal(t, 0, program.Op(200).Arity())
	_, err := program.ParseOp("nope")
	assert.ErrorIs(t, err, program.ErrUnknownOp)
}

func TestMetric_ParseAndCriterion(t *testing.T) {
	tests := []struct {
		name      string
		metric    program.Metric
		criterion int
	}{
		{"mse", program.MetricMSE, 0},
		{"MAE", program.MetricMAE, 0},
		{"rmse", program.MetricRMSE, 0},
		{"pearson", program.MetricPearson, 1},
		{"spearman", program.MetricSpearman, 1},
		{"logloss", program.MetricLogLoss, 0},
	}
	for _, tc := range tests {
		var m, err = program.ParseMetric(tc.name)
		require.NoError(t, err)
		assert.Equal(t, tc.metric, m)
		assert.Equal(t, tc.criterion, m.Criterion())
	}
	_, err := program.ParseMetric("r2")
	assert.ErrorIs(t, err, program.ErrUnknownMetric)
}

func TestNode_Accessors(t *testing.T) {
	assert.True(t, add.IsNonterminal())
	assert.False(t, add.IsTerminal())
	assert.Equal(t, 2, add.Arity())
	assert.Equal(t, 1, sin.Arity())
	assert.Equal(t, 0, x1.Arity())
	assert.Equal(t, 1, x1.Feature())
	assert.Equal(t, 0.5, c5.Value())
	assert.Equal(t, program.KindConstant, c5.Kind())
	assert.Equal(t, "X1", x1.String())
	assert.Equal(t, "invalid", program.Node{}.Kind().String())
}
