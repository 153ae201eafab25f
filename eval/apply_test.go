// SPDX-License-Identifier: MIT

package eval_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvgp/eval"
	"github.com/katalvlaran/lvgp/program"
	"github.com/stretchr/testify/assert"
)

func TestApply_Protected(t *testing.T) {
	tests := []struct {
		name string
		op   program.Op
		a, b float64
		want float64
	}{
		{"div", program.OpDiv, 6, 3, 2},
		{"div by ~0", program.OpDiv, 6, 0.0005, 1},
		{"inv", program.OpInv, 4, 0, 0.25},
		{"inv of ~0", program.OpInv, 1e-9, 0, 0},
		{"log of negative", program.OpLog, -math.E, 0, 1},
		{"log of ~0", program.OpLog, 0, 0, 0},
		{"sqrt of negative", program.OpSqrt, -9, 0, 3},
		{"rsqrt", program.OpRsqrt, -4, 0, 0.5},
		{"rsqrt of ~0", program.OpRsqrt, 0, 0, 0},
		{"acos out of domain", program.OpAcos, 2, 0, 0},
		{"asin out of domain", program.OpAsin, -2, 0, 0},
		{"acosh below 1", program.OpAcosh, 0.5, 0, 0},
		{"atanh at 1", program.OpAtanh, 1, 0, 0},
		{"exp overflow", program.OpExp, 1000, 0, 0},
		{"pow overflow", program.OpPow, 10, 400, 0},
		{"pow nan", program.OpPow, -8, 1.0 / 3, 0},
		{"cosh overflow", program.OpCosh, 1000, 0, 0},
		{"sinh overflow", program.OpSinh, -1000, 0, 0},
		{"fdim", program.OpFdim, 1, 3, 0},
		{"atan2", program.OpAtan2, 1, 1, math.Pi / 4},
		{"cube", program.OpCube, -2, 0, -8},
		{"neg", program.OpNeg, 2, 0, -2},
		{"unknown op", program.Op(250), 1, 1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, eval.Apply(tc.op, tc.a, tc.b), 1e-12)
		})
	}
}

// TestApply_Total: every catalog operator stays finite on awkward inputs.
func TestApply_Total(t *testing.T) {
	var inputs = []float64{0, -0.0, 1e-300, -1, 1, 0.9999, -1e308, 1e308, 700, -700}
	for _, op := range program.Ops() {
		for _, a := range inputs {
			for _, b := range inputs {
				var v = eval.Apply(op, a, b)
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s(%g, %g) = %g", op, a, b, v)
			}
		}
	}
}
