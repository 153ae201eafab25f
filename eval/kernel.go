// SPDX-License-Identifier: MIT

package eval

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/lvgp/program"
	"golang.org/x/sync/errgroup"
)

// Columns is the column-major data contract: Column(f) is feature f over
// all Rows() rows, contiguous. *dataset.Frame satisfies it.
type Columns interface {
	Rows() int
	Cols() int
	Column(f int) []float64
}

// Evaluate runs one program over every row of X with fn and writes the
// predictions into dst (len(dst) == X.Rows()).
//
// Algorithm (stack machine over the prefix layout, scanned last → first):
//   - Constant: push a row buffer filled with the value.
//   - Variable(f): push a copy of X.Column(f).
//   - Function of arity a: pop a buffers (first pop = first operand), apply fn
//     row by row into the first buffer, push it back.
//
// Scanning backwards over preorder visits every operand before the function
// consuming it. Row buffers are recycled through a free list, so a program
// allocates at most one buffer per simultaneously live stack slot.
// Complexity: O(len × rows) time, O(depth × rows) scratch.
func Evaluate(prog program.Program, X Columns, dst []float64, fn NodeFunc) error {
	if err := checkProgram(prog, X); err != nil {
		return err
	}
	var rows = X.Rows()
	if len(dst) != rows {
		return fmt.Errorf("Evaluate: len(dst)=%d rows=%d: %w", len(dst), rows, ErrOutputSize)
	}
	run(prog.Nodes, X, dst, fn)
	return nil
}

// run is Evaluate without the boundary checks.
func run(nodes []program.Node, X Columns, dst []float64, fn NodeFunc) {
	var (
		rows  = X.Rows()
		stack = make([][]float64, 0, len(nodes))
		free  [][]float64
	)
	var take = func() []float64 {
		if n := len(free); n > 0 {
			var b = free[n-1]
			free = free[:n-1]
			return b
		}
		return make([]float64, rows)
	}

	for i := len(nodes) - 1; i >= 0; i-- {
		var n = nodes[i]
		switch n.Kind() {
		case program.KindConstant:
			var b, v = take(), n.Value()
			for r := range b {
				b[r] = v
			}
			stack = append(stack, b)
		case program.KindVariable:
			var b = take()
			copy(b, X.Column(n.Feature()))
			stack = append(stack, b)
		default:
			var (
				op    = n.Op()
				top   = len(stack) - 1
				first = stack[top]
			)
			if n.Arity() == 1 {
				for r := range first {
					first[r] = fn(op, first[r], 0)
				}
				continue
			}
			var second = stack[top-1]
			for r := range first {
				first[r] = fn(op, first[r], second[r])
			}
			stack[top-1] = first
			stack = stack[:top]
			free = append(free, second)
		}
	}
	if len(stack) != 1 {
		panic(fmt.Sprintf("eval: %d values left on the stack; program is not a complete tree", len(stack)))
	}
	copy(dst, stack[0])
}

// Execute evaluates every program with Apply, sequentially. out is laid out
// by program: out[p*rows:(p+1)*rows] holds program p's predictions.
//
// Errors: ErrNilData, ErrNoRows, ErrOutputSize, ErrEmptyProgram, ErrFeatureRange.
// Complexity: O(Σ len × rows).
func Execute(progs []program.Program, X Columns, out []float64) error {
	var rows, err = checkBatch(progs, X, out)
	if err != nil {
		return err
	}
	for p := range progs {
		run(progs[p].Nodes, X, out[p*rows:(p+1)*rows], Apply)
	}
	return nil
}

// ExecuteBatch is Execute fanned out over at most workers goroutines
// (workers ≤ 0 means GOMAXPROCS). Programs share no state; each task writes
// its own disjoint region of out, so the result equals Execute's for any
// worker count. Cancellation is checked before each program starts.
func ExecuteBatch(ctx context.Context, progs []program.Program, X Columns, out []float64, workers int) error {
	var rows, err = checkBatch(progs, X, out)
	if err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for p := range progs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			run(progs[p].Nodes, X, out[p*rows:(p+1)*rows], Apply)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("ExecuteBatch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("ExecuteBatch: %w", err)
	}
	return nil
}

// Predict returns one program's predictions in a fresh slice.
func Predict(prog program.Program, X Columns) ([]float64, error) {
	if X == nil {
		return nil, fmt.Errorf("Predict: %w", ErrNilData)
	}
	var out = make([]float64, X.Rows())
	if err := Evaluate(prog, X, out, Apply); err != nil {
		return nil, err
	}
	return out, nil
}

func checkBatch(progs []program.Program, X Columns, out []float64) (int, error) {
	if X == nil {
		return 0, ErrNilData
	}
	var rows = X.Rows()
	if rows <= 0 {
		return 0, ErrNoRows
	}
	if len(out) != len(progs)*rows {
		return 0, fmt.Errorf("len(out)=%d want %d×%d: %w", len(out), len(progs), rows, ErrOutputSize)
	}
	for p := range progs {
		if err := checkProgram(progs[p], X); err != nil {
			return 0, fmt.Errorf("program %d: %w", p, err)
		}
	}
	return rows, nil
}

// checkProgram verifies what the kernel cannot survive: an empty program or
// a variable naming a missing column. Structural completeness is a
// precondition and is not rescanned here.
func checkProgram(prog program.Program, X Columns) error {
	if X == nil {
		return ErrNilData
	}
	if X.Rows() <= 0 {
		return ErrNoRows
	}
	if len(prog.Nodes) == 0 {
		return ErrEmptyProgram
	}
	var cols = X.Cols()
	for i, n := range prog.Nodes {
		if n.Kind() == program.KindVariable && n.Feature() >= cols {
			return fmt.Errorf("node %d X%d with %d columns: %w", i, n.Feature(), cols, ErrFeatureRange)
		}
	}
	return nil
}
