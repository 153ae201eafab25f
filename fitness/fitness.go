// SPDX-License-Identifier: MIT

package fitness

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvgp/eval"
	"github.com/katalvlaran/lvgp/program"
)

// Penalized returns raw − parsimony × len × (2×criterion − 1) for the
// program's own metric: the penalty is subtracted from maximized scores and
// added to minimized ones.
// Complexity: O(1).
func Penalized(prog program.Program, parsimony float64) float64 {
	var sign = float64(2*prog.Metric.Criterion() - 1)
	return prog.RawFitness - parsimony*float64(prog.Len())*sign
}

// Better reports whether penalized fitness a beats b under metric m.
func Better(m program.Metric, a, b float64) bool {
	if m.Criterion() == 1 {
		return a > b
	}
	return a < b
}

// SetBatched evaluates progs over X (errgroup pool of workers, ≤0 means
// GOMAXPROCS), scores them against y with metric and writes RawFitness and
// Metric on every program. Nothing else is touched.
//
// Errors: anything from eval.ExecuteBatch or Score.
// Complexity: O(Σ len × rows).
func SetBatched(ctx context.Context, progs []program.Program, X eval.Columns, y, w []float64, metric program.Metric, workers int) error {
	if X == nil {
		return fmt.Errorf("SetBatched: %w", eval.ErrNilData)
	}
	var (
		rows = X.Rows()
		pred = make([]float64, len(progs)*rows)
	)
	if err := eval.ExecuteBatch(ctx, progs, X, pred, workers); err != nil {
		return fmt.Errorf("SetBatched: %w", err)
	}
	scores, err := Score(metric, rows, len(progs), y, pred, w)
	if err != nil {
		return fmt.Errorf("SetBatched: %w", err)
	}
	for p := range progs {
		progs[p].RawFitness = scores[p]
		progs[p].Metric = metric
	}
	return nil
}
