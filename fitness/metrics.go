// SPDX-License-Identifier: MIT

package fitness

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvgp/program"
)

// Log-loss clipping bounds keep log() finite.
const (
	probMin = 1e-15
	probMax = 1 - 1e-15
)

// Score computes metric for nProgs prediction rows against y.
//
// Layout: yPred[p*nRows:(p+1)*nRows] are program p's predictions; y and w
// (if non-nil) have nRows entries. Returns one score per program.
//
// Errors: ErrNoRows, ErrLengthMismatch, ErrBadWeight, ErrUnknownMetric.
// Complexity: O(nProgs × nRows), spearman O(nProgs × nRows log nRows).
func Score(metric program.Metric, nRows, nProgs int, y, yPred, w []float64) ([]float64, error) {
	if nRows <= 0 || nProgs < 0 {
		return nil, fmt.Errorf("Score(rows=%d, progs=%d): %w", nRows, nProgs, ErrNoRows)
	}
	if len(y) != nRows || len(yPred) != nRows*nProgs || (w != nil && len(w) != nRows) {
		return nil, fmt.Errorf("Score: len(y)=%d len(yPred)=%d len(w)=%d for %d×%d: %w",
			len(y), len(yPred), len(w), nProgs, nRows, ErrLengthMismatch)
	}
	if !metric.Valid() {
		return nil, fmt.Errorf("Score(%v): %w", metric, ErrUnknownMetric)
	}
	var total, err = weightTotal(w)
	if err != nil {
		return nil, err
	}

	var (
		scores = make([]float64, nProgs)
		uw     = w
	)
	if w == nil || total == 0 {
		uw = uniform(nRows)
	}

	var yRank []float64
	if metric == program.MetricSpearman {
		yRank = ranks(y)
	}

	for p := range scores {
		var pred = yPred[p*nRows : (p+1)*nRows]
		switch metric {
		case program.MetricMSE:
			scores[p] = meanSquaredError(y, pred, uw)
		case program.MetricRMSE:
			scores[p] = math.Sqrt(meanSquaredError(y, pred, uw))
		case program.MetricMAE:
			scores[p] = meanAbsoluteError(y, pred, uw)
		case program.MetricLogLoss:
			scores[p] = logLoss(y, pred, uw)
		case program.MetricPearson:
			if w != nil && total == 0 {
				continue
			}
			scores[p] = pearson(y, pred, uw)
		case program.MetricSpearman:
			if w != nil && total == 0 {
				continue
			}
			scores[p] = pearson(yRank, ranks(pred), uw)
		}
	}
	return scores, nil
}

// weightTotal sums w, rejecting negative or non-finite entries. nil sums to 0.
func weightTotal(w []float64) (float64, error) {
	var total float64
	for i, v := range w {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("Score: w[%d]=%g: %w", i, v, ErrBadWeight)
		}
		total += v
	}
	return total, nil
}

func uniform(n int) []float64 {
	var w = make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

func meanSquaredError(y, pred, w []float64) float64 {
	var num, den float64
	for i := range y {
		var d = pred[i] - y[i]
		num += w[i] * d * d
		den += w[i]
	}
	return num / den
}

func meanAbsoluteError(y, pred, w []float64) float64 {
	var num, den float64
	for i := range y {
		num += w[i] * math.Abs(pred[i]-y[i])
		den += w[i]
	}
	return num / den
}

// logLoss is the weighted binary cross-entropy of sigmoid(pred) against y ∈ {0,1}.
func logLoss(y, pred, w []float64) float64 {
	var num, den float64
	for i := range y {
		var prob = min(max(1/(1+math.Exp(-pred[i])), probMin), probMax)
		num -= w[i] * (y[i]*math.Log(prob) + (1-y[i])*math.Log(1-prob))
		den += w[i]
	}
	return num / den
}

// pearson returns |weighted correlation|, or 0 when it is undefined.
func pearson(x, y, w []float64) float64 {
	var sw, mx, my float64
	for i := range x {
		sw += w[i]
		mx += w[i] * x[i]
		my += w[i] * y[i]
	}
	mx /= sw
	my /= sw

	var cov, vx, vy float64
	for i := range x {
		var dx, dy = x[i] - mx, y[i] - my
		cov += w[i] * dx * dy
		vx += w[i] * dx * dx
		vy += w[i] * dy * dy
	}
	var r = math.Abs(cov / math.Sqrt(vx*vy))
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// ranks returns 1-based ranks of v; tied values share their average rank.
// Complexity: O(n log n).
func ranks(v []float64) []float64 {
	var idx = make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(v[a], v[b]) })

	var out = make([]float64, len(v))
	for lo := 0; lo < len(idx); {
		var hi = lo + 1
		for hi < len(idx) && v[idx[hi]] == v[idx[lo]] {
			hi++
		}
		// positions lo..hi-1 hold one value; ranks lo+1..hi average to (lo+hi+1)/2.
		var avg = float64(lo+hi+1) / 2
		for k := lo; k < hi; k++ {
			out[idx[k]] = avg
		}
		lo = hi
	}
	return out
}
