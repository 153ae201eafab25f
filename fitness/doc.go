// SPDX-License-Identifier: MIT

// Package fitness scores predictions and turns raw scores into the
// parsimony-penalized fitness used for selection.
//
// ✨ Metrics (weighted, batched over programs):
//   - mse, mae, rmse         — errors, smaller is better (criterion 0).
//   - pearson, spearman      — |correlation|, larger is better (criterion 1).
//   - logloss                — binary cross-entropy of sigmoid(pred), smaller is better.
//
// Weight policy:
//   - nil weights mean uniform weights.
//   - Zero total weight: error metrics fall back to uniform weights,
//     correlation metrics score 0.
//   - A correlation that is not finite (e.g. a constant prediction) scores 0.
//
// Penalized fitness:
//
//	fitness = raw − parsimony × len × (2×criterion − 1)
//
// so longer programs always look worse, whichever way the metric points.
package fitness
