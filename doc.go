// Package lvgp is an in-memory genetic-programming engine for symbolic
// regression: it evolves arithmetic expression programs that fit a target
// column of numeric data.
//
// What is in the box?
//
//	A deterministic, parallel, seed-reproducible GP loop built from small
//	packages that can be used on their own:
//		• Programs: prefix-encoded trees, parse/format, structural queries
//		• Variation: ramped half-and-half init, crossover, subtree/hoist/point mutation
//		• Evaluation: protected operators, stack kernel, batched worker pool
//		• Fitness: weighted MSE/MAE/RMSE/log-loss, Pearson, Spearman, parsimony
//		• Evolution: tournament selection, stopping criteria, metrics & traces
//
// Packages:
//
//	program/  — Node, Op, Metric and Program types; Validate, Depth, Parse, Format
//	rng/      — seedable, derivable random streams
//	genetic/  — Params, Build, Crossover, SubtreeMutation, HoistMutation, PointMutation
//	dataset/  — column-major Frame and CSV loading
//	eval/     — Apply, Evaluate, Execute, ExecuteBatch, Predict
//	fitness/  — Score, Penalized, Better, SetBatched
//	evolve/   — Options and Run
//	config/   — YAML run configuration
//	cmd/lvgp/ — the command-line front end
//
// Quick example:
//
//	add(X0, mul(X1, 0.5))
//
//	is stored as [add, X0, mul, X1, 0.5] and evaluates to X0 + X1/2 per row.
//
//	go install github.com/katalvlaran/lvgp/cmd/lvgp@latest
package lvgp
