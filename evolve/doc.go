// SPDX-License-Identifier: MIT

// Package evolve runs the generational loop around the engine: build a
// population, score it, select parents by tournament and breed the next
// generation with the genetic operators.
//
// ⚙️ Usage:
//
//	params := genetic.DefaultParams()
//	params.NumFeatures = table.X.Cols()
//	opts := evolve.DefaultOptions()
//	opts.Logger = logger
//	res, err := evolve.Run(ctx, params, opts, table.X, table.Y)
//
// Reproducibility:
//
//	Every generation and every offspring draw from their own stream derived
//	from Options.Seed, so a run is bit-identical for any Workers value.
//	RunID (a UUID) is the only part of a Result that differs between runs.
//
// Observability:
//   - slog: one line per generation on Options.Logger.
//   - Prometheus (default registry): lvgp_generations_total,
//     lvgp_offspring_total{operator}, lvgp_generation_duration_seconds,
//     lvgp_best_raw_fitness, lvgp_avg_program_length.
//   - OpenTelemetry: an "evolve.Run" span with one "evolve.Generation"
//     child per generation, on the global tracer provider.
package evolve
