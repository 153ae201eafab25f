// SPDX-License-Identifier: MIT

package evolve

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvgp/eval"
	"github.com/katalvlaran/lvgp/fitness"
	"github.com/katalvlaran/lvgp/genetic"
	"github.com/katalvlaran/lvgp/program"
	"github.com/katalvlaran/lvgp/rng"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// Generation summarizes one evaluated population.
type Generation struct {
	Index          int
	BestRawFitness float64
	BestLength     int
	AvgRawFitness  float64
	AvgLength      float64
	AvgDepth       float64
	Duration       time.Duration
}

// Result is what Run returns: the best program of the last evaluated
// generation, the per-generation history and that final population.
type Result struct {
	RunID      string
	Best       program.Program
	History    []Generation
	Population []program.Program
}

// Run evolves a population against (X, y).
//
// Loop, per generation g:
//  1. Evaluate every program (fitness.SetBatched, errgroup pool).
//  2. Summarize; stop after the last generation or once the best raw
//     fitness reaches StoppingCriteria.
//  3. Breed the next population: offspring i draws everything from
//     rng.New(Seed).Derive(g+1).Derive(i), so the run is bit-identical for
//     any Workers value. Parents are picked by tournament on penalized fitness.
//
// Generation 0 is BuildPopulation over rng.New(Seed).Derive(0).
//
// Errors: Params/Options validation, ErrNoData, ErrFeatureMismatch, anything
// from evaluation or scoring, and ctx.Err() on cancellation.
func Run(ctx context.Context, params genetic.Params, opts Options, X eval.Columns, y []float64) (res *Result, err error) {
	if err = params.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if err = opts.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if X == nil || len(y) == 0 {
		return nil, fmt.Errorf("Run: %w", ErrNoData)
	}
	if params.NumFeatures > X.Cols() {
		return nil, fmt.Errorf("Run: NumFeatures=%d columns=%d: %w", params.NumFeatures, X.Cols(), ErrFeatureMismatch)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	var (
		runID = uuid.NewString()
		log   = opts.logger().With(slog.String("run_id", runID))
		base  = rng.New(opts.Seed)
		pop   = genetic.BuildPopulation(params, base.Derive(0), opts.PopulationSize)
	)
	res = &Result{RunID: runID, History: make([]Generation, 0, opts.Generations)}

	ctx, span := startRunSpan(ctx, runID, opts)
	defer func() { endSpan(span, err) }()

	log.Info("evolution started",
		slog.Int("population", opts.PopulationSize),
		slog.Int("generations", opts.Generations),
		slog.String("metric", params.Metric.String()),
		slog.Uint64("seed", opts.Seed))

	for gen := 0; ; gen++ {
		var (
			start     = time.Now()
			gctx, gsp = startGenerationSpan(ctx, gen)
		)
		if err = fitness.SetBatched(gctx, pop, X, y, opts.Weights, params.Metric, opts.Workers); err != nil {
			endSpan(gsp, err)
			return nil, fmt.Errorf("Run: generation %d: %w", gen, err)
		}

		var summary, top = summarize(pop, params.Metric)
		summary.Index = gen

		var done = gen == opts.Generations-1 || reached(params.Metric, summary.BestRawFitness, opts.StoppingCriteria)
		var next []program.Program
		if !done {
			if next, err = breed(gctx, pop, params, opts, base.Derive(uint64(gen+1))); err != nil {
				endSpan(gsp, err)
				return nil, fmt.Errorf("Run: generation %d: %w", gen, err)
			}
			recordOffspring(next)
		}

		summary.Duration = time.Since(start)
		res.History = append(res.History, summary)
		recordGeneration(summary, summary.Duration)
		gsp.SetAttributes(
			attribute.Float64("lvgp.best_raw_fitness", summary.BestRawFitness),
			attribute.Float64("lvgp.avg_length", summary.AvgLength),
		)
		endSpan(gsp, nil)
		log.Info("generation",
			slog.Int("generation", gen),
			slog.Float64("best_raw_fitness", summary.BestRawFitness),
			slog.Int("best_length", summary.BestLength),
			slog.Float64("avg_raw_fitness", summary.AvgRawFitness),
			slog.Float64("avg_length", summary.AvgLength),
			slog.Float64("avg_depth", summary.AvgDepth),
			slog.Duration("duration", summary.Duration))

		if done {
			res.Best = pop[top].Clone()
			res.Population = pop
			log.Info("evolution finished",
				slog.Int("generations", gen+1),
				slog.String("best", res.Best.String()),
				slog.Float64("best_raw_fitness", res.Best.RawFitness))
			return res, nil
		}
		pop = next
	}
}

// breed produces the next population in parallel; offspring i depends only
// on (pop, stream.Derive(i)).
func breed(ctx context.Context, pop []program.Program, params genetic.Params, opts Options, stream *rng.Stream) ([]program.Program, error) {
	var (
		next = make([]program.Program, len(pop))
		pen  = make([]float64, len(pop))
	)
	for i := range pop {
		pen[i] = fitness.Penalized(pop[i], params.ParsimonyCoefficient)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range next {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			next[i] = offspring(pop, pen, params, opts, stream.Derive(uint64(i)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return next, ctx.Err()
}

// offspring draws one child.
// Draw order: parent tournament, operator u, then the operator's own draws
// (crossover runs a second tournament for the donor first).
func offspring(pop []program.Program, pen []float64, params genetic.Params, opts Options, r rng.Source) program.Program {
	var (
		parent = pop[tournament(pen, params.Metric, opts.TournamentSize, r)]
		u      = r.Float64()
		edge   = opts.PCrossover
	)
	if u < edge {
		var donor = pop[tournament(pen, params.Metric, opts.TournamentSize, r)]
		return genetic.Crossover(parent, donor, params, r)
	}
	if edge += opts.PSubtreeMutation; u < edge {
		return genetic.SubtreeMutation(parent, params, r)
	}
	if edge += opts.PHoistMutation; u < edge {
		return genetic.HoistMutation(parent, params, r)
	}
	if edge += opts.PPointMutation; u < edge {
		return genetic.PointMutation(parent, params, r)
	}
	var child = parent.Clone()
	child.Provenance = program.ProvenanceReproduction
	return child
}

// tournament draws k contestants uniformly with replacement and returns the
// index of the best penalized fitness (earliest drawn wins ties).
// Complexity: O(k).
func tournament(pen []float64, m program.Metric, k int, r rng.Source) int {
	var best = r.IntRange(0, len(pen)-1)
	for i := 1; i < k; i++ {
		var c = r.IntRange(0, len(pen)-1)
		if fitness.Better(m, pen[c], pen[best]) {
			best = c
		}
	}
	return best
}

// summarize returns generation statistics and the index of the best raw
// fitness (first wins ties).
func summarize(pop []program.Program, m program.Metric) (Generation, int) {
	var (
		g    Generation
		best int
	)
	for i := range pop {
		g.AvgRawFitness += pop[i].RawFitness
		g.AvgLength += float64(pop[i].Len())
		g.AvgDepth += float64(pop[i].Depth)
		if fitness.Better(m, pop[i].RawFitness, pop[best].RawFitness) {
			best = i
		}
	}
	var n = float64(len(pop))
	g.AvgRawFitness /= n
	g.AvgLength /= n
	g.AvgDepth /= n
	g.BestRawFitness = pop[best].RawFitness
	g.BestLength = pop[best].Len()
	return g, best
}

// reached reports whether best satisfies the stopping criterion.
func reached(m program.Metric, best, criterion float64) bool {
	if m.Criterion() == 1 {
		return best >= criterion
	}
	return best <= criterion
}
