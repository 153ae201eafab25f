// SPDX-License-Identifier: MIT

package evolve

import (
	"fmt"
	"log/slog"
	"math"
)

// Defaults (single source of truth for DefaultOptions).
const (
	DefaultPopulationSize   = 1000
	DefaultGenerations      = 20
	DefaultTournamentSize   = 20
	DefaultStoppingCriteria = 0.0
	DefaultPCrossover       = 0.9
	DefaultPSubtreeMutation = 0.01
	DefaultPHoistMutation   = 0.01
	DefaultPPointMutation   = 0.01
	DefaultSeed             = 1
)

// Options configures Run.
//
// Operator mix: for every offspring one uniform u is drawn and compared
// against the cumulative thresholds
//
//	PCrossover | +PSubtreeMutation | +PHoistMutation | +PPointMutation | rest → reproduction
//
// so the four probabilities must sum to at most 1.
type Options struct {
	PopulationSize int
	Generations    int
	TournamentSize int

	// StoppingCriteria ends the run once the best raw fitness reaches it
	// (≤ for minimized metrics, ≥ for maximized ones).
	StoppingCriteria float64

	PCrossover       float64
	PSubtreeMutation float64
	PHoistMutation   float64
	PPointMutation   float64

	// Seed feeds rng.New; every generation and offspring derives its own stream.
	Seed uint64

	// Workers bounds evaluation and breeding goroutines (≤0 means GOMAXPROCS).
	// Results do not depend on it.
	Workers int

	// Weights are optional per-row sample weights (nil = uniform).
	Weights []float64

	// Logger receives one Info line per generation. nil discards.
	Logger *slog.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		PopulationSize:   DefaultPopulationSize,
		Generations:      DefaultGenerations,
		TournamentSize:   DefaultTournamentSize,
		StoppingCriteria: DefaultStoppingCriteria,
		PCrossover:       DefaultPCrossover,
		PSubtreeMutation: DefaultPSubtreeMutation,
		PHoistMutation:   DefaultPHoistMutation,
		PPointMutation:   DefaultPPointMutation,
		Seed:             DefaultSeed,
	}
}

// Validate returns the first violated constraint, wrapped with context.
func (o Options) Validate() error {
	if o.PopulationSize < 2 {
		return fmt.Errorf("PopulationSize=%d: %w", o.PopulationSize, ErrBadPopulation)
	}
	if o.Generations < 1 {
		return fmt.Errorf("Generations=%d: %w", o.Generations, ErrBadGenerations)
	}
	if o.TournamentSize < 1 || o.TournamentSize > o.PopulationSize {
		return fmt.Errorf("TournamentSize=%d PopulationSize=%d: %w", o.TournamentSize, o.PopulationSize, ErrBadTournament)
	}
	if math.IsNaN(o.StoppingCriteria) {
		return ErrBadStopping
	}
	var sum float64
	for _, p := range []float64{o.PCrossover, o.PSubtreeMutation, o.PHoistMutation, o.PPointMutation} {
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("probability %g: %w", p, ErrBadProbabilities)
		}
		sum += p
	}
	if sum > 1+1e-12 {
		return fmt.Errorf("operator probabilities sum to %g: %w", sum, ErrBadProbabilities)
	}
	return nil
}

// logger returns o.Logger or a logger that discards everything.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
