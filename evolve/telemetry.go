// SPDX-License-Identifier: MIT

package evolve

import (
	"context"
	"time"

	"github.com/katalvlaran/lvgp/program"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("lvgp.evolve")

var (
	// generationsTotal counts completed generations across all runs.
	generationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lvgp_generations_total",
		Help: "Total generations evaluated",
	})

	// offspringTotal counts bred programs by the operator that produced them.
	offspringTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvgp_offspring_total",
		Help: "Total offspring bred, by operator",
	}, []string{"operator"})

	// generationDuration tracks evaluate+breed latency of one generation.
	generationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvgp_generation_duration_seconds",
		Help:    "Wall time of one generation in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4min
	})

	// bestRawFitness is the best raw fitness of the latest generation.
	bestRawFitness = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lvgp_best_raw_fitness",
		Help: "Best raw fitness in the most recent generation",
	})

	// avgProgramLength is the mean node count of the latest generation.
	avgProgramLength = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lvgp_avg_program_length",
		Help: "Mean program length in the most recent generation",
	})
)

// recordGeneration publishes one generation's statistics.
func recordGeneration(g Generation, elapsed time.Duration) {
	generationsTotal.Inc()
	generationDuration.Observe(elapsed.Seconds())
	bestRawFitness.Set(g.BestRawFitness)
	avgProgramLength.Set(g.AvgLength)
}

// recordOffspring counts a bred generation by provenance.
func recordOffspring(pop []program.Program) {
	var counts = make(map[program.Provenance]int, 5)
	for i := range pop {
		counts[pop[i].Provenance]++
	}
	for prov, n := range counts {
		offspringTotal.WithLabelValues(prov.String()).Add(float64(n))
	}
}

func startRunSpan(ctx context.Context, runID string, o Options) (context.Context, trace.Span) {
	return tracer.Start(ctx, "evolve.Run",
		trace.WithAttributes(
			attribute.String("lvgp.run_id", runID),
			attribute.Int("lvgp.population", o.PopulationSize),
			attribute.Int("lvgp.generations", o.Generations),
			attribute.Int64("lvgp.seed", int64(o.Seed)),
		),
	)
}

func startGenerationSpan(ctx context.Context, gen int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "evolve.Generation",
		trace.WithAttributes(attribute.Int("lvgp.generation", gen)),
	)
}

// endSpan finishes span with err's status.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
