// SPDX-License-Identifier: MIT

package eval_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvgp/dataset"
	"github.com/katalvlaran/lvgp/eval"
	"github.com/katalvlaran/lvgp/genetic"
	"github.com/katalvlaran/lvgp/rng"
	"github.com/stretchr/testify/require"
)

func benchInputs(b *testing.B) (*dataset.Frame, []float64) {
	b.Helper()
	const rows, cols = 1024, 4
	var r = rng.New(1)
	var columns = make([][]float64, cols)
	for j := range columns {
		columns[j] = make([]float64, rows)
		for i := range columns[j] {
			columns[j][i] = r.Uniform(-5, 5)
		}
	}
	X, err := dataset.FromColumns(columns)
	require.NoError(b, err)
	return X, make([]float64, 256*rows)
}

func BenchmarkExecute(b *testing.B) {
	var p = genetic.DefaultParams()
	p.NumFeatures = 4
	var progs = genetic.BuildPopulation(p, rng.New(2), 256)
	X, out := benchInputs(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := eval.Execute(progs, X, out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExecuteBatch(b *testing.B) {
	var p = genetic.DefaultParams()
	p.NumFeatures = 4
	var progs = genetic.BuildPopulation(p, rng.New(2), 256)
	X, out := benchInputs(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := eval.ExecuteBatch(context.Background(), progs, X, out, 0); err != nil {
			b.Fatal(err)
		}
	}
}
