// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvgp/config"
	"github.com/katalvlaran/lvgp/evolve"
	"github.com/katalvlaran/lvgp/genetic"
	"github.com/katalvlaran/lvgp/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesEngineDefaults(t *testing.T) {
	var cfg = config.Default()
	require.NoError(t, cfg.Validate())

	p, err := cfg.Params(3)
	require.NoError(t, err)
	var want = genetic.DefaultParams()
	want.NumFeatures = 3
	assert.Equal(t, want, p)

	var o = cfg.Options()
	assert.Equal(t, evolve.DefaultOptions(), o)
}

func TestDefault_YAMLRoundTrip(t *testing.T) {
	data, err := config.Marshal(config.Default())
	require.NoError(t, err)

	cfg, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_OverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := config.Parse([]byte(`
engine:
  function_set: [add, mul, sin]
  init_method: grow
  metric: pearson
evolution:
  population_size: 50
  tournament_size: 7
  seed: 99
data:
  path: train.csv
  target: y
  delimiter: ";"
`))
	require.NoError(t, err)

	p, err := cfg.Params(2)
	require.NoError(t, err)
	assert.Equal(t, []program.Op{program.OpAdd, program.OpMul, program.OpSin}, p.FunctionSet)
	assert.Equal(t, genetic.Grow, p.InitMethod)
	assert.Equal(t, program.MetricPearson, p.Metric)
	assert.Equal(t, genetic.DefaultMaxDepth, p.MaxDepth)

	var o = cfg.Options()
	assert.Equal(t, 50, o.PopulationSize)
	assert.Equal(t, 7, o.TournamentSize)
	assert.Equal(t, uint64(99), o.Seed)
	assert.Equal(t, evolve.DefaultGenerations, o.Generations)

	var csv = cfg.CSVOptions()
	assert.Equal(t, ';', csv.Comma)
	assert.Equal(t, "y", csv.Target)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"unknown key", "engine:\n  colour: red\n", config.ErrRead},
		{"bad yaml", "engine: [\n", config.ErrRead},
		{"unknown op", "engine:\n  function_set: [add, frobnicate]\n", config.ErrInvalid},
		{"empty function set", "engine:\n  function_set: []\n", config.ErrInvalid},
		{"bad metric", "engine:\n  metric: r2\n", config.ErrInvalid},
		{"bad method", "engine:\n  init_method: ramped\n", config.ErrInvalid},
		{"probability", "engine:\n  terminal_ratio: 2\n", config.ErrInvalid},
		{"init depth shape", "engine:\n  init_depth: [3]\n", config.ErrInvalid},
		{"init depth past bound", "engine:\n  init_depth: [2, 30]\n", config.ErrInvalid},
		{"tournament > population", "evolution:\n  population_size: 10\n  tournament_size: 11\n", config.ErrInvalid},
		{"operator sum", "evolution:\n  p_crossover: 0.9\n  p_hoist_mutation: 0.5\n", config.ErrInvalid},
		{"log format", "log:\n  format: xml\n", config.ErrInvalid},
		{"delimiter", "data:\n  delimiter: ';;'\n", config.ErrInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("evolution:\n  generations: 3\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Evolution.Generations)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrRead)
}
