// SPDX-License-Identifier: MIT

// Package config loads an lvgp run description from YAML and turns it into
// genetic.Params and evolve.Options.
//
// Keys absent from the file keep their defaults (Default). Unknown keys are
// rejected. Validation runs struct tags first, then the engine's own
// Params.Validate and Options.Validate for cross-field rules.
//
// Example file:
//
//	engine:
//	  function_set: [add, sub, mul, div, sin]
//	  init_depth: [2, 6]
//	  metric: mse
//	evolution:
//	  population_size: 500
//	  generations: 30
//	  seed: 7
//	data:
//	  path: train.csv
//	  target: y
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/lvgp/dataset"
	"github.com/katalvlaran/lvgp/evolve"
	"github.com/katalvlaran/lvgp/genetic"
	"github.com/katalvlaran/lvgp/program"
	"gopkg.in/yaml.v3"
)

// Config is the whole run description.
type Config struct {
	Engine    Engine    `yaml:"engine" validate:"required"`
	Evolution Evolution `yaml:"evolution" validate:"required"`
	Data      Data      `yaml:"data"`
	Log       Log       `yaml:"log"`
}

// Engine maps onto genetic.Params (NumFeatures comes from the data).
type Engine struct {
	FunctionSet          []string  `yaml:"function_set" validate:"required,min=1,dive,required"`
	ConstRange           []float64 `yaml:"const_range" validate:"omitempty,len=2"`
	NoConstants          bool      `yaml:"no_constants"`
	InitDepth            []int     `yaml:"init_depth" validate:"len=2,dive,gte=0"`
	InitMethod           string    `yaml:"init_method" validate:"oneof=grow full half_and_half half-and-half"`
	TerminalRatio        float64   `yaml:"terminal_ratio" validate:"gte=0,lte=1"`
	PointReplace         float64   `yaml:"p_point_replace" validate:"gte=0,lte=1"`
	ParsimonyCoefficient float64   `yaml:"parsimony_coefficient" validate:"gte=0"`
	Metric               string    `yaml:"metric" validate:"oneof=mse mae rmse pearson spearman logloss"`
	MaxDepth             int       `yaml:"max_depth" validate:"gte=2"`
}

// Evolution maps onto evolve.Options.
type Evolution struct {
	PopulationSize   int     `yaml:"population_size" validate:"gte=2"`
	Generations      int     `yaml:"generations" validate:"gte=1"`
	TournamentSize   int     `yaml:"tournament_size" validate:"gte=1,ltefield=PopulationSize"`
	StoppingCriteria float64 `yaml:"stopping_criteria"`
	PCrossover       float64 `yaml:"p_crossover" validate:"gte=0,lte=1"`
	PSubtreeMutation float64 `yaml:"p_subtree_mutation" validate:"gte=0,lte=1"`
	PHoistMutation   float64 `yaml:"p_hoist_mutation" validate:"gte=0,lte=1"`
	PPointMutation   float64 `yaml:"p_point_mutation" validate:"gte=0,lte=1"`
	Seed             uint64  `yaml:"seed"`
	Workers          int     `yaml:"workers" validate:"gte=0"`
}

// Data describes the training CSV.
type Data struct {
	Path      string `yaml:"path"`
	Target    string `yaml:"target"`
	Delimiter string `yaml:"delimiter" validate:"omitempty,len=1"`
	NoHeader  bool   `yaml:"no_header"`
}

// Log selects the CLI logger.
type Log struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default mirrors genetic.DefaultParams and evolve.DefaultOptions.
func Default() Config {
	var (
		p   = genetic.DefaultParams()
		o   = evolve.DefaultOptions()
		ops = make([]string, len(p.FunctionSet))
	)
	for i, op := range p.FunctionSet {
		ops[i] = op.String()
	}
	return Config{
		Engine: Engine{
			FunctionSet:          ops,
			ConstRange:           []float64{p.ConstRange[0], p.ConstRange[1]},
			InitDepth:            []int{p.InitDepth[0], p.InitDepth[1]},
			InitMethod:           p.InitMethod.String(),
			TerminalRatio:        p.TerminalRatio,
			PointReplace:         p.PointReplace,
			ParsimonyCoefficient: p.ParsimonyCoefficient,
			Metric:               p.Metric.String(),
			MaxDepth:             p.MaxDepth,
		},
		Evolution: Evolution{
			PopulationSize:   o.PopulationSize,
			Generations:      o.Generations,
			TournamentSize:   o.TournamentSize,
			StoppingCriteria: o.StoppingCriteria,
			PCrossover:       o.PCrossover,
			PSubtreeMutation: o.PSubtreeMutation,
			PHoistMutation:   o.PHoistMutation,
			PPointMutation:   o.PPointMutation,
			Seed:             o.Seed,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load(%q): %w: %w", path, ErrRead, err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	var cfg = Default()
	var dec = yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("Parse: %w: %w", ErrRead, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks struct tags, then the engine's cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	// Feature count is only known once data is loaded; 1 admits every setting.
	p, err := c.Params(1)
	if err != nil {
		return err
	}
	if err = p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err = c.Options().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Params converts the engine section for data with numFeatures columns.
func (c Config) Params(numFeatures int) (genetic.Params, error) {
	var p = genetic.DefaultParams()
	p.FunctionSet = make([]program.Op, 0, len(c.Engine.FunctionSet))
	for _, name := range c.Engine.FunctionSet {
		op, err := program.ParseOp(name)
		if err != nil {
			return genetic.Params{}, fmt.Errorf("%w: function_set: %w", ErrInvalid, err)
		}
		p.FunctionSet = append(p.FunctionSet, op)
	}
	method, err := genetic.ParseInitMethod(c.Engine.InitMethod)
	if err != nil {
		return genetic.Params{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	metric, err := program.ParseMetric(c.Engine.Metric)
	if err != nil {
		return genetic.Params{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	p.NumFeatures = numFeatures
	if len(c.Engine.ConstRange) == 2 {
		p.ConstRange = [2]float64{c.Engine.ConstRange[0], c.Engine.ConstRange[1]}
	}
	p.NoConstants = c.Engine.NoConstants
	if len(c.Engine.InitDepth) == 2 {
		p.InitDepth = [2]int{c.Engine.InitDepth[0], c.Engine.InitDepth[1]}
	}
	p.InitMethod = method
	p.TerminalRatio = c.Engine.TerminalRatio
	p.PointReplace = c.Engine.PointReplace
	p.ParsimonyCoefficient = c.Engine.ParsimonyCoefficient
	p.Metric = metric
	p.MaxDepth = c.Engine.MaxDepth
	return p, nil
}

// Options converts the evolution section. Logger and Weights are left for
// the caller.
func (c Config) Options() evolve.Options {
	var e = c.Evolution
	return evolve.Options{
		PopulationSize:   e.PopulationSize,
		Generations:      e.Generations,
		TournamentSize:   e.TournamentSize,
		StoppingCriteria: e.StoppingCriteria,
		PCrossover:       e.PCrossover,
		PSubtreeMutation: e.PSubtreeMutation,
		PHoistMutation:   e.PHoistMutation,
		PPointMutation:   e.PPointMutation,
		Seed:             e.Seed,
		Workers:          e.Workers,
	}
}

// CSVOptions converts the data section for dataset.LoadCSV.
func (c Config) CSVOptions() dataset.CSVOptions {
	var opts = dataset.CSVOptions{Target: c.Data.Target, NoHeader: c.Data.NoHeader}
	if c.Data.Delimiter != "" {
		opts.Comma = []rune(c.Data.Delimiter)[0]
	}
	return opts
}
