// SPDX-License-Identifier: MIT

package genetic

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvgp/program"
)

// InitMethod selects the tree shape policy used by Build.
//
//   - Grow        — each non-root position becomes a terminal with probability
//     TerminalRatio, or when the target depth is reached. Ragged trees.
//   - Full        — functions until the target depth, terminals exactly there.
//   - HalfAndHalf — a fair coin picks Grow or Full per tree.
type InitMethod uint8

const (
	Grow InitMethod = iota
	Full
	HalfAndHalf
)

var initMethodNames = [...]string{
	Grow:        "grow",
	Full:        "full",
	HalfAndHalf: "half_and_half",
}

// String returns the config spelling, e.g. "half_and_half".
func (m InitMethod) String() string {
	if int(m) >= len(initMethodNames) {
		return fmt.Sprintf("init_method(%d)", uint8(m))
	}
	return initMethodNames[m]
}

// ParseInitMethod maps "grow", "full" or "half_and_half" (case-insensitive,
// '-' accepted for '_') to an InitMethod.
func ParseInitMethod(s string) (InitMethod, error) {
	var key = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, name := range initMethodNames {
		if name == key {
			return InitMethod(i), nil
		}
	}
	return 0, fmt.Errorf("ParseInitMethod(%q): %w", s, ErrBadInitMethod)
}

// Defaults (single source of truth for DefaultParams).
const (
	DefaultConstLo              = -1.0
	DefaultConstHi              = 1.0
	DefaultInitDepthMin         = 2
	DefaultInitDepthMax         = 6
	DefaultInitMethod           = HalfAndHalf
	DefaultTerminalRatio        = 0.5
	DefaultPointReplace         = 0.05
	DefaultParsimonyCoefficient = 0.001
	DefaultMetric               = program.MetricMAE
	DefaultMaxDepth             = 20
)

// minMaxDepth admits a root function and its leaves (depth 1 < 2).
const minMaxDepth = 2

// Params is the read-only configuration consumed by construction, the
// operators and the fitness layer.
//
// Fields:
//   - FunctionSet   — operators Build may emit (duplicates raise their odds).
//   - NumFeatures   — number of feature columns; variables index [0,NumFeatures).
//   - ConstRange    — [lo,hi) for sampled constants.
//   - NoConstants   — when true terminals are variables only.
//   - InitDepth     — [min,max] range the target depth is drawn from.
//   - InitMethod    — Grow, Full or HalfAndHalf.
//   - TerminalRatio — Grow's per-position probability of stopping early.
//   - PointReplace  — per-node replacement probability in PointMutation.
//   - ParsimonyCoefficient — length penalty weight for penalized fitness.
//   - Metric        — scoring function recorded on every produced program.
//   - MaxDepth      — exclusive depth bound; crossover children satisfy Depth < MaxDepth.
type Params struct {
	FunctionSet          []program.Op
	NumFeatures          int
	ConstRange           [2]float64
	NoConstants          bool
	InitDepth            [2]int
	InitMethod           InitMethod
	TerminalRatio        float64
	PointReplace         float64
	ParsimonyCoefficient float64
	Metric               program.Metric
	MaxDepth             int
}

// DefaultParams returns the documented defaults with the four arithmetic
// operators and NumFeatures==0 (callers set it from their data).
func DefaultParams() Params {
	return Params{
		FunctionSet:          []program.Op{program.OpAdd, program.OpSub, program.OpMul, program.OpDiv},
		NumFeatures:          0,
		ConstRange:           [2]float64{DefaultConstLo, DefaultConstHi},
		InitDepth:            [2]int{DefaultInitDepthMin, DefaultInitDepthMax},
		InitMethod:           DefaultInitMethod,
		TerminalRatio:        DefaultTerminalRatio,
		PointReplace:         DefaultPointReplace,
		ParsimonyCoefficient: DefaultParsimonyCoefficient,
		Metric:               DefaultMetric,
		MaxDepth:             DefaultMaxDepth,
	}
}

// Validate checks every field and returns the first violation wrapped with
// its context. Order: function set → features → constants → depths →
// method → probabilities → parsimony → metric.
// Complexity: O(len(FunctionSet)).
func (p Params) Validate() error {
	if len(p.FunctionSet) == 0 {
		return ErrEmptyFunctionSet
	}
	for i, op := range p.FunctionSet {
		if !op.Valid() {
			return fmt.Errorf("FunctionSet[%d]=%v: %w", i, op, ErrInvalidOp)
		}
	}
	if p.NumFeatures < 0 || (p.NoConstants && p.NumFeatures == 0) {
		return fmt.Errorf("NumFeatures=%d NoConstants=%t: %w", p.NumFeatures, p.NoConstants, ErrBadFeatureCount)
	}
	if !p.NoConstants {
		var lo, hi = p.ConstRange[0], p.ConstRange[1]
		if !finite(lo) || !finite(hi) || lo > hi {
			return fmt.Errorf("ConstRange=[%g,%g]: %w", lo, hi, ErrBadConstRange)
		}
	}
	if p.MaxDepth < minMaxDepth {
		return fmt.Errorf("MaxDepth=%d < %d: %w", p.MaxDepth, minMaxDepth, ErrBadMaxDepth)
	}
	// Build always emits a function root, so the realized depth is max(1, target).
	if p.InitDepth[0] < 0 || p.InitDepth[0] > p.InitDepth[1] || p.InitDepth[1] >= p.MaxDepth {
		return fmt.Errorf("InitDepth=[%d,%d] MaxDepth=%d: %w", p.InitDepth[0], p.InitDepth[1], p.MaxDepth, ErrBadInitDepth)
	}
	if int(p.InitMethod) >= len(initMethodNames) {
		return fmt.Errorf("InitMethod=%d: %w", p.InitMethod, ErrBadInitMethod)
	}
	if !probability(p.TerminalRatio) {
		return fmt.Errorf("TerminalRatio=%g: %w", p.TerminalRatio, ErrInvalidProbability)
	}
	if !probability(p.PointReplace) {
		return fmt.Errorf("PointReplace=%g: %w", p.PointReplace, ErrInvalidProbability)
	}
	if !finite(p.ParsimonyCoefficient) || p.ParsimonyCoefficient < 0 {
		return fmt.Errorf("ParsimonyCoefficient=%g: %w", p.ParsimonyCoefficient, ErrBadParsimony)
	}
	if !p.Metric.Valid() {
		return fmt.Errorf("Metric=%v: %w", p.Metric, ErrBadMetric)
	}
	return nil
}

// ArityIndex groups FunctionSet by arity: index[a] lists the operators of
// arity a in FunctionSet order. Used by PointMutation's arity-preserving swap.
func (p Params) ArityIndex() [3][]program.Op {
	var index [3][]program.Op
	for _, op := range p.FunctionSet {
		if a := op.Arity(); a > 0 && a < len(index) {
			index[a] = append(index[a], op)
		}
	}
	return index
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func probability(x float64) bool { return x >= 0 && x <= 1 }
