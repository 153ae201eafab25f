// SPDX-License-Identifier: MIT

package evolve

import "errors"

// Sentinel errors returned by Options.Validate and Run. Match with errors.Is.
var (
	// ErrBadPopulation indicates a population smaller than 2.
	ErrBadPopulation = errors.New("evolve: invalid population size")

	// ErrBadGenerations indicates fewer than one generation.
	ErrBadGenerations = errors.New("evolve: invalid generation count")

	// ErrBadTournament indicates a tournament size outside [1, population].
	ErrBadTournament = errors.New("evolve: invalid tournament size")

	// ErrBadProbabilities indicates an operator probability outside [0,1] or
	// operator probabilities summing above 1.
	ErrBadProbabilities = errors.New("evolve: invalid operator probabilities")

	// ErrBadStopping indicates a NaN stopping criterion.
	ErrBadStopping = errors.New("evolve: invalid stopping criterion")

	// ErrFeatureMismatch indicates Params.NumFeatures exceeds the data's columns.
	ErrFeatureMismatch = errors.New("evolve: feature count exceeds data columns")

	// ErrNoData indicates missing features or targets.
	ErrNoData = errors.New("evolve: no training data")
)
