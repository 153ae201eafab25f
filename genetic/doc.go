// SPDX-License-Identifier: MIT

// Package genetic builds random programs and rewrites them with the four
// classic tree operators, all over the flat prefix layout of package program.
//
// ✨ Operations:
//   - Build           — ramped half-and-half construction (grow / full / mixed).
//   - PointMutation   — per-node resample; functions keep their arity.
//   - Crossover       — replace a recipient subtree with a donor subtree,
//     narrowing the donor pick until the child fits the depth bound.
//   - SubtreeMutation — crossover against a freshly built donor.
//   - HoistMutation   — replace a subtree with one of its own sub-subtrees.
//
// ⚙️ Usage:
//
//	params := genetic.DefaultParams()
//	params.NumFeatures = 3
//	if err := params.Validate(); err != nil { ... }
//
//	r := rng.New(42)
//	mom := genetic.Build(params, r)
//	dad := genetic.Build(params, r)
//	kid := genetic.Crossover(mom, dad, params, r)
//
// Ownership:
//
//	Every operator returns a Program with a freshly allocated node buffer;
//	parents are read, never written.
//
// Determinism:
//
//	Given the same Params and the same rng state, every operation returns
//	bit-identical node sequences. Draw order is fixed and documented per
//	function. An rng.Source is not goroutine-safe; use rng.Stream.Derive to
//	hand each goroutine its own stream.
//
// Preconditions:
//
//	Params must pass Validate, and input programs must satisfy the program
//	invariants. Violations are programmer errors and panic.
package genetic
