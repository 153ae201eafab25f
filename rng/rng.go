// SPDX-License-Identifier: MIT

// Package rng - deterministic random streams shared by construction,
// the genetic operators and the evolution loop.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws on every platform.
//   - Encapsulation: one stream type; no time-based sources hidden anywhere.
//   - Splitting: Derive builds an independent child stream from (seed, counter)
//     without consuming parent state, so work can be handed to goroutines in any
//     order and still reproduce bit-for-bit.
//
// Concurrency:
//   - A *Stream is NOT goroutine-safe. Do not share one across goroutines.
//   - Use Derive to create one stream per worker, per offspring, per restart.
package rng

import "math/rand/v2"

// Source is the sampling contract the engine consumes.
type Source interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// Uniform returns a uniform value in [lo,hi).
	Uniform(lo, hi float64) float64
	// IntRange returns a uniform integer in the closed range [lo,hi].
	IntRange(lo, hi int) int
	// Bernoulli returns true with probability p.
	Bernoulli(p float64) bool
}

// defaultSeed is used when callers pass seed==0. Arbitrary but stable.
const defaultSeed uint64 = 1

// Stream is a seeded PCG generator that remembers its seed so that child
// streams can be derived from it.
type Stream struct {
	seed uint64
	r    *rand.Rand
}

var _ Source = (*Stream)(nil)

// New returns a deterministic stream. Policy: seed==0 ⇒ defaultSeed.
//
// Complexity: O(1).
func New(seed uint64) *Stream {
	if seed == 0 {
		seed = defaultSeed
	}
	return &Stream{
		seed: seed,
		r:    rand.New(rand.NewPCG(seed, mix(seed, 0))),
	}
}

// Seed returns the seed the stream was created with.
func (s *Stream) Seed() uint64 { return s.seed }

// Derive returns the child stream identified by counter. The child depends
// only on (s.Seed(), counter); s's state is untouched, so Derive(k) always
// yields the same sequence no matter how many draws s has made.
//
// Complexity: O(1).
func (s *Stream) Derive(counter uint64) *Stream {
	return New(mix(s.seed, counter+1))
}

// Float64 returns a uniform value in [0,1).
func (s *Stream) Float64() float64 { return s.r.Float64() }

// Uniform returns a uniform value in [lo,hi). lo==hi returns lo.
func (s *Stream) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// IntRange returns a uniform integer in [lo,hi]. Panics if hi < lo
// (programmer error: an empty range has no sample).
func (s *Stream) IntRange(lo, hi int) int {
	if hi < lo {
		panic("rng: IntRange with hi < lo")
	}
	return lo + s.r.IntN(hi-lo+1)
}

// Bernoulli returns true with probability p. p ≤ 0 is never true, p ≥ 1 always.
func (s *Stream) Bernoulli(p float64) bool {
	return s.r.Float64() < p
}

// mix is a SplitMix64 finalizer over (parent, stream); see Vigna 2014 for
// the constants. Small input changes give large, well-spread output changes.
func mix(parent, stream uint64) uint64 {
	var x uint64
	x = parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
