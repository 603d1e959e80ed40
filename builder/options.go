// SPDX-License-Identifier: MIT
// Package: wclique/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new deterministic RNG (seed 0 maps to a fixed default).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithWeightFn sets the vertex weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithWeightRange is shorthand for WithWeightFn(UniformWeightFn(lo, hi)).
func WithWeightRange(lo, hi int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}
