// SPDX-License-Identifier: MIT
// Package: wclique/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng      = nil                  (pure/deterministic unless seeded)
//   • weightFn = ConstantWeightFn(1)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Vertex weight generator.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
