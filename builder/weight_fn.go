// SPDX-License-Identifier: MIT
// Package: wclique/builder
//
// weight_fn.go: vertex weight generators.
//
// All generators return strictly positive weights, the precondition of the
// clique engine. Factories panic on meaningless parameters (programmer error).

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultVertexWeight is the weight used when no generator is configured.
const DefaultVertexWeight int64 = 1

// WeightFn produces one vertex weight. rng may be nil for deterministic functions.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultVertexWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultVertexWeight
}

// ConstantWeightFn returns a generator that always yields value (> 0).
func ConstantWeightFn(value int64) WeightFn {
	if value <= 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a generator drawing uniformly from [lo, hi].
// Requires 1 ≤ lo ≤ hi. Without an RNG it returns lo.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}
