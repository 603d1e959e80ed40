// SPDX-License-Identifier: MIT
// Package: wclique/builder
//
// rng.go: deterministic random generation for stochastic constructors.
//
// Goals:
//   - Determinism: same seed ⇒ identical instances across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines;
//     use DeriveSeed to give each worker its own stream.

package builder

import (
	"math/rand"
	"slices"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// (SplitMix64 finalizer), e.g. to generate the i-th instance of a batch.
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// sampleDistinct returns k distinct values of [0,n) in ascending order using
// a partial Fisher–Yates shuffle.
//
// Complexity: O(n) time and space.
func sampleDistinct(n, k int, rng *rand.Rand) []int {
	p := make([]int, n)
	var i, j int
	for i = range p {
		p[i] = i
	}
	for i = 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		p[i], p[j] = p[j], p[i]
	}
	out := p[:k]
	slices.Sort(out)

	return out
}
