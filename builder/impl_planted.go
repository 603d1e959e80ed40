// SPDX-License-Identifier: MIT
// Package: wclique/builder
//
// impl_planted.go - PlantedClique(k) constructor.
//
// Picks k distinct vertices uniformly at random and makes them pairwise
// adjacent. Combined with RandomSparse this gives instances with a known
// large clique, the classic stress case for clique solvers.
//
// Contract:
//   - 1 ≤ k ≤ n (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity: O(n + k²).

package builder

const methodPlantedClique = "PlantedClique"

// PlantedClique returns a Constructor that plants a k-clique. The chosen
// vertices are reported through members when it is non-nil.
func PlantedClique(k int, members *[]int) Constructor {
	return func(in *Instance, cfg builderConfig) error {
		n := in.N()
		if k < 1 || k > n {
			return wrapf(methodPlantedClique, ErrTooFewVertices, "k=%d not in [1,%d]", k, n)
		}
		if cfg.rng == nil {
			return wrapf(methodPlantedClique, ErrNeedRandSource, "k=%d", k)
		}

		chosen := sampleDistinct(n, k, cfg.rng)
		var i, j int
		for i = 0; i < k; i++ {
			for j = i + 1; j < k; j++ {
				if err := in.AddEdge(chosen[i], chosen[j]); err != nil {
					return wrapf(methodPlantedClique, err, "AddEdge(%d,%d)", chosen[i], chosen[j])
				}
			}
		}
		if members != nil {
			*members = chosen
		}

		return nil
	}
}
