// SPDX-License-Identifier: MIT
// Package: wclique/builder
//
// impl_random_sparse.go - RandomSparse(p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently
//     with probability p.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i).
//
// Complexity: O(n²) Bernoulli trials.

package builder

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that adds G(n,p) edges.
func RandomSparse(p float64) Constructor {
	return func(in *Instance, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return wrapf(methodRandomSparse, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, probMin, probMax)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return wrapf(methodRandomSparse, ErrNeedRandSource, "p=%.6f", p)
		}

		var (
			n    = in.N()
			i, j int
			keep bool
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				switch p {
				case probMin:
					keep = false
				case probMax:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if keep {
					if err := in.AddEdge(i, j); err != nil {
						return wrapf(methodRandomSparse, err, "AddEdge(%d,%d)", i, j)
					}
				}
			}
		}

		return nil
	}
}
