// SPDX-License-Identifier: MIT
// Package: wclique/builder
//
// impl_structured.go - deterministic topologies.
//
//   - Complete():            every pair {i,j}.
//   - Cycle():               {i, i+1 mod n}; needs n ≥ 3.
//   - DisjointCliques(s...): consecutive blocks of the given sizes, each a
//     complete subgraph (sizes must fit into n).
//   - Edges(pairs...):       explicit edge list, handy for golden fixtures.

package builder

const (
	methodComplete        = "Complete"
	methodCycle           = "Cycle"
	methodDisjointCliques = "DisjointCliques"
	methodEdges           = "Edges"
	minCycleVertices      = 3
)

// Complete adds every edge. Complexity: O(n²).
func Complete() Constructor {
	return func(in *Instance, _ builderConfig) error {
		return addBlock(in, 0, in.N(), methodComplete)
	}
}

// Cycle adds the Hamiltonian cycle 0-1-…-(n-1)-0.
func Cycle() Constructor {
	return func(in *Instance, _ builderConfig) error {
		n := in.N()
		if n < minCycleVertices {
			return wrapf(methodCycle, ErrTooFewVertices, "n=%d < min=%d", n, minCycleVertices)
		}
		var i int
		for i = 0; i < n; i++ {
			if err := in.AddEdge(i, (i+1)%n); err != nil {
				return wrapf(methodCycle, err, "AddEdge(%d,%d)", i, (i+1)%n)
			}
		}

		return nil
	}
}

// DisjointCliques makes consecutive blocks of the given sizes complete.
// Vertices past the last block are left untouched.
func DisjointCliques(sizes ...int) Constructor {
	return func(in *Instance, _ builderConfig) error {
		var start, i int
		for i = range sizes {
			if sizes[i] < 1 || start+sizes[i] > in.N() {
				return wrapf(methodDisjointCliques, ErrTooFewVertices, "block %d of size %d does not fit n=%d", i, sizes[i], in.N())
			}
			if err := addBlock(in, start, start+sizes[i], methodDisjointCliques); err != nil {
				return err
			}
			start += sizes[i]
		}

		return nil
	}
}

// Edges adds the listed pairs.
func Edges(pairs ...[2]int) Constructor {
	return func(in *Instance, _ builderConfig) error {
		for _, p := range pairs {
			if err := in.AddEdge(p[0], p[1]); err != nil {
				return wrapf(methodEdges, err, "pair %v", p)
			}
		}

		return nil
	}
}

// addBlock makes [from,to) a complete subgraph.
func addBlock(in *Instance, from, to int, method string) error {
	var i, j int
	for i = from; i < to; i++ {
		for j = i + 1; j < to; j++ {
			if err := in.AddEdge(i, j); err != nil {
				return wrapf(method, err, "AddEdge(%d,%d)", i, j)
			}
		}
	}

	return nil
}
