// SPDX-License-Identifier: MIT
// Package clique - graph & weight model.
//
// A Graph is built once from a one-sided adjacency matrix: only entries with
// row < col are read, and a non-zero entry adds the undirected edge {i,j}.
// The diagonal and lower triangle are ignored whatever they contain, so the
// storage need not be symmetric.
//
// Representation: one word-packed bitset of length n per vertex (O(n²) bits),
// so candidate ∩ neighbourhood is O(n/64) in the search hot path.
package clique

import (
	"cmp"
	"math"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/wclique/matrix"
)

// Graph is an immutable vertex-weighted undirected graph without self-loops.
// It is safe for concurrent readers.
type Graph struct {
	n       int
	adj     []*bitset.BitSet // adj[v] = N(v); never contains v
	weights []int64          // weights[v] > 0
	total   int64            // sum of weights

	// order lists vertices by descending weight, ties by ascending index;
	// it is the processing order of the coloring bound.
	order []int
}

// NewGraph validates adj and weights and builds the bitset adjacency.
// No partial graph is returned on failure.
//
// Errors (all match ErrInvalidArgument): ErrNilMatrix, ErrNonSquare,
// ErrDimensionMismatch, ErrNonPositiveWeight, ErrNonFiniteEntry,
// ErrWeightOverflow.
//
// Complexity: O(n²) time, O(n²) bits.
func NewGraph(adj matrix.Matrix, weights []int64) (*Graph, error) {
	n, err := validateShape(adj, weights)
	if err != nil {
		return nil, err
	}
	total, err := validateWeights(weights)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		n:       n,
		adj:     make([]*bitset.BitSet, n),
		weights: slices.Clone(weights),
		total:   total,
	}
	var i, j int
	for i = 0; i < n; i++ {
		g.adj[i] = bitset.New(uint(n))
	}

	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if v, err = adj.At(i, j); err != nil {
				return nil, errors.WithSecondaryError(
					errors.Wrapf(ErrDimensionMismatch, "entry (%d,%d) unreadable", i, j), err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.Wrapf(ErrNonFiniteEntry, "entry (%d,%d)", i, j)
			}
			if matrix.IsEdge(v) {
				g.adj[i].Set(uint(j))
				g.adj[j].Set(uint(i))
			}
		}
	}
	g.order = weightOrder(g.weights)

	return g, nil
}

// weightOrder returns 0..n-1 sorted by descending weight, ascending index.
func weightOrder(weights []int64) []int {
	order := make([]int, len(weights))
	var i int
	for i = range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(weights[b], weights[a]); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	return order
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// Weight returns the weight of v. v must be in [0, N()).
func (g *Graph) Weight(v int) int64 { return g.weights[v] }

// Weights returns a copy of the weight vector.
func (g *Graph) Weights() []int64 { return slices.Clone(g.weights) }

// TotalWeight returns the sum of all vertex weights.
func (g *Graph) TotalWeight() int64 { return g.total }

// Adjacent reports whether {u,v} is an edge. Out-of-range vertices and u == v
// are never adjacent.
func (g *Graph) Adjacent(u, v int) bool {
	if u < 0 || v < 0 || u >= g.n || v >= g.n {
		return false
	}

	return g.adj[u].Test(uint(v))
}

// Degree returns the number of neighbours of v.
func (g *Graph) Degree(v int) int { return int(g.adj[v].Count()) }

// Neighbors returns the neighbours of v in ascending order.
func (g *Graph) Neighbors(v int) []int {
	out := make([]int, 0, g.adj[v].Count())
	for u, ok := g.adj[v].NextSet(0); ok; u, ok = g.adj[v].NextSet(u + 1) {
		out = append(out, int(u))
	}

	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	var (
		sum uint
		v   int
	)
	for v = 0; v < g.n; v++ {
		sum += g.adj[v].Count()
	}

	return int(sum / 2)
}

// Complement returns the complement graph over the same vertices and
// weights: {u,v} (u ≠ v) is an edge iff it is not an edge of g.
//
// Complexity: O(n²/64).
func (g *Graph) Complement() *Graph {
	c := &Graph{
		n:       g.n,
		adj:     make([]*bitset.BitSet, g.n),
		weights: g.weights, // immutable, safe to share
		total:   g.total,
		order:   g.order,
	}
	var v int
	for v = 0; v < g.n; v++ {
		c.adj[v] = g.adj[v].Complement()
		c.adj[v].Clear(uint(v))
	}

	return c
}

// setWeight sums the weights of vertices (no validation).
func (g *Graph) setWeight(vertices []int) int64 {
	var (
		sum int64
		v   int
	)
	for _, v = range vertices {
		sum += g.weights[v]
	}

	return sum
}

// IsClique reports whether vertices are distinct, in range, and pairwise
// adjacent in g. The empty set is a clique.
func IsClique(g *Graph, vertices []int) bool {
	return checkPairs(g, vertices, true)
}

// IsIndependentSet reports whether vertices are distinct, in range, and
// pairwise non-adjacent in g. The empty set is independent.
func IsIndependentSet(g *Graph, vertices []int) bool {
	return checkPairs(g, vertices, false)
}

func checkPairs(g *Graph, vertices []int, wantEdge bool) bool {
	if g == nil {
		return false
	}
	seen := bitset.New(uint(g.n))
	var i, j int
	for i = range vertices {
		if vertices[i] < 0 || vertices[i] >= g.n || seen.Test(uint(vertices[i])) {
			return false
		}
		seen.Set(uint(vertices[i]))
		for j = 0; j < i; j++ {
			if g.Adjacent(vertices[i], vertices[j]) != wantEdge {
				return false
			}
		}
	}

	return true
}
