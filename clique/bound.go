// SPDX-License-Identifier: MIT
// Package clique - weighted greedy-coloring upper bound.
//
// Given a candidate set C, partition C into colour classes that are
// independent sets of the induced subgraph. A clique takes at most one
// vertex per class, so
//
//	B(C) = Σ_classes max{ w(v) : v ∈ class }
//
// never underestimates the best extra weight obtainable from C.
//
// Classes are built first-fit over C in descending weight (ties: ascending
// index): each vertex joins the first class containing none of its
// neighbours, otherwise it opens a new class. This is the same partition as
// growing one maximal class at a time in that order, and since a class is
// opened by its heaviest member, the class maximum is its opener's weight.
//
// Complexity: O(|C| · k · n/64) for k classes.
package clique

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// colorBound returns B(cand). The computation stops as soon as the running
// sum exceeds limit, since the caller only needs to know whether
// B(cand) > limit; the returned value is then a partial sum that is still
// greater than limit.
func (e *engine) colorBound(cand *bitset.BitSet, limit int64) int64 {
	var (
		k     int   // classes in use
		total int64 // running sum of class maxima
		c     int
	)
	for _, v := range e.g.order {
		if !cand.Test(uint(v)) {
			continue
		}
		for c = 0; c < k; c++ {
			if e.g.adj[v].IntersectionCardinality(e.classes[c]) == 0 {
				break
			}
		}
		if c == k {
			e.openClass(k)
			k++
			total += e.g.weights[v]
			if total > limit {
				return total
			}
		}
		e.classes[c].Set(uint(v))
	}

	return total
}

// openClass makes e.classes[k] an empty bitset, reusing storage across calls.
func (e *engine) openClass(k int) {
	if k < len(e.classes) {
		e.classes[k].ClearAll()

		return
	}
	e.classes = append(e.classes, bitset.New(uint(e.g.n)))
}

// UpperBound exposes B(C) for a candidate set given as vertex indices.
// It is mainly useful for inspecting bound tightness; out-of-range and
// duplicate indices are ignored.
func UpperBound(g *Graph, candidates []int) int64 {
	cand := bitset.New(uint(g.n))
	for _, v := range candidates {
		if v >= 0 && v < g.n {
			cand.Set(uint(v))
		}
	}
	e := engine{g: g}

	return e.colorBound(cand, math.MaxInt64)
}
