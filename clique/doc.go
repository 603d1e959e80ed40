// SPDX-License-Identifier: MIT

// Package clique finds a maximum-weight clique or a maximum-weight
// independent set of a vertex-weighted undirected graph, exactly.
//
// Input convention (shared with package matrix):
//
//   - adjacency: n×n matrix; only entries with row < col are read, a
//     non-zero entry is an edge. Diagonal and lower triangle are ignored.
//   - weights: n strictly positive integers.
//
// Algorithm: depth-first branch-and-bound over the clique lattice with
// ascending-index include/exclude branching and a weighted greedy-coloring
// upper bound; adjacency and candidate sets are word-packed bitsets.
// Independent set is solved as clique on the one-sided complement.
//
// Determinism: the same input always yields the same witness. Among
// maximum-weight cliques the lexicographically smallest sorted index list
// is reported.
//
// Stopping rules (Options): a weight window [MinWeight, MaxWeight] (0 = open
// end), maximal-only acceptance, a size cap, and an optional time limit.
//
// Quick example:
//
//	adj, _ := matrix.FromBytes([][]uint8{
//		{0, 1, 0},
//		{0, 0, 0},
//		{0, 0, 0},
//	})
//	members, _ := clique.MaxWeightClique(adj, []int64{2, 3, 4}, clique.DefaultOptions())
//	// members == [true true false]: {0,1} weighs 5 > 4.
package clique
