// SPDX-License-Identifier: MIT

// Package builder generates weighted clique problem instances
// deterministically: random G(n,p) graphs, planted cliques, complete graphs,
// cycles, disjoint clique blocks and explicit edge lists.
//
// Instances use the one-sided adjacency convention of package matrix (only
// the strict upper triangle is written) and strictly positive weights, so
// they can be fed straight into the clique solver.
//
//	in, err := builder.Build(60,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightRange(1, 20)},
//		builder.RandomSparse(0.3),
//		builder.PlantedClique(8, nil),
//	)
package builder
