// SPDX-License-Identifier: MIT

// Package wclique is an exact solver for the maximum-weight clique and
// maximum-weight independent set problems on vertex-weighted undirected
// graphs.
//
// The module is organized as follows:
//
//	clique/      branch-and-bound engine, Options, Result and validation
//	matrix/      dense adjacency matrices, upper-triangle readers, complements
//	builder/     seeded random and structured instance generators
//	gonumgraph/  adapters from gonum graph.Undirected and mat.Matrix
//	problem/     YAML problem and solution files
//	logger/      leveled module loggers shared by the CLI and batch runner
//	cmd/wclique  command line front end (clique, independent-set, batch, generate)
//
// Quick ASCII example, two triangles joined by the edge 2-3:
//
//	0───1       4
//	 \ /       / \
//	  2───────3───5
//
// With weights [3 1 4 2 1 1] the heaviest clique is {0,1,2} (weight 8)
// and the heaviest independent set is {0,3} (weight 5).
//
//	go get github.com/katalvlaran/wclique/clique
package wclique
