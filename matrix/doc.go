// SPDX-License-Identifier: MIT

// Package matrix provides the dense adjacency storage consumed by the clique
// engine: a small Matrix interface, a row-major Dense implementation that
// never panics on user input, shared shape validators, and UpperComplement,
// the one-sided complement used to reduce independent set to clique.
//
// Edge convention: an entry (i,j) with i < j marks an edge iff it is
// non-zero. The diagonal and the lower triangle are never consulted.
package matrix
