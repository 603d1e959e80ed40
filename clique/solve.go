// SPDX-License-Identifier: MIT
// Package clique - public entry points.
//
//   - MaxWeightClique / MaxWeightIndependentSet: the two operations of the
//     package, returning a membership vector.
//   - Solve / SolveContext / SolveIndependentSet / SolveGraph: the same
//     operations returning a full Result (vertices, weight, statistics) and
//     honouring cancellation.
//
// Every entry point validates eagerly (options first, then shape and
// weights) and returns no partial output on error.
package clique

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/wclique/matrix"
)

// MaxWeightClique returns the membership vector of a maximum-weight clique of
// the graph described by the upper triangle of adj.
//
// Among equal-weight optima the lexicographically smallest index list wins;
// a strictly heavier clique always wins regardless of indices.
func MaxWeightClique(adj matrix.Matrix, weights []int64, opts Options) ([]bool, error) {
	res, err := SolveContext(context.Background(), adj, weights, opts)
	if err != nil {
		return nil, err
	}

	return res.Members, nil
}

// MaxWeightIndependentSet returns the membership vector of a maximum-weight
// independent set, computed as MaxWeightClique(UpperComplement(adj), weights).
func MaxWeightIndependentSet(adj matrix.Matrix, weights []int64, opts Options) ([]bool, error) {
	res, err := SolveIndependentSet(context.Background(), adj, weights, opts)
	if err != nil {
		return nil, err
	}

	return res.Members, nil
}

// Solve is SolveContext with a background context.
func Solve(adj matrix.Matrix, weights []int64, opts Options) (Result, error) {
	return SolveContext(context.Background(), adj, weights, opts)
}

// SolveContext validates inputs, builds the graph and runs the search.
//
// Errors:
//   - ErrInvalidArgument family for bad inputs or options.
//   - ErrTimeLimit if opts.TimeLimit elapses.
//   - the context error (wrapped) if ctx is cancelled.
func SolveContext(ctx context.Context, adj matrix.Matrix, weights []int64, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	g, err := NewGraph(adj, weights)
	if err != nil {
		return Result{}, err
	}

	return search(ctx, g, opts)
}

// SolveIndependentSet complements the upper triangle of adj (diagonal and
// lower triangle forced to zero) and solves maximum-weight clique on it.
// Validation is the clique path's; complementing never validates shape.
func SolveIndependentSet(ctx context.Context, adj matrix.Matrix, weights []int64, opts Options) (Result, error) {
	comp, err := complementOf(adj)
	if err != nil {
		return Result{}, err
	}

	return SolveContext(ctx, comp, weights, opts)
}

// SolveGraph runs the search on an already built Graph.
func SolveGraph(ctx context.Context, g *Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, errors.Wrap(ErrNilMatrix, "nil graph")
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	return search(ctx, g, opts)
}

func search(ctx context.Context, g *Graph, opts Options) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	e := newEngine(ctx, g, opts)
	if err := e.run(); err != nil {
		return Result{}, err
	}

	return e.result(), nil
}

// complementOf maps adj to its one-sided complement. A nil adj is passed
// through so the clique path reports it; matrix errors are translated into
// this package's sentinels.
func complementOf(adj matrix.Matrix) (matrix.Matrix, error) {
	if matrix.ValidateNotNil(adj) != nil {
		return nil, nil
	}
	comp, err := matrix.UpperComplement(adj)
	switch {
	case err == nil:
		return comp, nil
	case errors.Is(err, matrix.ErrNaNInf):
		return nil, errors.WithSecondaryError(ErrNonFiniteEntry, err)
	default:
		return nil, errors.WithSecondaryError(ErrDimensionMismatch, err)
	}
}
