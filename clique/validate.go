// SPDX-License-Identifier: MIT
// Package clique - validation utilities.
//
// This file contains the eager precondition checks run before any search
// work begins:
//  1. Options consistency (weight window, size cap, bound, time limit).
//  2. Adjacency shape and weight vector (length, positivity, overflow).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input; only sentinels from types.go,
//     wrapped with the detection-site context.
package clique

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/wclique/matrix"
)

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.MinWeight < 0 || opts.MaxWeight < 0 {
		return errors.Wrapf(ErrInvalidOption, "weight window [%d,%d] has a negative end", opts.MinWeight, opts.MaxWeight)
	}
	if opts.MaxWeight != 0 && opts.MaxWeight < opts.MinWeight {
		return errors.Wrapf(ErrInvalidOption, "MaxWeight %d < MinWeight %d", opts.MaxWeight, opts.MinWeight)
	}
	if opts.MaxSize < 0 {
		return errors.Wrapf(ErrInvalidOption, "MaxSize %d < 0", opts.MaxSize)
	}
	if opts.TimeLimit < 0 {
		return errors.Wrapf(ErrInvalidOption, "TimeLimit %s < 0", opts.TimeLimit)
	}
	switch opts.Bound {
	case ColoringBound, NoBound:
	default:
		return errors.Wrapf(ErrInvalidOption, "unknown bound %d", int(opts.Bound))
	}

	return nil
}

// validateShape verifies adj is non-nil and square and that weights match
// its order. Returns n on success.
//
// Complexity: O(1).
func validateShape(adj matrix.Matrix, weights []int64) (int, error) {
	if matrix.ValidateNotNil(adj) != nil {
		return 0, ErrNilMatrix
	}
	var r, c = adj.Rows(), adj.Cols()
	if r != c {
		return 0, errors.Wrapf(ErrNonSquare, "%dx%d", r, c)
	}
	if len(weights) != r {
		return 0, errors.Wrapf(ErrDimensionMismatch, "len(weights)=%d, n=%d", len(weights), r)
	}

	return r, nil
}

// validateWeights enforces strictly positive weights and returns their sum.
//
// Complexity: O(n).
func validateWeights(weights []int64) (int64, error) {
	var (
		total int64
		i     int
		w     int64
	)
	for i, w = range weights {
		if w <= 0 {
			return 0, errors.Wrapf(ErrNonPositiveWeight, "weights[%d]=%d", i, w)
		}
		if total > math.MaxInt64-w {
			return 0, errors.Wrapf(ErrWeightOverflow, "at weights[%d]", i)
		}
		total += w
	}

	return total, nil
}

// effectiveMaxSize resolves the MaxSize policy (0 ⇒ DefaultMaxSize).
func effectiveMaxSize(opts Options) int {
	if opts.MaxSize == 0 {
		return DefaultMaxSize
	}

	return opts.MaxSize
}
