// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm in this package returns one of these sentinels (possibly
// wrapped with call-site context) and tests match them via errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "github.com/cockroachdb/errors"

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrRaggedRows is returned by FromRows/FromBytes when rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")
)
