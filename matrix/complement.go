// SPDX-License-Identifier: MIT

// Package matrix - one-sided (upper-triangular) edge helpers.
//
// Adjacency inputs follow a one-sided convention: only entries with
// row < col describe edges, everything on or below the diagonal is ignored.
// UpperComplement mirrors that convention so its output can be fed back into
// any consumer of the same convention.

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

// IsEdge reports whether an adjacency entry marks an edge (non-zero).
func IsEdge(v float64) bool { return v != 0 }

// UpperComplement returns a new Dense of the same shape as m where, for every
// i < j, the entry is 1 if m(i,j) is zero and 0 otherwise. The diagonal and
// the lower triangle are forced to zero.
//
// The shape is not validated beyond nil-ness: a non-square input yields a
// non-square output, leaving shape policy to the consumer.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - ErrNaNInf if an upper-triangle entry is NaN or ±Inf.
//
// Complexity: O(r*c).
func UpperComplement(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, errors.Wrap(err, "UpperComplement")
	}
	var (
		r, c = m.Rows(), m.Cols()
		out  *Dense
		err  error
	)
	if out, err = NewDense(r, c); err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = i + 1; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, errors.Wrap(err, "UpperComplement")
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.Wrapf(ErrNaNInf, "UpperComplement: entry (%d,%d)", i, j)
			}
			if !IsEdge(v) {
				out.data[i*c+j] = 1
			}
		}
	}

	return out, nil
}
