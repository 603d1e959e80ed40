// SPDX-License-Identifier: MIT

// Package gonumgraph adapts gonum matrices and graphs to the clique solver.
//
//   - FromMat / View: a gonum mat.Matrix used as a one-sided adjacency matrix.
//   - FromUndirected: a gonum graph.Undirected plus a vertex weight function
//     turned into (adjacency, weights), with vertices ordered by node ID.
//   - MaxWeightClique / MaxWeightIndependentSet: the solver operations
//     expressed in gonum nodes.
package gonumgraph

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/wclique/matrix"
)

// FromMat copies a gonum matrix into a matrix.Dense. A nil input yields
// matrix.ErrNilMatrix.
//
// Complexity: O(r*c).
func FromMat(m mat.Matrix) (*matrix.Dense, error) {
	if m == nil {
		return nil, errors.Wrap(matrix.ErrNilMatrix, "FromMat")
	}
	r, c := m.Dims()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, m.At(i, j)); err != nil {
				return nil, errors.Wrapf(err, "FromMat: entry (%d,%d)", i, j)
			}
		}
	}

	return out, nil
}

// View exposes a gonum matrix through the matrix.Matrix interface without
// copying. Reads outside the bounds return matrix.ErrOutOfRange instead of
// panicking; Set requires the underlying matrix to implement mat.Mutable.
type View struct {
	m mat.Matrix
}

var _ matrix.Matrix = (*View)(nil)

// NewView wraps m. A nil input yields matrix.ErrNilMatrix.
func NewView(m mat.Matrix) (*View, error) {
	if m == nil {
		return nil, errors.Wrap(matrix.ErrNilMatrix, "NewView")
	}

	return &View{m: m}, nil
}

// Rows returns the row count.
func (v *View) Rows() int {
	r, _ := v.m.Dims()

	return r
}

// Cols returns the column count.
func (v *View) Cols() int {
	_, c := v.m.Dims()

	return c
}

func (v *View) check(i, j int) error {
	r, c := v.m.Dims()
	if i < 0 || j < 0 || i >= r || j >= c {
		return errors.Wrapf(matrix.ErrOutOfRange, "View(%d,%d) outside %dx%d", i, j, r, c)
	}

	return nil
}

// At returns the (i,j) entry.
func (v *View) At(i, j int) (float64, error) {
	if err := v.check(i, j); err != nil {
		return 0, err
	}

	return v.m.At(i, j), nil
}

// Set writes through to the gonum matrix when it is mutable. Symmetric
// gonum types (mat.MutableSymmetric) mirror the write, which is harmless
// under the one-sided convention.
func (v *View) Set(i, j int, x float64) error {
	if err := v.check(i, j); err != nil {
		return err
	}
	switch m := v.m.(type) {
	case mat.Mutable:
		m.Set(i, j, x)
	case mat.MutableSymmetric:
		m.SetSym(i, j, x)
	default:
		return errors.Newf("View.Set: %T is read-only", v.m)
	}

	return nil
}

// Clone returns an independent matrix.Dense copy.
func (v *View) Clone() matrix.Matrix {
	d, _ := FromMat(v.m)

	return d
}
