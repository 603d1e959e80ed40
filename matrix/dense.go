// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Unlike general numeric matrices, a 0×0 Dense is legal here: it is the
// adjacency matrix of the empty graph.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxRows = "FromRows"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return errors.Wrapf(err, "Dense.%s(%d,%d)", method, row, col)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions if rows<0 or cols<0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically; len may legally be 0.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// FromRows copies a [][]float64 into a new Dense.
// All rows must have the same length; an empty input yields a 0×0 matrix.
//
// Errors: ErrRaggedRows (wrapped with the offending row index).
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	var (
		r = len(rows)
		c int
	)
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, errors.Wrapf(ErrRaggedRows, "%s: row %d has %d columns, want %d", ctxRows, i, len(rows[i]), c)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// FromBytes builds a Dense from a 0/1 byte matrix, the compact form in which
// adjacency matrices usually arrive (any non-zero byte marks an edge).
//
// Errors: ErrRaggedRows.
// Complexity: O(r*c).
func FromBytes(rows [][]uint8) (*Dense, error) {
	var (
		r = len(rows)
		c int
	)
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, errors.Wrapf(ErrRaggedRows, "FromBytes: row %d has %d columns, want %d", i, len(rows[i]), c)
		}
		for j = 0; j < c; j++ {
			m.data[i*c+j] = float64(rows[i][j])
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). NaN and ±Inf are rejected with ErrNaNInf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy. Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// String renders the matrix row by row, e.g. "[0, 1]\n[0, 0]\n".
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
