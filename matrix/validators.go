// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/nil checks.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "github.com/cockroachdb/errors"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is rejected as well.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return errors.Wrapf(ErrNonSquare, "ValidateSquare: %dx%d", m.Rows(), m.Cols())
	}

	return nil
}
