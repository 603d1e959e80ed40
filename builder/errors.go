// SPDX-License-Identifier: MIT
// Package: wclique/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with errors.Wrapf at the detection site.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "github.com/cockroachdb/errors"

// ErrTooFewVertices indicates that a size parameter (n, k, block size) is
// smaller than the allowed minimum, or larger than the instance allows.
var ErrTooFewVertices = errors.New("builder: parameter out of range")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNonPositiveWeight indicates that the weight function produced a weight <= 0.
var ErrNonPositiveWeight = errors.New("builder: weight function produced a non-positive weight")

// ErrConstructFailed indicates a programmer error such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf attaches method context to a sentinel.
func wrapf(method string, err error, format string, args ...any) error {
	return errors.Wrapf(err, method+": "+format, args...)
}
