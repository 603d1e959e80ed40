// SPDX-License-Identifier: MIT

package clique

import (
	"time"

	"github.com/cockroachdb/errors"
)

// ErrInvalidArgument is the single class of caller-input errors. Every
// validation failure below matches it via errors.Is, so callers that only
// care about "bad input" can branch on this one sentinel.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrNilMatrix is returned when the adjacency matrix is nil.
	ErrNilMatrix = errors.Wrap(ErrInvalidArgument, "clique: adjacency matrix is nil")

	// ErrNonSquare is returned when the adjacency matrix is not n×n.
	ErrNonSquare = errors.Wrap(ErrInvalidArgument, "clique: adjacency matrix is not square")

	// ErrDimensionMismatch is returned when len(weights) differs from the
	// matrix order (or an entry cannot be read).
	ErrDimensionMismatch = errors.Wrap(ErrInvalidArgument, "clique: weights and adjacency sizes differ")

	// ErrNonPositiveWeight is returned when any vertex weight is <= 0.
	ErrNonPositiveWeight = errors.Wrap(ErrInvalidArgument, "clique: vertex weights must be positive")

	// ErrNonFiniteEntry is returned for NaN/±Inf in the upper triangle.
	ErrNonFiniteEntry = errors.Wrap(ErrInvalidArgument, "clique: adjacency entry is not finite")

	// ErrWeightOverflow is returned when the total vertex weight does not fit in int64.
	ErrWeightOverflow = errors.Wrap(ErrInvalidArgument, "clique: total weight overflows int64")

	// ErrInvalidOption is returned for inconsistent Options (see validateOptions).
	ErrInvalidOption = errors.Wrap(ErrInvalidArgument, "clique: invalid options")
)

// ErrTimeLimit is returned when Options.TimeLimit elapses before the search
// completes. No partial result is reported.
var ErrTimeLimit = errors.New("clique: time limit exceeded")

// DefaultMaxSize is the default cap on clique cardinality / search depth.
const DefaultMaxSize = 1000

// BoundAlgo selects the upper bound used for pruning.
type BoundAlgo int

const (
	// ColoringBound is the weighted greedy-coloring bound (default).
	ColoringBound BoundAlgo = iota

	// NoBound disables bound pruning. Results are identical, only slower;
	// intended for tests and benchmarks.
	NoBound
)

// String implements fmt.Stringer.
func (b BoundAlgo) String() string {
	switch b {
	case ColoringBound:
		return "coloring"
	case NoBound:
		return "none"
	default:
		return "unknown"
	}
}

// Options configures a search. Use DefaultOptions and override fields.
type Options struct {
	// MinWeight is the lowest clique weight that may be reported (0 = no lower bound).
	MinWeight int64

	// MaxWeight is the highest clique weight that may be reported (0 = no upper bound).
	// MinWeight == MaxWeight == 0 disables the weight window entirely.
	MaxWeight int64

	// OnlyMaximal restricts reported cliques to maximal ones (no vertex of the
	// graph extends them). With positive weights this never changes the optimum.
	OnlyMaximal bool

	// MaxSize caps clique cardinality and search depth. 0 means DefaultMaxSize.
	MaxSize int

	// Bound selects the pruning bound.
	Bound BoundAlgo

	// TimeLimit is a soft wall-clock budget checked every few thousand
	// search steps. 0 means unlimited.
	TimeLimit time.Duration
}

// DefaultOptions returns the standard search settings: no weight
// window, maximal cliques only, size cap 1000, coloring bound, no time limit.
func DefaultOptions() Options {
	return Options{
		MinWeight:   0,
		MaxWeight:   0,
		OnlyMaximal: true,
		MaxSize:     DefaultMaxSize,
		Bound:       ColoringBound,
	}
}

// Stats counts search events; useful for benchmarking bound quality.
type Stats struct {
	Nodes        int64 // branching steps taken
	BoundPrunes  int64 // subtrees cut by the upper bound
	WindowPrunes int64 // include branches cut because weight exceeded MaxWeight
	Leaves       int64 // leaves evaluated
	Improvements int64 // times the incumbent was replaced
}

// Result is the outcome of one search.
type Result struct {
	// Members has length n; Members[v] is true iff v is in the solution.
	Members []bool

	// Vertices lists the solution in ascending index order.
	Vertices []int

	// Weight is the total weight of Vertices.
	Weight int64

	// Found is false only when no clique satisfies the weight window /
	// maximality / size constraints (or the graph is empty).
	Found bool

	Stats Stats
}
