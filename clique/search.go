// SPDX-License-Identifier: MIT
// Package clique: branch-and-bound search engine.
//
// The engine explores the clique lattice depth-first with an include/exclude
// binary branching on the lowest-index remaining candidate:
//
//   - include v: clique+v, candidates ∩ N(v) ∩ {>v}, weight+w(v), depth+1;
//   - exclude v: v removed from candidates, scan continues.
//
// Include is tried first, so combined with ascending-index selection the
// first maximum-weight clique discovered is the lexicographically smallest
// one. The incumbent is replaced only on a strictly greater weight, which
// makes the reported witness deterministic.
//
// A node is a leaf when its candidate set is empty or depth == MaxSize.
// Internal nodes are pruned when weight + B(candidates) <= best, B being the
// weighted coloring bound (bound.go).
//
// The recursion runs on an explicit stack of frames, one per depth, whose
// bitsets are allocated once and reused; the current clique is the shared
// prefix clique[:depth]. Stack depth is bounded by min(n, MaxSize)+1.
//
// Complexity:
//   - Worst case exponential in n (exact search).
//   - Per node: O(n/64) bitset work + O(n·k·n/64) for the bound.
//   - Memory: O(n²) bits adjacency + 2 n-bit sets per depth.
package clique

import (
	"context"
	"math"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
)

// checkEvery is the number of search steps between cancellation checks.
const checkEvery = 4096

// frame is the search state of one depth level.
type frame struct {
	cand   *bitset.BitSet // candidates that may still extend clique[:depth]
	common *bitset.BitSet // vertices adjacent to every member of clique[:depth]
	weight int64          // weight of clique[:depth]
}

// engine holds all search data for one invocation. It is never shared
// between calls, which keeps the solver reentrant.
type engine struct {
	g *Graph

	// Policy
	maxSize     int
	useBound    bool
	onlyMaximal bool
	minW, maxW  int64 // resolved window; maxW == MaxInt64 when unbounded

	// Cancellation
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	steps       uint64

	// Search state
	frames  []frame
	clique  []int
	classes []*bitset.BitSet // scratch colour classes for the bound

	// Incumbent (BestSolution)
	best  []int
	bestW int64
	found bool

	stats Stats
}

// newEngine resolves options into engine policy. opts must be validated.
func newEngine(ctx context.Context, g *Graph, opts Options) *engine {
	e := &engine{
		g:           g,
		maxSize:     effectiveMaxSize(opts),
		useBound:    opts.Bound != NoBound,
		onlyMaximal: opts.OnlyMaximal,
		minW:        opts.MinWeight,
		maxW:        opts.MaxWeight,
		ctx:         ctx,
	}
	if e.maxW == 0 {
		e.maxW = math.MaxInt64
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	depth := min(g.n, e.maxSize)
	e.frames = make([]frame, depth+1)
	e.clique = make([]int, 0, depth)

	return e
}

// frameAt returns the frame of the given depth, allocating its bitsets on
// first use.
func (e *engine) frameAt(depth int) *frame {
	f := &e.frames[depth]
	if f.cand == nil {
		f.cand = bitset.New(uint(e.g.n))
		f.common = bitset.New(uint(e.g.n))
	}

	return f
}

// checkpoint performs a rare cancellation test (every checkEvery steps).
func (e *engine) checkpoint() error {
	e.steps++
	if e.steps%checkEvery != 0 {
		return nil
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return ErrTimeLimit
	}
	if err := e.ctx.Err(); err != nil {
		return errors.Wrap(err, "clique: search cancelled")
	}

	return nil
}

// leaf evaluates clique[:depth] as a candidate incumbent.
func (e *engine) leaf(depth int) {
	e.stats.Leaves++
	if depth == 0 {
		return // the empty clique is never reported
	}
	f := &e.frames[depth]
	if f.weight <= e.bestW {
		return
	}
	if f.weight < e.minW || f.weight > e.maxW {
		return
	}
	if e.onlyMaximal && f.common.Any() {
		return
	}
	e.best = append(e.best[:0], e.clique[:depth]...)
	e.bestW = f.weight
	e.found = true
	e.stats.Improvements++
}

// run executes the search to completion or cancellation.
func (e *engine) run() error {
	var n = e.g.n
	if n == 0 {
		return nil
	}

	root := e.frameAt(0)
	root.cand.ClearAll()
	root.cand.FlipRange(0, uint(n))
	root.common.ClearAll()
	root.common.FlipRange(0, uint(n))
	root.weight = 0
	e.clique = e.clique[:0]

	var (
		depth = 0
		f     *frame
		child *frame
		v     uint
		w     int64
	)
	for depth >= 0 {
		if err := e.checkpoint(); err != nil {
			return err
		}
		f = &e.frames[depth]

		if depth == e.maxSize || f.cand.None() {
			e.leaf(depth)
			depth--
			continue
		}
		if e.useBound && f.weight+e.colorBound(f.cand, e.bestW-f.weight) <= e.bestW {
			e.stats.BoundPrunes++
			depth--
			continue
		}

		e.stats.Nodes++
		v, _ = f.cand.NextSet(0)
		f.cand.Clear(v) // exclude branch resumes from here

		w = f.weight + e.g.weights[v]
		if w > e.maxW {
			// Weights are positive: no superset can re-enter the window.
			e.stats.WindowPrunes++
			continue
		}

		child = e.frameAt(depth + 1)
		f.cand.Copy(child.cand)
		child.cand.InPlaceIntersection(e.g.adj[v])
		f.common.Copy(child.common)
		child.common.InPlaceIntersection(e.g.adj[v])
		child.weight = w

		e.clique = append(e.clique[:depth], int(v))
		depth++
	}

	return nil
}
