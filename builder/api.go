// SPDX-License-Identifier: MIT
// Package: wclique/builder
//
// api.go: public entry point and the Instance type.
//
// Build creates an n-vertex instance with weights drawn from the configured
// WeightFn (vertex order 0..n-1), then applies constructors in order. Each
// constructor only ADDS edges, so composing them yields the union.
//
// Determinism: for equal (n, options, constructors) the output is identical.

package builder

import (
	"github.com/katalvlaran/wclique/matrix"
)

// Instance is a weighted clique problem: a one-sided adjacency matrix (only
// the strict upper triangle is ever written) and a positive weight vector.
type Instance struct {
	Adj     *matrix.Dense
	Weights []int64
}

// N returns the vertex count.
func (in *Instance) N() int { return len(in.Weights) }

// AddEdge records the undirected edge {u,v} in the upper triangle.
// Self-loops are ignored; out-of-range endpoints return ErrTooFewVertices.
func (in *Instance) AddEdge(u, v int) error {
	if u == v {
		return nil
	}
	if u > v {
		u, v = v, u
	}
	if u < 0 || v >= in.N() {
		return wrapf("AddEdge", ErrTooFewVertices, "edge {%d,%d} outside [0,%d)", u, v, in.N())
	}

	return in.Adj.Set(u, v, 1)
}

// HasEdge reports whether {u,v} is present.
func (in *Instance) HasEdge(u, v int) bool {
	if u > v {
		u, v = v, u
	}
	x, err := in.Adj.At(u, v)

	return err == nil && u != v && matrix.IsEdge(x)
}

// Constructor adds edges to an instance using the resolved configuration.
type Constructor func(in *Instance, cfg builderConfig) error

// Build creates an n-vertex instance and applies constructors in order.
//
// Errors: ErrTooFewVertices (n < 0), ErrNonPositiveWeight, ErrConstructFailed
// (nil constructor), and whatever constructors return.
//
// Complexity: O(n²) for the matrix plus constructor costs.
func Build(n int, bopts []BuilderOption, cons ...Constructor) (*Instance, error) {
	const method = "Build"
	if n < 0 {
		return nil, wrapf(method, ErrTooFewVertices, "n=%d < 0", n)
	}
	cfg := newBuilderConfig(bopts...)

	adj, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, wrapf(method, err, "n=%d", n)
	}
	in := &Instance{Adj: adj, Weights: make([]int64, n)}

	var i int
	for i = 0; i < n; i++ {
		in.Weights[i] = cfg.weightFn(cfg.rng)
		if in.Weights[i] <= 0 {
			return nil, wrapf(method, ErrNonPositiveWeight, "vertex %d got %d", i, in.Weights[i])
		}
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, wrapf(method, ErrConstructFailed, "nil constructor at index %d", i)
		}
		if err = fn(in, cfg); err != nil {
			return nil, wrapf(method, err, "constructor %d", i)
		}
	}

	return in, nil
}
