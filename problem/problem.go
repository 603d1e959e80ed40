// SPDX-License-Identifier: MIT

// Package problem reads and writes clique problems and their solutions as
// YAML. A file may hold several problems as separate YAML documents.
//
//	name: two-triangles
//	mode: clique
//	weights: [1, 1, 1, 2, 1, 1]
//	edges: [[0, 1], [0, 2], [1, 2], [3, 4], [3, 5], [4, 5]]
//	options:
//	  only_maximal: true
//	  time_limit: 10s
//
// The graph is given either as an edge list or as adjacency rows of '0'/'1'
// characters (only the part right of the diagonal is read).
package problem

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/wclique/builder"
	"github.com/katalvlaran/wclique/clique"
	"github.com/katalvlaran/wclique/matrix"
)

// ErrInvalidProblem is returned for structurally invalid problem documents.
var ErrInvalidProblem = errors.New("problem: invalid problem")

// Mode selects the operation to run.
type Mode string

const (
	// ModeClique solves maximum-weight clique (the default).
	ModeClique Mode = "clique"
	// ModeIndependentSet solves maximum-weight independent set.
	ModeIndependentSet Mode = "independent-set"
)

// Options mirrors clique.Options; unset fields keep clique.DefaultOptions.
type Options struct {
	MinWeight   *int64 `yaml:"min_weight,omitempty"`
	MaxWeight   *int64 `yaml:"max_weight,omitempty"`
	OnlyMaximal *bool  `yaml:"only_maximal,omitempty"`
	MaxSize     *int   `yaml:"max_size,omitempty"`
	Bound       string `yaml:"bound,omitempty"`
	TimeLimit   string `yaml:"time_limit,omitempty"`
}

// Problem is one weighted graph plus the operation to run on it.
type Problem struct {
	Name      string   `yaml:"name,omitempty"`
	Mode      Mode     `yaml:"mode,omitempty"`
	Weights   []int64  `yaml:"weights"`
	Edges     [][]int  `yaml:"edges,omitempty,flow"`
	Adjacency []string `yaml:"adjacency,omitempty"`
	Options   *Options `yaml:"options,omitempty"`
}

// FromInstance converts a generated instance into an edge-list problem.
func FromInstance(name string, mode Mode, in *builder.Instance) *Problem {
	p := &Problem{Name: name, Mode: mode, Weights: append([]int64(nil), in.Weights...)}
	var i, j int
	for i = 0; i < in.N(); i++ {
		for j = i + 1; j < in.N(); j++ {
			if in.HasEdge(i, j) {
				p.Edges = append(p.Edges, []int{i, j})
			}
		}
	}

	return p
}

// Validate checks the document structure. Weight positivity is left to the
// solver so that its sentinels surface unchanged.
func (p *Problem) Validate() error {
	switch p.Mode {
	case "", ModeClique, ModeIndependentSet:
	default:
		return errors.Wrapf(ErrInvalidProblem, "%q: unknown mode %q", p.Name, p.Mode)
	}
	if len(p.Edges) > 0 && len(p.Adjacency) > 0 {
		return errors.Wrapf(ErrInvalidProblem, "%q: both edges and adjacency given", p.Name)
	}
	n := len(p.Weights)
	for k, e := range p.Edges {
		if len(e) != 2 {
			return errors.Wrapf(ErrInvalidProblem, "%q: edge %d has %d endpoints", p.Name, k, len(e))
		}
		if e[0] < 0 || e[1] < 0 || e[0] >= n || e[1] >= n {
			return errors.Wrapf(ErrInvalidProblem, "%q: edge %d %v outside [0,%d)", p.Name, k, e, n)
		}
	}
	for r, row := range p.Adjacency {
		if strings.Trim(row, "01") != "" {
			return errors.Wrapf(ErrInvalidProblem, "%q: adjacency row %d has characters other than 0/1", p.Name, r)
		}
	}

	return nil
}

// Matrix builds the one-sided adjacency matrix.
func (p *Problem) Matrix() (*matrix.Dense, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(p.Adjacency) > 0 {
		rows := make([][]uint8, len(p.Adjacency))
		for i, row := range p.Adjacency {
			rows[i] = make([]uint8, len(row))
			for j := range row {
				rows[i][j] = row[j] - '0'
			}
		}
		m, err := matrix.FromBytes(rows)
		if err != nil {
			return nil, errors.WithSecondaryError(errors.Wrapf(ErrInvalidProblem, "%q: adjacency", p.Name), err)
		}

		return m, nil
	}

	n := len(p.Weights)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for _, e := range p.Edges {
		u, v := min(e[0], e[1]), max(e[0], e[1])
		if u == v {
			continue
		}
		if err = m.Set(u, v, 1); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// SolverOptions resolves the document options over clique.DefaultOptions.
func (p *Problem) SolverOptions() (clique.Options, error) {
	opts := clique.DefaultOptions()
	o := p.Options
	if o == nil {
		return opts, nil
	}
	if o.MinWeight != nil {
		opts.MinWeight = *o.MinWeight
	}
	if o.MaxWeight != nil {
		opts.MaxWeight = *o.MaxWeight
	}
	if o.OnlyMaximal != nil {
		opts.OnlyMaximal = *o.OnlyMaximal
	}
	if o.MaxSize != nil {
		opts.MaxSize = *o.MaxSize
	}
	switch o.Bound {
	case "", clique.ColoringBound.String():
		opts.Bound = clique.ColoringBound
	case clique.NoBound.String():
		opts.Bound = clique.NoBound
	default:
		return opts, errors.Wrapf(ErrInvalidProblem, "%q: unknown bound %q", p.Name, o.Bound)
	}
	if o.TimeLimit != "" {
		d, err := time.ParseDuration(o.TimeLimit)
		if err != nil {
			return opts, errors.WithSecondaryError(errors.Wrapf(ErrInvalidProblem, "%q: time_limit", p.Name), err)
		}
		opts.TimeLimit = d
	}

	return opts, nil
}

// Solve runs the problem's operation. override, when non-nil, replaces the
// document options.
func (p *Problem) Solve(ctx context.Context, override *clique.Options) (clique.Result, error) {
	adj, err := p.Matrix()
	if err != nil {
		return clique.Result{}, err
	}
	opts, err := p.SolverOptions()
	if err != nil {
		return clique.Result{}, err
	}
	if override != nil {
		opts = *override
	}
	if p.Mode == ModeIndependentSet {
		return clique.SolveIndependentSet(ctx, adj, p.Weights, opts)
	}

	return clique.SolveContext(ctx, adj, p.Weights, opts)
}
