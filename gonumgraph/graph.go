// SPDX-License-Identifier: MIT

package gonumgraph

import (
	"cmp"
	"context"
	"slices"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/wclique/clique"
	"github.com/katalvlaran/wclique/matrix"
)

// ErrNilGraph is returned when a nil graph is given.
var ErrNilGraph = errors.New("gonumgraph: nil graph")

// WeightFunc returns the weight of a node. A nil WeightFunc weighs every
// node 1.
type WeightFunc func(n graph.Node) int64

// Instance is a gonum graph flattened for the solver. Vertex i of Adj and
// Weights is the node with ID IDs[i]; IDs is ascending.
type Instance struct {
	Adj     *matrix.Dense
	Weights []int64
	IDs     []int64
}

// FromUndirected flattens g. Self-loops are dropped. Weights are not
// validated here; the solver rejects non-positive ones.
//
// Complexity: O(n log n + n²) time, O(n²) space.
func FromUndirected(g graph.Undirected, weight WeightFunc) (*Instance, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	nodes := graph.NodesOf(g.Nodes())
	slices.SortFunc(nodes, func(a, b graph.Node) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	n := len(nodes)
	adj, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	in := &Instance{Adj: adj, Weights: make([]int64, n), IDs: make([]int64, n)}
	index := make(map[int64]int, n)
	var i int
	for i = range nodes {
		in.IDs[i] = nodes[i].ID()
		index[in.IDs[i]] = i
		in.Weights[i] = 1
		if weight != nil {
			in.Weights[i] = weight(nodes[i])
		}
	}

	for i = range nodes {
		to := g.From(in.IDs[i])
		for to.Next() {
			j := index[to.Node().ID()]
			if j > i {
				if err = adj.Set(i, j, 1); err != nil {
					return nil, err
				}
			}
		}
	}

	return in, nil
}

// ToUndirected builds a gonum graph from a one-sided adjacency matrix; node
// IDs are the vertex indices.
func ToUndirected(adj matrix.Matrix) (*simple.UndirectedGraph, error) {
	if err := matrix.ValidateSquare(adj); err != nil {
		return nil, err
	}
	n := adj.Rows()
	g := simple.NewUndirectedGraph()
	var i, j int
	for i = 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			x, err := adj.At(i, j)
			if err != nil {
				return nil, err
			}
			if matrix.IsEdge(x) {
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}

	return g, nil
}

// Nodes maps a solver result back to node IDs, ascending.
func (in *Instance) Nodes(res clique.Result) []int64 {
	out := make([]int64, 0, len(res.Vertices))
	for _, v := range res.Vertices {
		out = append(out, in.IDs[v])
	}

	return out
}

// MaxWeightClique solves maximum-weight clique on g and returns the chosen
// node IDs with the full result.
func MaxWeightClique(ctx context.Context, g graph.Undirected, weight WeightFunc, opts clique.Options) ([]int64, clique.Result, error) {
	in, err := FromUndirected(g, weight)
	if err != nil {
		return nil, clique.Result{}, err
	}
	res, err := clique.SolveContext(ctx, in.Adj, in.Weights, opts)
	if err != nil {
		return nil, clique.Result{}, err
	}

	return in.Nodes(res), res, nil
}

// MaxWeightIndependentSet solves maximum-weight independent set on g.
func MaxWeightIndependentSet(ctx context.Context, g graph.Undirected, weight WeightFunc, opts clique.Options) ([]int64, clique.Result, error) {
	in, err := FromUndirected(g, weight)
	if err != nil {
		return nil, clique.Result{}, err
	}
	res, err := clique.SolveIndependentSet(ctx, in.Adj, in.Weights, opts)
	if err != nil {
		return nil, clique.Result{}, err
	}

	return in.Nodes(res), res, nil
}
