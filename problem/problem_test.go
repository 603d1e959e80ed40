// SPDX-License-Identifier: MIT

package problem_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wclique/builder"
	"github.com/katalvlaran/wclique/clique"
	"github.com/katalvlaran/wclique/problem"
)

const twoDocs = `name: triangles
weights: [1, 1, 1, 2, 1, 1]
edges: [[0, 1], [0, 2], [1, 2], [2, 3], [3, 4], [3, 5], [4, 5]]
---
name: linked-mis
mode: independent-set
weights: [3, 1, 4, 2, 1, 1]
adjacency:
  - "011000"
  - "001000"
  - "000100"
  - "000011"
  - "000001"
  - "000000"
options:
  only_maximal: false
  max_size: 4
  bound: none
  time_limit: 2s
`

func ptr[T any](v T) *T { return &v }

func TestDecode_MultiDocument(t *testing.T) {
	got, err := problem.Decode(strings.NewReader(twoDocs))
	require.NoError(t, err)

	want := []*problem.Problem{
		{
			Name:    "triangles",
			Weights: []int64{1, 1, 1, 2, 1, 1},
			Edges:   [][]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {3, 4}, {3, 5}, {4, 5}},
		},
		{
			Name:      "linked-mis",
			Mode:      problem.ModeIndependentSet,
			Weights:   []int64{3, 1, 4, 2, 1, 1},
			Adjacency: []string{"011000", "001000", "000100", "000011", "000001", "000000"},
			Options: &problem.Options{
				OnlyMaximal: ptr(false),
				MaxSize:     ptr(4),
				Bound:       "none",
				TimeLimit:   "2s",
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestProblem_Solve(t *testing.T) {
	ps, err := problem.Decode(strings.NewReader(twoDocs))
	require.NoError(t, err)

	res, err := ps[0].Solve(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 5}, res.Vertices)

	res, err = ps[1].Solve(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, false, true, false, false}, res.Members)
	require.Zero(t, res.Stats.BoundPrunes)

	override := clique.DefaultOptions()
	override.MaxWeight = 3
	res, err = ps[0].Solve(context.Background(), &override)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Vertices)
}

func TestProblem_SolverOptions(t *testing.T) {
	p := &problem.Problem{Options: &problem.Options{
		MinWeight:   ptr(int64(2)),
		MaxWeight:   ptr(int64(9)),
		OnlyMaximal: ptr(false),
		MaxSize:     ptr(5),
		Bound:       "none",
		TimeLimit:   "1m",
	}}
	opts, err := p.SolverOptions()
	require.NoError(t, err)
	want := clique.Options{MinWeight: 2, MaxWeight: 9, MaxSize: 5, Bound: clique.NoBound, TimeLimit: time.Minute}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	opts, err = (&problem.Problem{}).SolverOptions()
	require.NoError(t, err)
	require.Equal(t, clique.DefaultOptions(), opts)

	_, err = (&problem.Problem{Options: &problem.Options{Bound: "magic"}}).SolverOptions()
	require.ErrorIs(t, err, problem.ErrInvalidProblem)
	_, err = (&problem.Problem{Options: &problem.Options{TimeLimit: "soon"}}).SolverOptions()
	require.ErrorIs(t, err, problem.ErrInvalidProblem)
}

func TestDecode_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown field":    "weights: [1]\ncolour: red\n",
		"bad mode":         "weights: [1]\nmode: vertex-cover\n",
		"edge arity":       "weights: [1, 1]\nedges: [[0, 1, 1]]\n",
		"edge range":       "weights: [1, 1]\nedges: [[0, 2]]\n",
		"both forms":       "weights: [1, 1]\nedges: [[0, 1]]\nadjacency: [\"01\", \"00\"]\n",
		"adjacency digits": "weights: [1, 1]\nadjacency: [\"02\", \"00\"]\n",
		"not yaml":         "weights: [1, \n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := problem.Decode(strings.NewReader(doc))
			require.ErrorIs(t, err, problem.ErrInvalidProblem)
		})
	}
}

func TestSolve_SurfacesSolverErrors(t *testing.T) {
	p := &problem.Problem{Weights: []int64{1, 0}}
	_, err := p.Solve(context.Background(), nil)
	require.ErrorIs(t, err, clique.ErrNonPositiveWeight)

	p = &problem.Problem{Weights: []int64{1, 1}, Adjacency: []string{"011", "000"}}
	_, err = p.Solve(context.Background(), nil)
	require.ErrorIs(t, err, clique.ErrNonSquare)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	in, err := builder.Build(9,
		[]builder.BuilderOption{builder.WithSeed(8), builder.WithWeightRange(1, 5)},
		builder.RandomSparse(0.5))
	require.NoError(t, err)
	orig := []*problem.Problem{
		problem.FromInstance("a", problem.ModeClique, in),
		problem.FromInstance("b", problem.ModeIndependentSet, in),
	}

	path := filepath.Join(t.TempDir(), "problems.yaml")
	require.NoError(t, problem.Save(path, orig...))
	back, err := problem.Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(orig, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	adj, err := back[0].Matrix()
	require.NoError(t, err)
	require.Equal(t, in.Adj.String(), adj.String())

	_, err = problem.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestEncode_Solutions(t *testing.T) {
	ps, err := problem.Decode(strings.NewReader(twoDocs))
	require.NoError(t, err)
	res, err := ps[0].Solve(context.Background(), nil)
	require.NoError(t, err)

	sols := []problem.Solution{
		problem.NewSolution(ps[0], res, 1500*time.Microsecond, nil),
		problem.NewSolution(ps[1], clique.Result{}, 0, clique.ErrTimeLimit),
	}
	var buf bytes.Buffer
	require.NoError(t, problem.Encode(&buf, sols...))

	out := buf.String()
	require.Contains(t, out, "name: triangles")
	require.Contains(t, out, "mode: clique")
	require.Contains(t, out, "vertices: [3, 4, 5]")
	require.Contains(t, out, "weight: 4")
	require.Contains(t, out, "elapsed: 1.5ms")
	require.Contains(t, out, "time limit exceeded")
	require.Equal(t, 1, strings.Count(out, "\n---\n"))
}
