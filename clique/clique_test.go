// SPDX-License-Identifier: MIT

package clique_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wclique/builder"
	"github.com/katalvlaran/wclique/clique"
	"github.com/katalvlaran/wclique/matrix"
)

// mustBytes builds a Dense from a 0/1 literal or fails the test.
func mustBytes(t *testing.T, rows [][]uint8) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromBytes(rows)
	require.NoError(t, err)

	return m
}

// twoTriangles is {0,1,2} and {3,4,5}, optionally linked by the edge 2-3.
func twoTriangles(linked bool) [][]uint8 {
	var link uint8
	if linked {
		link = 1
	}

	return [][]uint8{
		{0, 1, 1, 0, 0, 0},
		{0, 0, 1, 0, 0, 0},
		{0, 0, 0, link, 0, 0},
		{0, 0, 0, 0, 1, 1},
		{0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0},
	}
}

type vectorCase struct {
	name    string
	adj     [][]uint8
	weights []int64
	want    []bool
}

// CliqueSuite pins the literal input/output vectors of both operations.
type CliqueSuite struct {
	suite.Suite
	opts clique.Options
}

func (s *CliqueSuite) SetupTest() {
	s.opts = clique.DefaultOptions()
}

func (s *CliqueSuite) TestMaxWeightCliqueVectors() {
	cases := []vectorCase{
		{"single vertex with self loop", [][]uint8{{1}}, []int64{1}, []bool{true}},
		{"single vertex heavier", [][]uint8{{1}}, []int64{2}, []bool{true}},
		{"symmetric edge", [][]uint8{{0, 1}, {1, 0}}, []int64{1, 1}, []bool{true, true}},
		{"only upper part matters", [][]uint8{{1, 1}, {0, 0}}, []int64{1, 1}, []bool{true, true}},
		{"tie picks lowest index", [][]uint8{{0, 0}, {0, 0}}, []int64{1, 1}, []bool{true, false}},
		{"heavier singleton wins", [][]uint8{{0, 0}, {0, 0}}, []int64{1, 2}, []bool{false, true}},
		{"isolated heaviest", [][]uint8{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, []int64{1, 2, 3}, []bool{false, false, true}},
		{"complete symmetric K3", [][]uint8{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}}, []int64{1, 2, 3}, []bool{true, true, true}},
		{"complete one-sided K3", [][]uint8{{0, 1, 1}, {0, 0, 1}, {0, 0, 0}}, []int64{1, 2, 3}, []bool{true, true, true}},
		{"edge beats heavier vertex", [][]uint8{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}}, []int64{2, 3, 4}, []bool{true, true, false}},
		{"vertex beats lighter edge", [][]uint8{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}}, []int64{2, 3, 6}, []bool{false, false, true}},
		{
			"complete K4",
			[][]uint8{{0, 1, 1, 1}, {0, 0, 1, 1}, {0, 0, 0, 1}, {0, 0, 0, 0}},
			[]int64{2, 3, 4, 5},
			[]bool{true, true, true, true},
		},
		{
			"two edges, second heavier",
			[][]uint8{{0, 0, 1, 0}, {0, 0, 0, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			[]int64{2, 3, 4, 5},
			[]bool{false, true, false, true},
		},
		{
			"two edges, first heavier",
			[][]uint8{{0, 0, 1, 0}, {0, 0, 0, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			[]int64{2, 3, 7, 5},
			[]bool{true, false, true, false},
		},
		{
			"three edges",
			[][]uint8{{0, 0, 1, 0}, {0, 0, 0, 1}, {0, 0, 0, 1}, {0, 0, 0, 0}},
			[]int64{2, 3, 4, 5},
			[]bool{false, false, true, true},
		},
		{"disjoint triangles", twoTriangles(false), []int64{1, 1, 1, 2, 1, 1}, []bool{false, false, false, true, true, true}},
		{"linked triangles", twoTriangles(true), []int64{1, 1, 1, 2, 1, 1}, []bool{false, false, false, true, true, true}},
		{
			"equal-weight edges pick lexicographically smallest",
			[][]uint8{{0, 0, 1}, {0, 0, 1}, {0, 0, 0}},
			[]int64{2, 2, 1},
			[]bool{true, false, true},
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			got, err := clique.MaxWeightClique(mustBytes(s.T(), tc.adj), tc.weights, s.opts)
			s.Require().NoError(err)
			s.Require().Equal(tc.want, got)
		})
	}
}

func (s *CliqueSuite) TestMaxWeightIndependentSetVectors() {
	cases := []vectorCase{
		{"single vertex", [][]uint8{{0}}, []int64{1}, []bool{true}},
		{"no edges takes all", [][]uint8{{0, 0}, {0, 0}}, []int64{1, 1}, []bool{true, true}},
		{"edge picks heavier end", [][]uint8{{0, 1}, {0, 0}}, []int64{1, 2}, []bool{false, true}},
		{"one per triangle", twoTriangles(false), []int64{1, 2, 1, 2, 1, 1}, []bool{false, true, false, true, false, false}},
		{"linked triangles", twoTriangles(true), []int64{3, 1, 4, 2, 1, 1}, []bool{true, false, false, true, false, false}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			got, err := clique.MaxWeightIndependentSet(mustBytes(s.T(), tc.adj), tc.weights, s.opts)
			s.Require().NoError(err)
			s.Require().Equal(tc.want, got)
		})
	}
}

func (s *CliqueSuite) TestEmptyGraph() {
	adj, err := matrix.NewDense(0, 0)
	s.Require().NoError(err)

	got, err := clique.MaxWeightClique(adj, nil, s.opts)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Require().Empty(got)

	res, err := clique.Solve(adj, []int64{}, s.opts)
	s.Require().NoError(err)
	s.Require().False(res.Found)
	s.Require().Zero(res.Weight)
}

func TestCliqueSuite(t *testing.T) {
	suite.Run(t, new(CliqueSuite))
}

func TestSolve_ResultFields(t *testing.T) {
	adj := mustBytes(t, twoTriangles(true))
	res, err := clique.Solve(adj, []int64{1, 1, 1, 2, 1, 1}, clique.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []int{3, 4, 5}, res.Vertices)
	require.Equal(t, int64(4), res.Weight)
	require.Equal(t, []bool{false, false, false, true, true, true}, res.Members)
	require.Positive(t, res.Stats.Nodes)
	require.Positive(t, res.Stats.Improvements)
}

func TestValidation_Sentinels(t *testing.T) {
	opts := clique.DefaultOptions()
	sq := mustBytes(t, [][]uint8{{0, 1}, {0, 0}})
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	cases := []struct {
		name    string
		adj     matrix.Matrix
		weights []int64
		opts    clique.Options
		want    error
	}{
		{"nil matrix", nil, []int64{1}, opts, clique.ErrNilMatrix},
		{"typed nil matrix", (*matrix.Dense)(nil), []int64{1}, opts, clique.ErrNilMatrix},
		{"non square", rect, []int64{1, 1}, opts, clique.ErrNonSquare},
		{"length mismatch", sq, []int64{1}, opts, clique.ErrDimensionMismatch},
		{"zero weight", sq, []int64{1, 0}, opts, clique.ErrNonPositiveWeight},
		{"negative weight", sq, []int64{-3, 1}, opts, clique.ErrNonPositiveWeight},
		{"overflow", sq, []int64{1 << 62, 1 << 62}, opts, clique.ErrWeightOverflow},
		{"negative min", sq, []int64{1, 1}, clique.Options{MinWeight: -1}, clique.ErrInvalidOption},
		{"inverted window", sq, []int64{1, 1}, clique.Options{MinWeight: 5, MaxWeight: 2}, clique.ErrInvalidOption},
		{"negative size", sq, []int64{1, 1}, clique.Options{MaxSize: -1}, clique.ErrInvalidOption},
		{"negative time", sq, []int64{1, 1}, clique.Options{TimeLimit: -time.Second}, clique.ErrInvalidOption},
		{"unknown bound", sq, []int64{1, 1}, clique.Options{Bound: clique.BoundAlgo(9)}, clique.ErrInvalidOption},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := clique.MaxWeightClique(tc.adj, tc.weights, tc.opts)
			require.Nil(t, got)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, clique.ErrInvalidArgument)

			_, err = clique.MaxWeightIndependentSet(tc.adj, tc.weights, tc.opts)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidation_SentinelsAreDistinct(t *testing.T) {
	require.False(t, errors.Is(clique.ErrNonSquare, clique.ErrNilMatrix))
	require.False(t, errors.Is(clique.ErrNonPositiveWeight, clique.ErrDimensionMismatch))
	require.False(t, errors.Is(clique.ErrTimeLimit, clique.ErrInvalidArgument))
}

func TestValidation_NonFiniteUpperEntry(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	adj := &nanUpper{Dense: m}

	_, err = clique.MaxWeightClique(adj, []int64{1, 1}, clique.DefaultOptions())
	require.ErrorIs(t, err, clique.ErrNonFiniteEntry)

	_, err = clique.MaxWeightIndependentSet(adj, []int64{1, 1}, clique.DefaultOptions())
	require.ErrorIs(t, err, clique.ErrNonFiniteEntry)
}

func TestOptions_ZeroValue(t *testing.T) {
	// The zero Options is usable: no window, any clique, default size cap.
	got, err := clique.MaxWeightClique(mustBytes(t, twoTriangles(false)), []int64{1, 1, 1, 2, 1, 1}, clique.Options{})
	require.NoError(t, err)
	require.Equal(t, []bool{false, false, false, true, true, true}, got)
}

func TestOptions_WeightWindow(t *testing.T) {
	adj := mustBytes(t, twoTriangles(false))
	w := []int64{1, 1, 1, 2, 1, 1}

	// Upper end excludes {3,4,5}; best remaining maximal clique is {0,1,2}.
	res, err := clique.Solve(adj, w, clique.Options{MaxWeight: 3, OnlyMaximal: true})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Vertices)
	require.Positive(t, res.Stats.WindowPrunes)

	// Without maximality {3,4} also weighs 3; {0,1,2} still sorts first.
	res, err = clique.Solve(adj, w, clique.Options{MaxWeight: 3})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Vertices)

	// Nothing in [5,9].
	res, err = clique.Solve(adj, w, clique.Options{MinWeight: 5, MaxWeight: 9})
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, make([]bool, 6), res.Members)

	// Lower end only.
	res, err = clique.Solve(adj, w, clique.Options{MinWeight: 4})
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 5}, res.Vertices)
}

func TestOptions_MaxSize(t *testing.T) {
	adj := mustBytes(t, [][]uint8{{0, 1, 1, 1}, {0, 0, 1, 1}, {0, 0, 0, 1}, {0, 0, 0, 0}})
	w := []int64{2, 3, 4, 5}

	res, err := clique.Solve(adj, w, clique.Options{MaxSize: 2})
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, res.Vertices)
	require.Equal(t, int64(9), res.Weight)

	// A binding size cap leaves no maximal clique to report.
	res, err = clique.Solve(adj, w, clique.Options{MaxSize: 2, OnlyMaximal: true})
	require.NoError(t, err)
	require.False(t, res.Found)
}

func TestOptions_NoBoundIsEquivalent(t *testing.T) {
	var seed int64
	for seed = 1; seed <= 20; seed++ {
		in, err := builder.Build(24,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightRange(1, 6)},
			builder.RandomSparse(0.45))
		require.NoError(t, err)

		withBound, err := clique.Solve(in.Adj, in.Weights, clique.DefaultOptions())
		require.NoError(t, err)
		noBound := clique.DefaultOptions()
		noBound.Bound = clique.NoBound
		plain, err := clique.Solve(in.Adj, in.Weights, noBound)
		require.NoError(t, err)

		require.Equal(t, plain.Vertices, withBound.Vertices, "seed %d", seed)
		require.Zero(t, plain.Stats.BoundPrunes)
		require.LessOrEqual(t, withBound.Stats.Nodes, plain.Stats.Nodes)
	}
}

func TestDeterminism(t *testing.T) {
	in, err := builder.Build(40,
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithWeightRange(1, 3)},
		builder.RandomSparse(0.5))
	require.NoError(t, err)

	first, err := clique.Solve(in.Adj, in.Weights, clique.DefaultOptions())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := clique.Solve(in.Adj, in.Weights, clique.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestUpperTriangleOnlySensitivity(t *testing.T) {
	var seed int64
	for seed = 1; seed <= 10; seed++ {
		in, err := builder.Build(12,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightRange(1, 9)},
			builder.RandomSparse(0.5))
		require.NoError(t, err)

		noisy := in.Adj.Clone()
		rng := builder.DeriveSeed(seed, 99)
		var i, j int
		for i = 0; i < in.N(); i++ {
			for j = 0; j <= i; j++ {
				require.NoError(t, noisy.Set(i, j, float64((rng>>uint((i+j)%60))&3)))
			}
		}

		a, err := clique.MaxWeightClique(in.Adj, in.Weights, clique.DefaultOptions())
		require.NoError(t, err)
		b, err := clique.MaxWeightClique(noisy, in.Weights, clique.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, a, b)

		a, err = clique.MaxWeightIndependentSet(in.Adj, in.Weights, clique.DefaultOptions())
		require.NoError(t, err)
		b, err = clique.MaxWeightIndependentSet(noisy, in.Weights, clique.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

func TestComplementDuality(t *testing.T) {
	var seed int64
	for seed = 1; seed <= 10; seed++ {
		in, err := builder.Build(16,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightRange(1, 9)},
			builder.RandomSparse(0.6))
		require.NoError(t, err)

		mis, err := clique.MaxWeightIndependentSet(in.Adj, in.Weights, clique.DefaultOptions())
		require.NoError(t, err)

		comp, err := matrix.UpperComplement(in.Adj)
		require.NoError(t, err)
		viaClique, err := clique.MaxWeightClique(comp, in.Weights, clique.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, viaClique, mis)

		g, err := clique.NewGraph(in.Adj, in.Weights)
		require.NoError(t, err)
		res, err := clique.SolveGraph(context.Background(), g.Complement(), clique.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, mis, res.Members)
		require.True(t, clique.IsIndependentSet(g, res.Vertices))
	}
}

func TestCancellation(t *testing.T) {
	in, err := builder.Build(60,
		[]builder.BuilderOption{builder.WithSeed(5)},
		builder.RandomSparse(0.5))
	require.NoError(t, err)

	opts := clique.DefaultOptions()
	opts.Bound = clique.NoBound
	opts.OnlyMaximal = false

	t.Run("time limit", func(t *testing.T) {
		o := opts
		o.TimeLimit = time.Nanosecond
		_, err := clique.Solve(in.Adj, in.Weights, o)
		require.ErrorIs(t, err, clique.ErrTimeLimit)
	})

	t.Run("context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := clique.SolveContext(ctx, in.Adj, in.Weights, opts)
		require.ErrorIs(t, err, context.Canceled)
		require.NotErrorIs(t, err, clique.ErrInvalidArgument)
	})
}

func TestSolveGraph_Nil(t *testing.T) {
	_, err := clique.SolveGraph(context.Background(), nil, clique.DefaultOptions())
	require.ErrorIs(t, err, clique.ErrInvalidArgument)
}

func TestBoundAlgo_String(t *testing.T) {
	require.Equal(t, "coloring", clique.ColoringBound.String())
	require.Equal(t, "none", clique.NoBound.String())
	require.Equal(t, "unknown", clique.BoundAlgo(7).String())
}

// nanUpper reports NaN at (0,1) and delegates everything else.
type nanUpper struct {
	*matrix.Dense
}

func (m *nanUpper) At(i, j int) (float64, error) {
	if i == 0 && j == 1 {
		return math.NaN(), nil
	}

	return m.Dense.At(i, j)
}
