package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arcroute/bfs"
	"github.com/katalvlaran/arcroute/builder"
	"github.com/katalvlaran/arcroute/core"
)

func undirectedOpts() []core.GraphOption {
	return []core.GraphOption{core.WithWeighted(), core.WithMultiEdges()}
}

func TestGridTwoWayStreets(t *testing.T) {
	g, err := builder.BuildRoadGraph(nil, builder.Grid(2, 3))
	require.NoError(t, err)

	assert.Equal(t, 6, g.VertexCount())
	// 4 horizontal + 3 vertical streets, both arcs each.
	assert.Equal(t, 14, g.EdgeCount())
	for _, e := range g.Edges() {
		back, ok := g.EdgeByKey(e.To, e.From, e.Key)
		require.True(t, ok, "%s→%s has no reverse arc", e.From, e.To)
		assert.Equal(t, e.Weight, back.Weight)
	}

	v, err := g.Vertex(builder.GridID(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 200.0, v.Metadata[core.AttrX])
	assert.Equal(t, 100.0, v.Metadata[core.AttrY])
}

func TestGridOneWayAvenues(t *testing.T) {
	g, err := builder.BuildRoadGraph(
		[]builder.BuilderOption{builder.WithOneWayAvenues(1)},
		builder.Grid(2, 2),
	)
	require.NoError(t, err)

	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasEdge("0,0", "0,1"), "avenue 0 runs east")
	assert.False(t, g.HasEdge("0,1", "0,0"))
	assert.True(t, g.HasEdge("1,1", "1,0"), "avenue 1 runs west")
	assert.False(t, g.HasEdge("1,0", "1,1"))
	assert.True(t, g.HasEdge("0,0", "1,0"))
	assert.True(t, g.HasEdge("1,0", "0,0"))
}

func TestGridUndirected(t *testing.T) {
	g, err := builder.BuildGraph(undirectedOpts(), []builder.BuilderOption{builder.WithConstantWeight(50)}, builder.Grid(2, 2))
	require.NoError(t, err)

	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 200.0, g.TotalWeight())
	assert.False(t, g.HasDirectedEdges())
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildRoadGraph(nil, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("3", "0"))
	assert.False(t, g.HasEdge("0", "3"))

	g, err = builder.BuildRoadGraph([]builder.BuilderOption{builder.WithTwoWayStreets()}, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, 8, g.EdgeCount())
	_, ok := g.EdgeByKey("1", "0", 0)
	assert.True(t, ok)
}

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(undirectedOpts(), []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("C", "B"))
}

func TestRandomConnected(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildRoadGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(50, 150)},
			builder.RandomConnected(12, 0.3, 0.25),
		)
		require.NoError(t, err)
		return g
	}

	g := build(3)
	assert.Equal(t, 12, g.VertexCount())
	ok, err := bfs.IsConnected(core.UndirectedProjection(g))
	require.NoError(t, err)
	assert.True(t, ok)
	for _, d := range g.Degrees() {
		assert.Positive(t, d)
	}
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 50.0)
		assert.LessOrEqual(t, e.Weight, 150.0)
	}

	h := build(3)
	require.Equal(t, g.EdgeCount(), h.EdgeCount())
	ge, he := g.Edges(), h.Edges()
	for i := range ge {
		assert.Equal(t, ge[i].From, he[i].From)
		assert.Equal(t, ge[i].To, he[i].To)
		assert.Equal(t, ge[i].Weight, he[i].Weight)
	}
}

func TestRandomConnectedOneWay(t *testing.T) {
	g, err := builder.BuildRoadGraph(
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.RandomConnected(6, 1, 1),
	)
	require.NoError(t, err)

	// Complete graph on 6 intersections, every street one-way.
	assert.Equal(t, 15, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.False(t, g.HasEdge(e.To, e.From), "%s→%s is two-way", e.From, e.To)
	}
}

func TestBuilderErrors(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"grid_zero_rows", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"cycle_too_small", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"path_too_small", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"random_too_small", builder.RandomConnected(1, 0.5, 0), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"random_p_zero", builder.RandomConnected(5, 0, 0), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"random_one_way_range", builder.RandomConnected(5, 0.5, 1.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"random_no_rng", builder.RandomConnected(5, 0.5, 0), nil, builder.ErrNeedRandSource},
		{"random_never_connected", builder.RandomConnected(40, 0.001, 0), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrConstructFailed},
		{"nil_constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildRoadGraph(tc.opts, tc.cons)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithOneWayAvenues(-1) })
	require.Panics(t, func() { builder.WithSpacing(0) })
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "ZZ", builder.ExcelColumnIDFn(701))
	assert.Equal(t, "x7", builder.PrefixedIDFn("x")(7))
	require.Panics(t, func() { builder.SymbolIDFn(26) })
	require.Panics(t, func() { builder.ExcelColumnIDFn(-1) })

	g, err := builder.BuildRoadGraph([]builder.BuilderOption{builder.WithPrefixedIDs("x")}, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"x0", "x1", "x2"}, g.Vertices())
}
