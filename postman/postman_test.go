package postman_test

import (
	"testing"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/postman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type street struct {
	from, to string
	length   float64
}

func build(t *testing.T, streets ...street) *core.Graph {
	t.Helper()
	g := core.NewUndirectedRoadGraph()
	for _, s := range streets {
		_, err := g.AddEdge(s.from, s.to, s.length)
		require.NoError(t, err)
	}

	return g
}

// PostmanSuite checks the worked scenarios and the structural properties of
// every solved circuit.
type PostmanSuite struct {
	suite.Suite
}

func TestPostmanSuite(t *testing.T) {
	suite.Run(t, new(PostmanSuite))
}

// checkCircuit asserts the circuit is closed, uses only edges of the graph
// and covers every one of them.
func (s *PostmanSuite) checkCircuit(res *postman.Result) {
	s.True(core.IsClosedWalk(res.Circuit))
	s.InDelta(core.WalkLength(res.Circuit), res.Distance, 1e-9)

	covered := map[string]int{}
	for _, tr := range res.Circuit {
		e, err := res.Graph.GetEdge(tr.Edge.ID)
		s.Require().NoError(err)
		s.False(e.IsAugmented())
		s.ElementsMatch([]string{e.From, e.To}, []string{tr.From, tr.To})
		covered[e.ID]++
	}
	for _, e := range res.Graph.Edges() {
		s.GreaterOrEqual(covered[e.ID], 1, "edge %s not covered", e.ID)
	}

	for v, d := range res.Augmented.Degrees() {
		s.Equal(0, d%2, "vertex %s odd after augmentation", v)
	}
}

func (s *PostmanSuite) TestTriangleIsAlreadyEulerian() {
	g := build(s.T(), street{"0", "1", 1}, street{"1", "2", 2}, street{"2", "0", 3})
	res, err := postman.Solve(g)
	s.Require().NoError(err)

	s.InDelta(6, res.Distance, 1e-9)
	s.Empty(res.Odd)
	s.Empty(res.Matching)
	s.Len(res.Circuit, 3)
	s.Equal(res.Graph.EdgeCount(), res.Augmented.EdgeCount())
	s.InDelta(0, res.Deadhead(), 1e-9)
	s.checkCircuit(res)
}

func (s *PostmanSuite) TestSquareWithDiagonal() {
	g := build(s.T(),
		street{"0", "1", 1}, street{"1", "2", 2}, street{"2", "3", 1}, street{"3", "0", 2}, street{"0", "2", 1})
	res, err := postman.Solve(g)
	s.Require().NoError(err)

	s.Equal([]string{"0", "2"}, res.Odd)
	s.Require().Len(res.Matching, 1)
	s.InDelta(1, res.Matching[0].Distance, 1e-9)
	s.InDelta(8, res.Distance, 1e-9)
	s.Len(res.Circuit, 6)
	s.checkCircuit(res)

	aug := 0
	for _, e := range res.Augmented.Edges() {
		if e.IsAugmented() {
			aug++
		}
	}
	s.Equal(1, aug)
}

func (s *PostmanSuite) TestFiveEdgeScenario() {
	g := build(s.T(),
		street{"0", "1", 2}, street{"1", "2", 3}, street{"2", "3", 4}, street{"3", "0", 5}, street{"0", "2", 1})
	res, err := postman.Solve(g)
	s.Require().NoError(err)
	s.InDelta(16, res.Distance, 1e-9)
	s.checkCircuit(res)
}

func (s *PostmanSuite) TestPathExpandsThroughIntermediateVertices() {
	// a-b-c-d path: odd ends a and d are paired through b and c, so every
	// street is driven twice.
	g := build(s.T(), street{"a", "b", 3}, street{"b", "c", 4}, street{"c", "d", 5})
	res, err := postman.Solve(g)
	s.Require().NoError(err)
	s.InDelta(24, res.Distance, 1e-9)
	s.InDelta(12, res.Deadhead(), 1e-9)
	s.Len(res.Circuit, 6)
	s.checkCircuit(res)
}

func (s *PostmanSuite) TestStartOption() {
	g := build(s.T(), street{"0", "1", 1}, street{"1", "2", 2}, street{"2", "0", 3})
	res, err := postman.Solve(g, postman.WithStart("2"))
	s.Require().NoError(err)
	s.Equal("2", res.Start())

	require.NoError(s.T(), g.AddVertex("island"))
	_, err = postman.Solve(g, postman.WithStart("island"))
	s.ErrorIs(err, postman.ErrBadStart)
}

func (s *PostmanSuite) TestDirectedInputIsProjected() {
	g := core.NewRoadGraph()
	for _, st := range []street{{"A", "B", 100}, {"B", "A", 100}, {"B", "C", 50}, {"C", "A", 70}} {
		_, err := g.AddEdge(st.from, st.to, st.length)
		s.Require().NoError(err)
	}
	res, err := postman.Solve(g)
	s.Require().NoError(err)
	s.False(res.Graph.HasDirectedEdges())
	s.InDelta(220, res.Distance, 1e-9)
	s.checkCircuit(res)
}

func TestSolveErrors(t *testing.T) {
	_, err := postman.Solve(nil)
	assert.ErrorIs(t, err, postman.ErrGraphNil)

	g := build(t, street{"a", "b", 1}, street{"c", "d", 1})
	_, err = postman.Solve(g)
	assert.ErrorIs(t, err, postman.ErrDisconnected)
}

func TestSolveEmptyGraph(t *testing.T) {
	g := core.NewUndirectedRoadGraph()
	require.NoError(t, g.AddVertex("x"))
	res, err := postman.Solve(g)
	require.NoError(t, err)
	assert.Empty(t, res.Circuit)
	assert.Zero(t, res.Distance)
	assert.Equal(t, "", res.Start())
}

func TestIsolatedVerticesAreIgnored(t *testing.T) {
	g := build(t, street{"0", "1", 1}, street{"1", "2", 2}, street{"2", "0", 3})
	require.NoError(t, g.AddVertex("zz"))
	res, err := postman.Solve(g)
	require.NoError(t, err)
	assert.InDelta(t, 6, res.Distance, 1e-9)
}
