// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts: edge keys,
// keyed lookups, degree policy, and deterministic enumeration.
package core_test

import (
	"testing"

	"github.com/katalvlaran/arcroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertexLifecycle(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"), "duplicate AddVertex is a no-op")
	assert.Equal(t, 1, g.VertexCount())

	require.NoError(t, g.SetVertexAttr("A", "x", 1.5))
	v, err := g.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v.Metadata["x"])

	require.ErrorIs(t, g.RemoveVertex("B"), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex("A"))
	assert.False(t, g.HasVertex("A"))
}

func TestAddEdgeValidation(t *testing.T) {
	unweighted := core.NewGraph()
	_, err := unweighted.AddEdge("A", "B", 2)
	require.ErrorIs(t, err, core.ErrBadWeight)

	g := core.NewGraph(core.WithWeighted())
	_, err = g.AddEdge("", "B", 1)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "B", -1)
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("A", "A", 1)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("A", "B", 1, core.WithEdgeDirected(true))
	require.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)

	// Restating the default orientation is not an override.
	_, err = g.AddEdge("A", "B", 1, core.WithEdgeDirected(false))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 1)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestAutoKeysDirected(t *testing.T) {
	g := core.NewRoadGraph()

	e1, err := g.AddEdge("A", "B", 10)
	require.NoError(t, err)
	e2, err := g.AddEdge("A", "B", 12)
	require.NoError(t, err)
	e3, err := g.AddEdge("B", "A", 10)
	require.NoError(t, err)

	keyOf := func(id string) int {
		e, err := g.GetEdge(id)
		require.NoError(t, err)
		return e.Key
	}
	assert.Equal(t, 0, keyOf(e1))
	assert.Equal(t, 1, keyOf(e2))
	assert.Equal(t, 0, keyOf(e3), "reverse direction has its own key space")

	_, err = g.AddEdge("A", "B", 3, core.WithEdgeKey(1))
	require.ErrorIs(t, err, core.ErrDuplicateKey)

	e, ok := g.EdgeByKey("A", "B", 1)
	require.True(t, ok)
	assert.Equal(t, 12.0, e.Weight)
	assert.False(t, g.HasEdgeKey("B", "A", 1))
	assert.True(t, g.HasEdgeKey("B", "A", 0))
}

func TestAutoKeysUndirected(t *testing.T) {
	g := core.NewUndirectedRoadGraph()

	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	id, err := g.AddEdge("B", "A", 2)
	require.NoError(t, err)
	e, err := g.GetEdge(id)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Key, "unordered pair shares one key space")

	assert.True(t, g.HasEdgeKey("A", "B", 1))
	assert.True(t, g.HasEdgeKey("B", "A", 0))
	assert.Len(t, g.EdgesBetween("B", "A"), 2)
}

func TestEdgesCreationOrder(t *testing.T) {
	g := core.NewRoadGraph()
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("A", "B", float64(i))
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, float64(i), e.Weight, "edge %s out of order", e.ID)
	}
	assert.True(t, core.EdgeIDLess("e2", "e10"))
}

func TestNeighborsPolicy(t *testing.T) {
	g := core.NewMixedGraph(core.WithWeighted(), core.WithMultiEdges())
	_, err := g.AddEdge("A", "B", 1, core.WithEdgeDirected(true))
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("D", "A", 1, core.WithEdgeDirected(true))
	require.NoError(t, err)

	out, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, out)

	in, err := g.InNeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, in)

	_, err = g.Neighbors("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDegreePolicy(t *testing.T) {
	g := core.NewMixedGraph(core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	_, _ = g.AddEdge("A", "B", 1, core.WithEdgeDirected(true))
	_, _ = g.AddEdge("C", "A", 1, core.WithEdgeDirected(true))
	_, _ = g.AddEdge("A", "D", 1)
	_, _ = g.AddEdge("A", "A", 1)

	in, out, und, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 1, out)
	assert.Equal(t, 3, und, "undirected self-loop counts twice")

	deg := g.Degrees()
	assert.Equal(t, 5, deg["A"])
	assert.Equal(t, 1, deg["B"])
}

func TestStatsAndTotalWeight(t *testing.T) {
	g := core.NewRoadGraph()
	_, _ = g.AddEdge("A", "B", 2.5)
	_, _ = g.AddEdge("B", "B", 1)

	s := g.Stats()
	assert.Equal(t, 2, s.VertexCount)
	assert.Equal(t, 2, s.DirectedEdges)
	assert.Equal(t, 1, s.SelfLoops)
	assert.InDelta(t, 3.5, s.TotalWeight, 1e-9)
	assert.InDelta(t, 3.5, g.TotalWeight(), 1e-9)
}

func TestCloneIsIndependent(t *testing.T) {
	g := core.NewRoadGraph()
	id, err := g.AddEdge("A", "B", 4, core.WithEdgeMetadata(core.AttrName, "Main St"))
	require.NoError(t, err)

	c := g.Clone()
	ce, err := c.GetEdge(id)
	require.NoError(t, err)
	assert.Equal(t, "Main St", ce.Attr(core.AttrName))

	ce.Metadata[core.AttrName] = "Side St"
	orig, _ := g.GetEdge(id)
	assert.Equal(t, "Main St", orig.Attr(core.AttrName))

	nid, err := c.AddEdge("B", "C", 1)
	require.NoError(t, err)
	assert.NotEqual(t, id, nid)

	c.Clear()
	assert.Zero(t, c.VertexCount())
	assert.Equal(t, 2, g.VertexCount())
}

func TestFilterEdgesAndRemoveEdge(t *testing.T) {
	g := core.NewUndirectedRoadGraph()
	a, _ := g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 5)

	g.FilterEdges(func(e *core.Edge) bool { return e.Weight < 3 })
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasEdge("C", "B"))

	require.NoError(t, g.RemoveEdge(a))
	assert.False(t, g.HasEdge("B", "A"))
	require.ErrorIs(t, g.RemoveEdge(a), core.ErrEdgeNotFound)
}
