package core_test

import (
	"testing"

	"github.com/katalvlaran/arcroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streets builds a small directed network: a two-way street A<->B, a one-way
// B->C, a one-way C->A, and a dead end C->D.
func streets(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewRoadGraph()
	for _, s := range []struct {
		from, to string
		w        float64
	}{
		{"A", "B", 100}, {"B", "A", 100}, {"B", "C", 50}, {"C", "A", 70}, {"C", "D", 20},
	} {
		_, err := g.AddEdge(s.from, s.to, s.w)
		require.NoError(t, err)
	}

	return g
}

func TestUndirectedProjectionCollapsesTwoWayStreets(t *testing.T) {
	g := streets(t)
	u := core.UndirectedProjection(g)

	assert.False(t, u.Directed())
	assert.Equal(t, g.Vertices(), u.Vertices())
	assert.Equal(t, 4, u.EdgeCount(), "A<->B collapses to one segment")
	assert.InDelta(t, 240, u.TotalWeight(), 1e-9)

	// Every directed edge has its projection entry.
	for _, e := range g.Edges() {
		assert.True(t, u.HasEdgeKey(e.From, e.To, e.Key), "%s->%s/%d", e.From, e.To, e.Key)
	}
}

func TestUndirectedProjectionKeepsDistinctKeys(t *testing.T) {
	g := core.NewRoadGraph()
	_, _ = g.AddEdge("A", "B", 10)
	_, _ = g.AddEdge("A", "B", 11)
	_, _ = g.AddEdge("B", "A", 10)

	u := core.UndirectedProjection(g)
	assert.Equal(t, 2, u.EdgeCount())
	e, ok := u.EdgeByKey("B", "A", 1)
	require.True(t, ok)
	assert.Equal(t, 11.0, e.Weight)
}

func TestSourceSubgraph(t *testing.T) {
	g := streets(t)
	sub := core.SourceSubgraph(g, map[string]bool{"B": true, "C": true})

	// B->A, B->C, C->A, C->D leave the region; A->B enters it and is dropped.
	assert.Equal(t, 4, sub.EdgeCount())
	assert.False(t, sub.HasEdge("A", "B"))
	assert.True(t, sub.HasEdge("C", "D"))
	assert.Equal(t, []string{"A", "B", "C", "D"}, sub.Vertices())
	assert.True(t, sub.Directed())
}

func TestInducedSubgraph(t *testing.T) {
	g := streets(t)
	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true, "C": true})

	assert.Equal(t, []string{"A", "B", "C"}, sub.Vertices())
	assert.Equal(t, 4, sub.EdgeCount())
	assert.False(t, sub.HasVertex("D"))
}

func TestWalkHelpers(t *testing.T) {
	g := streets(t)
	ab, _ := g.EdgeByKey("A", "B", 0)
	bc, _ := g.EdgeByKey("B", "C", 0)
	ca, _ := g.EdgeByKey("C", "A", 0)
	walk := []core.Traversal{
		{From: "A", To: "B", Edge: ab},
		{From: "B", To: "C", Edge: bc},
		{From: "C", To: "A", Edge: ca},
	}

	assert.True(t, core.IsClosedWalk(walk))
	assert.InDelta(t, 220, core.WalkLength(walk), 1e-9)
	assert.Equal(t, []string{"A", "B", "C", "A"}, core.WalkNodes(walk))
	assert.False(t, core.IsClosedWalk(walk[:2]))
	assert.Equal(t, "B", walk[0].Reverse().From)
}
