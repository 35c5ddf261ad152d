// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation, undirected and directed relaxation, parallel edges, thresholds,
// and path reconstruction.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/dijkstra"
)

func TestDijkstra_Validation(t *testing.T) {
	if _, _, err := dijkstra.Dijkstra(core.NewGraph(core.WithWeighted())); !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
	if _, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X")); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
	if _, _, err := dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source("A")); !errors.Is(err, dijkstra.ErrUnweightedGraph) {
		t.Fatalf("expected ErrUnweightedGraph, got %v", err)
	}
	if _, _, err := dijkstra.Dijkstra(core.NewGraph(core.WithWeighted()), dijkstra.Source("X")); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_UndirectedFollowsBothWays(t *testing.T) {
	// Edges are stored C–B and B–A, so reaching C from A walks both against storage order.
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("C", "B", 2)
	g.AddEdge("B", "A", 1)
	g.AddEdge("A", "C", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 3 {
		t.Fatalf("dist[C] = %g; want 3", dist["C"])
	}
	if prev["C"] != "B" || prev["B"] != "A" {
		t.Fatalf("unexpected predecessors: %v", prev)
	}
}

func TestDijkstra_DirectedRespectsOneWay(t *testing.T) {
	g := core.NewRoadGraph()
	g.AddEdge("A", "B", 2)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 1)
	g.AddEdge("B", "D", 3)
	g.AddEdge("D", "A", 1)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("B"))
	if err != nil {
		t.Fatal(err)
	}
	if prev != nil {
		t.Fatalf("expected nil prev without WithReturnPath, got %v", prev)
	}
	// B→D→A→C: one-way streets force the long way round.
	if dist["C"] != 5 {
		t.Fatalf("dist[C] = %g; want 5", dist["C"])
	}
}

func TestDijkstra_UnreachableIsInf(t *testing.T) {
	g := core.NewRoadGraph()
	g.AddEdge("A", "B", 1)
	g.AddVertex("Z")

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("B"))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(dist["A"], 1) || !math.IsInf(dist["Z"], 1) {
		t.Fatalf("expected +Inf for unreachable vertices, got %v", dist)
	}
}

func TestDijkstra_MaxDistanceAndThreshold(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("A", "C", 100)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(1))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(dist["C"], 1) {
		t.Fatalf("dist[C] = %g; want +Inf beyond MaxDistance", dist["C"])
	}

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(50))
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 2 {
		t.Fatalf("dist[C] = %g; want 2", dist["C"])
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative MaxDistance")
		}
	}()
	dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
}

func TestShortestPath_PicksCheapestParallelEdge(t *testing.T) {
	g := core.NewRoadGraph()
	g.AddEdge("A", "B", 9)
	g.AddEdge("A", "B", 4)
	g.AddEdge("B", "C", 1)

	p, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if p.Distance != 5 {
		t.Fatalf("distance = %g; want 5", p.Distance)
	}
	if len(p.Edges) != 2 || p.Edges[0].Key() != 1 {
		t.Fatalf("expected A→B via key 1, got %+v", p.Edges)
	}
	if got := p.Nodes; len(got) != 3 || got[0] != "A" || got[2] != "C" {
		t.Fatalf("nodes = %v", got)
	}
}

func TestShortestPath_Errors(t *testing.T) {
	g := core.NewRoadGraph()
	g.AddEdge("A", "B", 1)

	if _, err := dijkstra.ShortestPath(g, "B", "A"); !errors.Is(err, dijkstra.ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
	if _, err := dijkstra.ShortestPath(g, "A", "Q"); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound, got %v", err)
	}

	p, err := dijkstra.ShortestPath(g, "A", "A")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Edges) != 0 || len(p.Nodes) != 1 || p.Distance != 0 {
		t.Fatalf("trivial path = %+v", p)
	}
}

func TestSingleSource_PathsFromTree(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)

	tree, err := dijkstra.SingleSource(g, "D")
	if err != nil {
		t.Fatal(err)
	}
	p, err := tree.PathTo("A")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"D", "C", "B", "A"}
	for i, v := range want {
		if p.Nodes[i] != v {
			t.Fatalf("nodes = %v; want %v", p.Nodes, want)
		}
	}
	for _, step := range p.Edges {
		if step.Edge.Other(step.From) != step.To {
			t.Fatalf("traversal %+v does not match its edge", step)
		}
	}
}
