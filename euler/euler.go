package euler

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/arcroute/core"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("euler: graph is nil")

	// ErrDirectedGraph is returned when the graph carries directed edges.
	ErrDirectedGraph = errors.New("euler: graph has directed edges")

	// ErrVertexNotFound is returned when the start vertex is absent.
	ErrVertexNotFound = errors.New("euler: start vertex not found")

	// ErrNotEulerian is returned when some vertex has odd degree.
	ErrNotEulerian = errors.New("euler: graph has odd-degree vertices")

	// ErrDisconnected is returned when the edges do not form one connected piece
	// containing the start vertex.
	ErrDisconnected = errors.New("euler: edges are not connected to start")
)

// OddVertices returns the vertices of odd degree, sorted. A self-loop adds
// two to the degree of its vertex.
func OddVertices(g *core.Graph) []string {
	if g == nil {
		return nil
	}
	deg := g.Degrees()
	var odd []string
	for _, v := range g.Vertices() {
		if deg[v]%2 == 1 {
			odd = append(odd, v)
		}
	}

	return odd
}

// IsEulerian reports whether g has a closed walk using every edge exactly once:
// every degree is even and all edges lie in one connected piece.
func IsEulerian(g *core.Graph) bool {
	if g == nil || g.HasDirectedEdges() || len(OddVertices(g)) > 0 {
		return false
	}
	if g.EdgeCount() == 0 {
		return true
	}
	_, err := Circuit(g, StartVertex(g))

	return err == nil
}

// Circuit returns a closed walk from start that traverses every edge of g
// exactly once. An edgeless graph yields an empty walk.
//
// Errors: ErrGraphNil, ErrDirectedGraph, ErrVertexNotFound, ErrNotEulerian,
// ErrDisconnected.
func Circuit(g *core.Graph, start string) ([]core.Traversal, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.HasDirectedEdges() {
		return nil, ErrDirectedGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, start)
	}
	total := g.EdgeCount()
	if total == 0 {
		return nil, nil
	}
	if odd := OddVertices(g); len(odd) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrNotEulerian, odd)
	}

	adj := make(map[string][]*core.Edge, g.VertexCount())
	for _, v := range g.Vertices() {
		nb, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("euler: neighbors of %q: %w", v, err)
		}
		adj[v] = nb
	}

	used := make(map[string]bool, total)
	next := make(map[string]int, len(adj)) // first possibly-unused position in adj[v]

	type frame struct {
		at  string
		via core.Traversal
	}
	stack := []frame{{at: start}}
	var rev []core.Traversal

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		u := top.at
		list := adj[u]
		i := next[u]
		for i < len(list) && used[list[i].ID] {
			i++
		}
		next[u] = i
		if i == len(list) {
			stack = stack[:len(stack)-1]
			if top.via.Edge != nil {
				rev = append(rev, top.via)
			}
			continue
		}
		e := list[i]
		used[e.ID] = true
		v := e.Other(u)
		stack = append(stack, frame{at: v, via: core.Traversal{From: u, To: v, Edge: e}})
	}

	if len(rev) != total {
		return nil, fmt.Errorf("%w: walked %d of %d edges from %q", ErrDisconnected, len(rev), total, start)
	}

	walk := make([]core.Traversal, len(rev))
	for i, t := range rev {
		walk[len(rev)-1-i] = t
	}

	return walk, nil
}

// StartVertex returns the smallest vertex ID with an incident edge, or ""
// when g has no edges.
func StartVertex(g *core.Graph) string {
	if g == nil {
		return ""
	}
	deg := g.Degrees()
	for _, v := range g.Vertices() {
		if deg[v] > 0 {
			return v
		}
	}

	return ""
}
