package bfs

import (
	"sort"

	"github.com/katalvlaran/arcroute/core"
)

// ConnectedComponents returns the connected components of an undirected
// graph. Each component is sorted lexicographically and components are
// ordered by their smallest vertex ID. Isolated vertices form singleton
// components.
//
// Errors: ErrGraphNil, ErrDirectedGraph.
//
// Complexity: O(V + E).
func ConnectedComponents(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.HasDirectedEdges() {
		return nil, ErrDirectedGraph
	}

	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, seed := range g.Vertices() {
		if seen[seed] {
			continue
		}
		res, err := BFS(g, seed)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// CountComponents returns the number of connected components of an undirected graph.
func CountComponents(g *core.Graph) (int, error) {
	comps, err := ConnectedComponents(g)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}

// IsConnected reports whether every vertex of g that has at least one edge
// lies in a single component. Isolated vertices are ignored; a graph
// without edges is connected.
func IsConnected(g *core.Graph) (bool, error) {
	comps, err := ConnectedComponents(g)
	if err != nil {
		return false, err
	}
	deg := g.Degrees()
	withEdges := 0
	for _, comp := range comps {
		if len(comp) > 1 || deg[comp[0]] > 0 {
			withEdges++
		}
	}

	return withEdges <= 1, nil
}

// Reachable reports whether to can be reached from from following edge
// directions. The search stops as soon as to is visited.
func Reachable(g *core.Graph, from, to string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(to) {
		return false, nil
	}
	found := false
	_, err := BFS(g, from, WithOnVisit(func(id string, _ int) error {
		if id == to {
			found = true
			return ErrStop
		}
		return nil
	}))

	return found, err
}

// ReachableSet returns every vertex reachable from from, including from.
func ReachableSet(g *core.Graph, from string) (map[string]bool, error) {
	res, err := BFS(g, from)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(res.Order))
	for _, id := range res.Order {
		set[id] = true
	}

	return set, nil
}
