// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, InNeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() returns edges in creation order.
//   - NeighborIDs()/InNeighborIDs() return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock.

package core

import "sort"

// Neighbors returns every edge that can be left from vertex id:
// directed edges with e.From == id and all incident undirected edges
// (a self-loop appears once).
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e == nil || (e.Directed && e.From != id) {
				continue
			}
			out = append(out, e)
		}
	}
	SortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique vertex IDs reachable from id over one edge,
// sorted lexicographically.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.Other(id)] = struct{}{}
	}

	return sortedKeys(seen), nil
}

// InNeighborIDs returns the unique vertex IDs that reach id over one edge,
// sorted lexicographically. For undirected graphs it equals NeighborIDs.
//
// Complexity: O(E) since no reverse index is kept.
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	seen := make(map[string]struct{})
	for _, e := range g.edges {
		switch {
		case e.To == id:
			seen[e.From] = struct{}{}
		case !e.Directed && e.From == id:
			seen[e.To] = struct{}{}
		}
	}

	return sortedKeys(seen), nil
}

func sortedKeys(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for v := range set {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids
}

// ensureAdjacency guarantees adjacencyList[from][to] is allocated.
// Must be called under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e from from→to and, for undirected non-loop edges,
// from the mirrored bucket. Empty buckets are pruned.
// Must be called under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	unlink := func(a, b string) {
		m := g.adjacencyList[a][b]
		if m == nil {
			return
		}
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[a], b)
		}
	}
	unlink(e.From, e.To)
	if !e.Directed && e.From != e.To {
		unlink(e.To, e.From)
	}
}

// cleanupAdjacency prunes empty nested adjacency maps after bulk removals.
// Must be called under muEdgeAdj write lock.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}
