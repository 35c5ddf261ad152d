// File: view.go
// Role: Non-mutating derived graphs: node-induced and source-induced
//       subgraphs, and the undirected projection of a road network.
// Determinism:
//   - Derived edges are inserted in the source's creation order, so derived
//     edge IDs are reproducible for the same input.
// Concurrency:
//   - Read locks on the source; the result is a fresh, exclusively owned graph.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph with the vertices v where keep[v] is true
// and every edge whose endpoints are both kept. Edge IDs, keys, and metadata
// are preserved.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	return filteredCopy(g, keep, func(e *Edge) bool { return keep[e.From] && keep[e.To] })
}

// SourceSubgraph returns a new Graph holding every edge whose source vertex is
// in keep, together with its endpoints and the kept vertices themselves. It
// is the edge-induced region a vehicle owns: edges leaving the region are
// included, edges entering it are not.
//
// Complexity: O(V + E).
func SourceSubgraph(g *Graph, keep map[string]bool) *Graph {
	return filteredCopy(g, keep, func(e *Edge) bool { return keep[e.From] })
}

func filteredCopy(g *Graph, keep map[string]bool, pred func(*Edge) bool) *Graph {
	out := NewGraph(g.options()...)

	g.muVert.RLock()
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	edges := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if pred(e) {
			edges = append(edges, e)
		}
	}
	g.muEdgeAdj.RUnlock()

	SortEdges(edges)
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	for _, e := range edges {
		for _, id := range [2]string{e.From, e.To} {
			if _, ok := out.vertices[id]; !ok {
				out.vertices[id] = &Vertex{ID: id, Metadata: g.vertices[id].Metadata}
			}
		}
		linkEdge(out, copyEdge(e))
	}

	return out
}

// UndirectedProjection returns the undirected multigraph view of g.
//
// Every vertex is copied. Each edge (u,v,k) becomes an undirected edge {u,v}
// with key k unless the pair already carries an undirected edge with that
// key, so the two arcs of a two-way street (u→v and v→u sharing key k)
// collapse into one segment. The first arc in creation order supplies the
// weight and metadata.
//
// Complexity: O(V + E·p) where p is the parallel-edge count per pair.
func UndirectedProjection(g *Graph) *Graph {
	out := NewUndirectedRoadGraph()
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		out.vertices[id] = &Vertex{ID: id, Metadata: v.Metadata}
	}

	for _, e := range g.Edges() {
		if out.HasEdgeKey(e.From, e.To, e.Key) {
			continue
		}
		// Weights were validated on insertion into g; keys are unique per pair here.
		_, _ = out.AddEdge(e.From, e.To, e.Weight, WithEdgeKey(e.Key), WithEdgeAttrs(e.Metadata))
	}

	return out
}
