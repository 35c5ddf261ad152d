// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID, so edges added to a clone never
//     reuse an ID of the source.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

import "sync/atomic"

// options reconstructs the GraphOption list that produced g's configuration.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}

	return opts
}

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(g.options()...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges
// (IDs, keys and directedness preserved) and adjacency.
// Edge metadata maps are copied; vertex metadata is shared.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		linkEdge(clone, copyEdge(e))
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// Edge IDs resume from "e1".
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// copyEdge duplicates e including a shallow copy of its metadata.
func copyEdge(e *Edge) *Edge {
	ne := *e
	ne.Metadata = copyAttrs(e.Metadata)

	return &ne
}

func copyAttrs(attrs map[string]interface{}) map[string]interface{} {
	if attrs == nil {
		return nil
	}
	out := make(map[string]interface{}, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}

	return out
}

// linkEdge stores e in out's catalog and adjacency without validation.
// Callers own out exclusively (freshly constructed graphs only).
func linkEdge(out *Graph, e *Edge) {
	out.edges[e.ID] = e
	ensureAdjacency(out, e.From, e.To)
	out.adjacencyList[e.From][e.To][e.ID] = struct{}{}
	if !e.Directed && e.From != e.To {
		ensureAdjacency(out, e.To, e.From)
		out.adjacencyList[e.To][e.From][e.ID] = struct{}{}
	}
}
