// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors for the two road-network shapes and read-only getters.
// Policy:
//   - No algorithms here; every getter is O(1) except Stats.

package core

// NewMixedGraph creates a Graph that allows per-edge directedness overrides
// via WithEdgeDirected. WithMixedEdges is applied first, then opts in order.
//
// Complexity: O(len(opts)).
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// NewRoadGraph creates the directed road-network graph: weighted, directed,
// with parallel edges and self-loops permitted (roundabouts and cul-de-sac
// loops occur in real street data).
func NewRoadGraph(opts ...GraphOption) *Graph {
	base := []GraphOption{WithDirected(true), WithWeighted(), WithMultiEdges(), WithLoops()}

	return NewGraph(append(base, opts...)...)
}

// NewUndirectedRoadGraph creates the undirected counterpart of NewRoadGraph,
// used for projections and postman augmentation.
func NewUndirectedRoadGraph(opts ...GraphOption) *Graph {
	base := []GraphOption{WithDirected(false), WithWeighted(), WithMultiEdges(), WithLoops()}

	return NewGraph(append(base, opts...)...)
}

// Weighted reports whether the graph accepts non-zero edge weights.
func (g *Graph) Weighted() bool { return g.weighted }

// Directed reports the default orientation of new edges.
//
// In mixed graphs individual edges may differ; inspect Edge.Directed or
// HasDirectedEdges for the actual edge set.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// MixedEdges reports whether per-edge directedness overrides are permitted.
func (g *Graph) MixedEdges() bool { return g.allowMixed }

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount     int
	EdgeCount       int
	DirectedEdges   int
	UndirectedEdges int
	SelfLoops       int
	TotalWeight     float64
}

// Stats returns a snapshot summary of the graph.
//
// Complexity: O(V+E). Concurrency: read locks on muVert then muEdgeAdj.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s := &GraphStats{VertexCount: len(g.vertices), EdgeCount: len(g.edges)}
	for _, e := range g.edges {
		if e.Directed {
			s.DirectedEdges++
		} else {
			s.UndirectedEdges++
		}
		if e.From == e.To {
			s.SelfLoops++
		}
		s.TotalWeight += e.Weight
	}

	return s
}
