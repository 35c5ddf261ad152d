// Package core provides the thread-safe in-memory multigraph every routing
// stage works on: road networks with one-way and two-way street segments,
// parallel segments distinguished by keys, and metric edge lengths.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in mixed graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64 meters
//   - Parallel edges (WithMultiEdges), each carrying an integer Key
//   - Self-loops (WithLoops)
//   - Per-edge metadata (WithEdgeMetadata, WithEdgeAttrs)
//   - Deterministic enumeration: Vertices() lexicographic, Edges() in creation order
//
// Road networks:
//
//	NewRoadGraph()            // directed, weighted, multi, loops
//	NewUndirectedRoadGraph()  // the undirected counterpart
//	UndirectedProjection(g)   // two-way arcs sharing a key collapse to one segment
//	SourceSubgraph(g, keep)   // edges whose source is in keep
//	InducedSubgraph(g, keep)  // edges with both endpoints in keep
//
// Keys are the stable handle on a street segment across derived graphs:
// edge IDs ("e1", "e2", ...) are local to one Graph, while (from, to, key)
// addresses the same segment in the directed network, its projection, and
// every partition subgraph. Use EdgeByKey to resolve it.
//
// Walks are expressed as []Traversal; WalkLength, WalkNodes and IsClosedWalk
// summarize them.
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – negative/NaN/Inf weight, or non-zero on unweighted graph
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – direction override without mixed mode
//	ErrDuplicateKey         – explicit key already used between the endpoints
package core
