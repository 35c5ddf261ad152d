// Package bfs provides breadth-first search over a core.Graph, plus the
// connectivity queries the routing stages rely on.
//
// What
//
//   - BFS explores vertices in non-decreasing hop count from a start vertex
//     and returns a BFSResult (Order, Depth, Parent). Edge weights are ignored.
//   - ConnectedComponents / CountComponents / IsConnected answer undirected
//     connectivity: partition rounds count components after each edge cut and
//     the postman solver checks its input is connected.
//   - Reachable / ReachableSet answer directed reachability, used to find the
//     vertices a partition's anchor cannot reach along one-way streets.
//
// Direction policy
//
//	Directed edges are followed only from From to To; undirected edges both
//	ways. Use core.UndirectedProjection for weak connectivity of a road graph.
//
// Determinism
//
//	NeighborIDs are sorted, so the visit order is reproducible; components are
//	sorted and ordered by their smallest vertex ID.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):        cancellation.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):  skip moves for which fn(curr,neighbor)==false.
//   - WithOnVisit(fn):         visit hook; ErrStop ends the search cleanly.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors.
//   - ErrDirectedGraph from ConnectedComponents on graphs with directed edges.
//   - Wrapped hook errors from OnVisit.
package bfs
