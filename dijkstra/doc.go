// Package dijkstra provides Dijkstra's shortest-path algorithm on street
// networks with non-negative float64 edge lengths.
//
// Overview:
//
//   - Dijkstra computes distances from a single source to every vertex in
//     O((V + E) log V) using a lazy decrease-key min-heap.
//   - SingleSource returns a Tree from which concrete paths (vertex chain plus
//     the exact parallel edge taken at each step) are rebuilt with PathTo.
//   - ShortestPath answers a single from→to query.
//
// Direction policy:
//
//   - Directed edges are followed only from From to To, so one-way streets are
//     honored on the directed road graph.
//   - Undirected edges are followed both ways, which is what the undirected
//     projection and the postman augmentation need.
//
// Determinism:
//
//   - Heap ties resolve by vertex ID and parallel edges by creation order, so
//     equal-length routes are reproducible run to run.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound,
//     ErrNegativeWeight: invalid inputs.
//   - ErrNoPath: the target is unreachable (PathTo, ShortestPath).
//   - ErrBadMaxDistance / ErrBadInfThreshold: panics from option constructors
//     given nonsensical bounds.
package dijkstra
