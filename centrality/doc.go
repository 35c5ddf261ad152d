// Package centrality computes edge-betweenness centrality with Brandes'
// algorithm, the ranking the partitioner uses to decide which street to cut
// next.
//
// The betweenness of an edge is the fraction of shortest paths between all
// vertex pairs that run along it. Paths are counted in hops (edge lengths are
// ignored), one BFS per source vertex, so a full evaluation costs O(V·E).
//
// Multigraphs: shortest paths are counted over distinct neighbor moves, and
// the betweenness of a move u→v is shared evenly by the parallel edges that
// realize it. Self-loops never lie on a shortest path and score zero.
//
// Normalization (default) scales by 1/(n(n−1)). Without it, undirected
// graphs are halved because every pair is discovered from both ends.
//
// Determinism: MostCentralEdge breaks ties by edge creation order.
package centrality
