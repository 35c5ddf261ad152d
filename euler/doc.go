// Package euler finds Eulerian circuits in undirected multigraphs.
//
// Circuit runs Hierholzer's algorithm over edge identities rather than
// vertex pairs, so parallel streets and self-loops are each walked exactly
// once and the returned traversals point at the concrete *core.Edge taken.
//
// Determinism: at every vertex the unused edge created first is taken first.
//
// Complexity: O(V + E).
package euler
