// Package matching pairs up odd-degree vertices at minimum total
// shortest-path distance, the augmentation step of the Chinese Postman
// problem.
//
// The pairing is a minimum-weight perfect matching on the complete graph of
// odd vertices, where each pair is weighted by its shortest-path distance in
// the street network. It is solved exactly: distances are turned into
// integer weights C − d (millimetre resolution) and fed to a maximum-weight,
// maximum-cardinality blossom matching (MaxWeightMatching), which on a
// complete graph with an even vertex count returns a perfect matching whose
// total distance is minimal.
//
// Each returned Pair carries the concrete shortest path between its ends so
// callers can splice the path into the graph instead of a virtual edge.
//
// Determinism: pairs are oriented U < V and sorted; equal-cost alternatives
// resolve by vertex order inside the matcher and by Dijkstra's tie-breaking
// for paths.
package matching
