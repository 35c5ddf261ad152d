// Package partition splits a street network into k regions with the
// Girvan–Newman divisive method.
//
// The network is projected to an undirected multigraph and self-loops are
// dropped, since they never affect connectivity. Each round removes the edge
// of highest betweenness, recomputing betweenness after every removal,
// until the component count rises above its value at the start of the
// round. Rounds repeat k−1 times or until no edge is left.
//
// Every round is recorded as a Step. The last step is the partition; an
// edgeless graph yields a single step holding its existing components.
//
// Region sizes are whatever the cuts produce. Balancing work between
// vehicles is not a goal of the method.
//
// Complexity: each removal costs one betweenness evaluation, O(V·E).
package partition
