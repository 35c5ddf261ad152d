// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       keyed lookups for multigraph addressing, plus filtered removals.
// Determinism:
//   - Edges(), EdgesBetween() return edges in creation order (SortEdges).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
//   - Auto-assigned keys are the smallest unused non-negative key.
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under its read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops and the direction override.
//  2. Ensure endpoints via AddVertex.
//  3. Under muEdgeAdj, check the multi-edge constraint and resolve the key.
//  4. Store the edge and link adjacency (mirrored when undirected).
//
// Keys live in a per-endpoint namespace: the ordered pair for directed edges,
// the unordered pair for undirected edges.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed,
//     ErrMixedEdgesNotAllowed, ErrMultiEdgeNotAllowed, ErrDuplicateKey.
//
// Complexity: O(k) where k is the number of parallel edges between the endpoints.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return "", fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}
	if !g.weighted && weight != 0 {
		return "", fmt.Errorf("%w: %v on unweighted graph", ErrBadWeight, weight)
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	directed := g.directed
	if cfg.directed != nil {
		if *cfg.directed != g.directed && !g.allowMixed {
			return "", ErrMixedEdgesNotAllowed
		}
		directed = *cfg.directed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	used := make(map[int]struct{})
	for eid := range g.adjacencyList[from][to] {
		if e := g.edges[eid]; sameKeySpace(e, from, to, directed) {
			used[e.Key] = struct{}{}
		}
	}
	key := cfg.key
	if cfg.keySet {
		if _, taken := used[key]; taken {
			return "", fmt.Errorf("%w: %s->%s key %d", ErrDuplicateKey, from, to, key)
		}
	} else {
		for key = 0; ; key++ {
			if _, taken := used[key]; !taken {
				break
			}
		}
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Key: key, Weight: weight, Directed: directed, Metadata: cfg.metadata}
	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}
	if !directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// sameKeySpace reports whether e shares the key namespace of a new edge from→to.
func sameKeySpace(e *Edge, from, to string, directed bool) bool {
	if e.Directed != directed {
		return false
	}
	if directed {
		return e.From == from && e.To == to
	}

	return true // undirected edges in adjacency[from][to] join the same unordered pair
}

// RemoveEdge deletes one edge and its mirror.
//
// Errors:
//   - ErrEdgeNotFound: no edge with that ID.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge can be traversed from→to.
// Undirected edges are mirrored, so they answer in both directions.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgesBetween returns every edge traversable from→to, in creation order.
func (g *Graph) EdgesBetween(from, to string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacencyList[from][to]
	out := make([]*Edge, 0, len(bucket))
	for eid := range bucket {
		out = append(out, g.edges[eid])
	}
	SortEdges(out)

	return out
}

// EdgeByKey returns the edge traversable from→to carrying the given key.
// When several edges qualify (mixed graphs), a directed edge wins over an
// undirected one, then the smallest ID.
func (g *Graph) EdgeByKey(from, to string, key int) (*Edge, bool) {
	var best *Edge
	for _, e := range g.EdgesBetween(from, to) {
		if e.Key != key {
			continue
		}
		if best == nil || (e.Directed && !best.Directed) {
			best = e
		}
	}

	return best, best != nil
}

// HasEdgeKey reports whether an edge from→to with the given key exists.
func (g *Graph) HasEdgeKey(from, to string, key int) bool {
	_, ok := g.EdgeByKey(from, to, key)

	return ok
}

// Edges returns all edges in creation order (SortEdges).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	SortEdges(out)

	return out
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() float64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var sum float64
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}

// HasDirectedEdges reports whether at least one edge has Directed == true.
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// FilterEdges removes all edges failing the predicate. pred must not mutate the graph.
//
// Complexity: O(E) scan + O(V+E) cleanup.
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	for eid, e := range g.edges {
		if !pred(e) {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	cleanupAdjacency(g)
}

// SortEdges orders edges by creation sequence: shorter IDs first, then
// lexicographically, so "e2" precedes "e10".
func SortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return EdgeIDLess(es[i].ID, es[j].ID) })
}

// EdgeIDLess compares two edge IDs in creation order.
func EdgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

// nextEdgeID returns a new unique textual edge ID ("e1", "e2", ...).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
