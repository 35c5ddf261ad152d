// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by vertex ID and parallel edges by creation order,
//     so equal-length alternatives always resolve the same way.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/arcroute/core"
)

// Dijkstra computes shortest distances from Options.Source to all vertices of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise); prev[v] == "" when v is unreachable.
//   - err:  validation error, see package errors.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	r, err := run(g, cfg)
	if err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// SingleSource computes the full shortest-path tree from source. Options other
// than Source are honored.
func SingleSource(g *core.Graph, source string, opts ...Option) (*Tree, error) {
	cfg := DefaultOptions(source)
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Source = source

	r, err := run(g, cfg)
	if err != nil {
		return nil, err
	}

	return &Tree{Source: source, Dist: r.dist, prevEdge: r.prevEdge, prevNode: r.prev}, nil
}

// ShortestPath returns the minimum-length path from→to.
//
// Errors: ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound,
// ErrNegativeWeight, ErrNoPath.
func ShortestPath(g *core.Graph, from, to string) (*Path, error) {
	t, err := SingleSource(g, from)
	if err != nil {
		return nil, err
	}

	return t.PathTo(to)
}

// Reachable reports whether to has a finite distance in the tree.
func (t *Tree) Reachable(to string) bool {
	d, ok := t.Dist[to]

	return ok && !math.IsInf(d, 1)
}

// PathTo reconstructs the path from the tree's source to to.
// The path from the source to itself has one node and no edges.
func (t *Tree) PathTo(to string) (*Path, error) {
	if _, ok := t.Dist[to]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	if !t.Reachable(to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoPath, t.Source, to)
	}

	var steps []core.Traversal
	for v := to; v != t.Source; v = t.prevNode[v] {
		steps = append(steps, core.Traversal{From: t.prevNode[v], To: v, Edge: t.prevEdge[v]})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	p := &Path{Edges: steps, Distance: t.Dist[to]}
	p.Nodes = core.WalkNodes(steps)
	if p.Nodes == nil {
		p.Nodes = []string{t.Source}
	}

	return p, nil
}

func run(g *core.Graph, cfg Options) (*runner, error) {
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	n := g.VertexCount()
	r := &runner{
		g:        g,
		options:  cfg,
		dist:     make(map[string]float64, n),
		prev:     make(map[string]string, n),
		prevEdge: make(map[string]*core.Edge, n),
		visited:  make(map[string]bool, n),
		pq:       make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *core.Graph
	options  Options
	dist     map[string]float64
	prev     map[string]string
	prevEdge map[string]*core.Edge
	visited  map[string]bool
	pq       nodePQ
}

// init sets dist[v] = +Inf for all v and pushes the source at distance 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops vertices in distance order until the heap is empty or the
// frontier passes MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distances of u's neighbors through u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		if e.Directed && e.From != u {
			continue
		}
		v := e.Other(u)
		w := e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		nd := r.dist[u] + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.prevEdge[v] = e
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
