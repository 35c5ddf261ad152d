package centrality

import (
	"errors"
	"sort"

	"github.com/katalvlaran/arcroute/core"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrNoEdges is returned by MostCentralEdge when the graph has no edges.
	ErrNoEdges = errors.New("centrality: graph has no edges")
)

// Options configures a betweenness evaluation.
type Options struct {
	Normalized bool
}

// Option is a functional option for EdgeBetweenness.
type Option func(*Options)

// WithNormalized toggles normalization by 1/(n(n−1)).
func WithNormalized(on bool) Option {
	return func(o *Options) { o.Normalized = on }
}

// move is one directed hop between neighbors.
type move struct{ from, to string }

// brandes holds per-evaluation state shared across sources.
type brandes struct {
	vertices []string
	adj      map[string][]string // unique forward neighbors, sorted, no self
	mult     map[move]int        // edges realizing each move
	flow     map[move]float64    // accumulated dependency per move
}

// EdgeBetweenness returns the betweenness of every edge, keyed by edge ID.
//
// Complexity: O(V·E) time, O(V+E) space.
func EdgeBetweenness(g *core.Graph, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := Options{Normalized: true}
	for _, opt := range opts {
		opt(&o)
	}

	b, err := newBrandes(g)
	if err != nil {
		return nil, err
	}
	for _, s := range b.vertices {
		b.accumulate(s)
	}

	n := float64(len(b.vertices))
	scale := 1.0
	switch {
	case o.Normalized && n > 1:
		scale = 1 / (n * (n - 1))
	case !o.Normalized && !g.HasDirectedEdges():
		scale = 0.5
	}

	edges := g.Edges()
	out := make(map[string]float64, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			out[e.ID] = 0
			continue
		}
		fwd := move{e.From, e.To}
		v := b.flow[fwd] / float64(b.mult[fwd])
		if !e.Directed {
			rev := move{e.To, e.From}
			v += b.flow[rev] / float64(b.mult[rev])
		}
		out[e.ID] = v * scale
	}

	return out, nil
}

// MostCentralEdge returns the edge with the highest betweenness and its
// score. Ties go to the edge created first.
func MostCentralEdge(g *core.Graph, opts ...Option) (*core.Edge, float64, error) {
	scores, err := EdgeBetweenness(g, opts...)
	if err != nil {
		return nil, 0, err
	}

	var best *core.Edge
	bestScore := -1.0
	for _, e := range g.Edges() {
		if s := scores[e.ID]; s > bestScore {
			best, bestScore = e, s
		}
	}
	if best == nil {
		return nil, 0, ErrNoEdges
	}

	return best, bestScore, nil
}

func newBrandes(g *core.Graph) (*brandes, error) {
	b := &brandes{
		vertices: g.Vertices(),
		adj:      make(map[string][]string),
		mult:     make(map[move]int),
		flow:     make(map[move]float64),
	}
	for _, v := range b.vertices {
		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			w := e.Other(v)
			if w == v {
				continue
			}
			m := move{v, w}
			if b.mult[m] == 0 {
				b.adj[v] = append(b.adj[v], w)
			}
			b.mult[m]++
		}
	}
	for v := range b.adj {
		sort.Strings(b.adj[v])
	}

	return b, nil
}

// accumulate runs one single-source BFS from s and adds the dependencies of
// s onto b.flow.
func (b *brandes) accumulate(s string) {
	sigma := map[string]float64{s: 1}
	dist := map[string]int{s: 0}
	pred := make(map[string][]string)
	order := make([]string, 0, len(b.vertices))

	queue := []string{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, w := range b.adj[v] {
			dw, seen := dist[w]
			if !seen {
				dw = dist[v] + 1
				dist[w] = dw
				queue = append(queue, w)
			}
			if dw == dist[v]+1 {
				sigma[w] += sigma[v]
				pred[w] = append(pred[w], v)
			}
		}
	}

	delta := make(map[string]float64, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		w := order[i]
		for _, v := range pred[w] {
			c := sigma[v] / sigma[w] * (1 + delta[w])
			b.flow[move{v, w}] += c
			delta[v] += c
		}
	}
}
