package postman

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/arcroute/bfs"
	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/euler"
	"github.com/katalvlaran/arcroute/matching"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("postman: graph is nil")

	// ErrDisconnected is returned when the streets do not form one connected component.
	ErrDisconnected = errors.New("postman: component is not connected")

	// ErrInfeasibleMatching is returned when the odd vertices cannot be perfectly paired.
	ErrInfeasibleMatching = errors.New("postman: odd vertices cannot be paired")

	// ErrBadStart is returned when the requested start vertex has no street.
	ErrBadStart = errors.New("postman: start vertex has no incident street")
)

// Options configures Solve.
type Options struct {
	// Start is the vertex the circuit begins and ends at. Empty selects the
	// smallest vertex ID with an incident street.
	Start string
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithStart fixes the start vertex of the circuit.
func WithStart(id string) Option {
	return func(o *Options) { o.Start = id }
}

// Result is a solved postman tour.
type Result struct {
	// Circuit is the closed walk over real streets of Graph.
	Circuit []core.Traversal

	// Graph is the undirected component the circuit refers to.
	Graph *core.Graph

	// Augmented is Graph plus one core.TrailAugmented edge per matched pair.
	Augmented *core.Graph

	// Odd lists the odd-degree vertices of Graph.
	Odd []string

	// Matching pairs the odd vertices.
	Matching []matching.Pair

	// Distance is the total circuit length.
	Distance float64
}

// Start returns the first vertex of the circuit, or "" for an empty circuit.
func (r *Result) Start() string {
	if len(r.Circuit) == 0 {
		return ""
	}

	return r.Circuit[0].From
}

// Deadhead returns the length driven in excess of the street total.
func (r *Result) Deadhead() float64 {
	return r.Distance - r.Graph.TotalWeight()
}

// Solve computes a minimum-length closed walk covering every edge of g.
// Isolated vertices are ignored; a graph without edges yields an empty circuit.
//
// Errors: ErrGraphNil, ErrDisconnected, ErrInfeasibleMatching, ErrBadStart.
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	u := g
	if g.HasDirectedEdges() {
		u = core.UndirectedProjection(g)
	}

	connected, err := bfs.IsConnected(u)
	if err != nil {
		return nil, fmt.Errorf("postman: connectivity: %w", err)
	}
	if !connected {
		return nil, ErrDisconnected
	}

	res := &Result{Graph: u, Augmented: u.Clone()}
	if u.EdgeCount() == 0 {
		return res, nil
	}

	res.Odd = matching.OddVertices(u)
	res.Matching, err = matching.Solve(u, res.Odd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInfeasibleMatching, err)
	}

	synthetic := make(map[string]matching.Pair, len(res.Matching))
	for _, p := range res.Matching {
		id, err := res.Augmented.AddEdge(p.U, p.V, p.Distance,
			core.WithEdgeMetadata(core.AttrTrail, core.TrailAugmented))
		if err != nil {
			return nil, fmt.Errorf("postman: augment %s-%s: %w", p.U, p.V, err)
		}
		synthetic[id] = p
	}

	start := o.Start
	if start == "" {
		start = euler.StartVertex(res.Augmented)
	}
	if deg := res.Augmented.Degrees(); deg[start] == 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadStart, start)
	}

	walk, err := euler.Circuit(res.Augmented, start)
	if err != nil {
		if errors.Is(err, euler.ErrDisconnected) {
			return nil, fmt.Errorf("%w: %w", ErrDisconnected, err)
		}

		return nil, fmt.Errorf("postman: circuit: %w", err)
	}

	res.Circuit, err = expand(u, walk, synthetic)
	if err != nil {
		return nil, err
	}
	res.Distance = core.WalkLength(res.Circuit)

	return res, nil
}

// expand rewrites walk onto the edges of u, replacing each synthetic edge by
// the street chain of its pair, reversed when walked V→U.
func expand(u *core.Graph, walk []core.Traversal, synthetic map[string]matching.Pair) ([]core.Traversal, error) {
	out := make([]core.Traversal, 0, len(walk))
	for _, tr := range walk {
		p, ok := synthetic[tr.Edge.ID]
		if !ok {
			e, err := u.GetEdge(tr.Edge.ID)
			if err != nil {
				return nil, fmt.Errorf("postman: circuit edge %s: %w", tr.Edge.ID, err)
			}
			out = append(out, core.Traversal{From: tr.From, To: tr.To, Edge: e})
			continue
		}

		chain := p.Path.Edges
		if tr.From == p.U {
			out = append(out, chain...)
			continue
		}
		for i := len(chain) - 1; i >= 0; i-- {
			out = append(out, chain[i].Reverse())
		}
	}

	return out, nil
}
