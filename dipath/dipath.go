package dipath

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/dijkstra"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when a nil network is passed.
	ErrGraphNil = errors.New("dipath: graph is nil")

	// ErrBrokenWalk is returned when consecutive circuit moves do not chain.
	ErrBrokenWalk = errors.New("dipath: circuit moves do not chain")

	// ErrNoDirectedPath is returned when no legal route joins the ends of a move.
	ErrNoDirectedPath = errors.New("dipath: no directed path")
)

// Route is a drivable walk over the directed network.
type Route struct {
	Steps []core.Traversal

	// Detours counts circuit moves that could not be driven directly.
	Detours int
}

// Nodes returns the vertex sequence of the route, closing vertex included.
func (r *Route) Nodes() []string { return core.WalkNodes(r.Steps) }

// Distance returns the route length.
func (r *Route) Distance() float64 { return core.WalkLength(r.Steps) }

type move struct{ from, to string }

// builder carries the per-route state: moves already driven and cached
// shortest-path trees per source.
type builder struct {
	g       *core.Graph
	visited map[move]bool
	trees   map[string]*dijkstra.Tree
	route   *Route
}

// Build converts circuit, given over the undirected projection of g, into a
// route over the streets of g.
//
// Errors: ErrGraphNil, ErrBrokenWalk, ErrNoDirectedPath.
func Build(g *core.Graph, circuit []core.Traversal) (*Route, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	for i := 1; i < len(circuit); i++ {
		if circuit[i-1].To != circuit[i].From {
			return nil, fmt.Errorf("%w: step %d ends at %q, step %d starts at %q",
				ErrBrokenWalk, i-1, circuit[i-1].To, i, circuit[i].From)
		}
	}

	b := &builder{
		g:       g,
		visited: make(map[move]bool, len(circuit)),
		trees:   make(map[string]*dijkstra.Tree),
		route:   &Route{Steps: make([]core.Traversal, 0, len(circuit))},
	}
	for _, tr := range circuit {
		if err := b.step(tr.From, tr.To, tr.Key()); err != nil {
			return nil, err
		}
	}

	return b.route, nil
}

func (b *builder) step(src, dst string, key int) error {
	if e, ok := b.g.EdgeByKey(src, dst, key); ok {
		b.drive(core.Traversal{From: src, To: dst, Edge: e})
		return nil
	}
	b.route.Detours++

	if back, ok := b.g.EdgeByKey(dst, src, key); ok && !b.visited[move{dst, src}] {
		if err := b.detour(src, dst); err != nil {
			return err
		}
		b.drive(core.Traversal{From: dst, To: src, Edge: back})
	}
	if err := b.detour(src, dst); err != nil {
		return err
	}
	b.visited[move{src, dst}] = true

	return nil
}

// detour drives the shortest legal route src→dst.
func (b *builder) detour(src, dst string) error {
	tree, ok := b.trees[src]
	if !ok {
		var err error
		if tree, err = dijkstra.SingleSource(b.g, src); err != nil {
			return fmt.Errorf("%w: %s -> %s: %w", ErrNoDirectedPath, src, dst, err)
		}
		b.trees[src] = tree
	}
	p, err := tree.PathTo(dst)
	if err != nil {
		return fmt.Errorf("%w: %s -> %s: %w", ErrNoDirectedPath, src, dst, err)
	}
	for _, tr := range p.Edges {
		b.drive(tr)
	}

	return nil
}

func (b *builder) drive(tr core.Traversal) {
	b.route.Steps = append(b.route.Steps, tr)
	b.visited[move{tr.From, tr.To}] = true
}
