// Package repair makes a region's street subgraph drivable from one anchor.
//
// Edge-induced regions can leave vertices that exist in the region but
// cannot be reached inside it, typically behind a one-way street that
// leads out of the region. Reconnect picks the region's busiest vertex as
// anchor and, for every vertex the anchor cannot reach, imports the
// shortest anchor→vertex route of the full network, every parallel street
// of each hop included, with its original attributes.
//
// The repaired region may therefore hold streets assigned to a neighbour;
// covering them twice is the price of a drivable, Eulerian-augmentable
// region.
package repair

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/arcroute/bfs"
	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/dijkstra"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when either graph is nil.
	ErrGraphNil = errors.New("repair: graph is nil")

	// ErrUnreachable is returned when the full network has no route from the
	// anchor to a region vertex.
	ErrUnreachable = errors.New("repair: vertex unreachable from anchor in full network")
)

// Report describes what Reconnect changed.
type Report struct {
	// Anchor is the vertex every region vertex is now reachable from.
	Anchor string

	// Reconnected lists the vertices that needed an imported route, in the order handled.
	Reconnected []string

	// Imported counts the streets copied from the full network.
	Imported int
}

// Anchor returns the vertex of sub with the highest total degree; ties go to
// the smallest ID. It returns "" when sub has no vertices.
func Anchor(sub *core.Graph) string {
	if sub == nil {
		return ""
	}
	deg := sub.Degrees()
	best, bestDeg := "", -1
	for _, v := range sub.Vertices() {
		if deg[v] > bestDeg {
			best, bestDeg = v, deg[v]
		}
	}

	return best
}

// Reconnect mutates sub so that every one of its vertices is reachable from
// Anchor(sub), importing streets from full. A sub without edges is left as is.
//
// Errors: ErrGraphNil, ErrUnreachable, dijkstra errors.
func Reconnect(full, sub *core.Graph) (*Report, error) {
	if full == nil || sub == nil {
		return nil, ErrGraphNil
	}
	rep := &Report{}
	if sub.EdgeCount() == 0 {
		return rep, nil
	}
	rep.Anchor = Anchor(sub)

	reach, err := bfs.ReachableSet(sub, rep.Anchor)
	if err != nil {
		return nil, fmt.Errorf("repair: reachability from %q: %w", rep.Anchor, err)
	}

	var tree *dijkstra.Tree
	for _, v := range sub.Vertices() {
		if reach[v] {
			continue
		}

		if tree == nil {
			if tree, err = dijkstra.SingleSource(full, rep.Anchor); err != nil {
				return nil, fmt.Errorf("repair: shortest paths from %q: %w", rep.Anchor, err)
			}
		}
		path, err := tree.PathTo(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s -> %s: %w", ErrUnreachable, rep.Anchor, v, err)
		}

		n, err := splice(full, sub, path)
		if err != nil {
			return nil, err
		}
		rep.Reconnected = append(rep.Reconnected, v)
		rep.Imported += n

		// The imported route may also reach vertices handled later.
		if reach, err = bfs.ReachableSet(sub, rep.Anchor); err != nil {
			return nil, fmt.Errorf("repair: reachability from %q: %w", rep.Anchor, err)
		}
	}

	return rep, nil
}

// splice copies every street of full joining consecutive hops of path into
// sub, skipping keys sub already has. It returns the number of streets added.
func splice(full, sub *core.Graph, path *dijkstra.Path) (int, error) {
	added := 0
	for _, hop := range path.Edges {
		for _, e := range full.EdgesBetween(hop.From, hop.To) {
			if e.Directed && e.From != hop.From {
				continue
			}
			if sub.HasEdgeKey(e.From, e.To, e.Key) {
				continue
			}
			_, err := sub.AddEdge(e.From, e.To, e.Weight,
				core.WithEdgeKey(e.Key), core.WithEdgeAttrs(e.Metadata))
			if err != nil {
				return added, fmt.Errorf("repair: import %s: %w", e.ID, err)
			}
			added++
		}
	}

	return added, nil
}
