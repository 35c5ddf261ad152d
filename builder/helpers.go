package builder

import (
	"fmt"

	"github.com/katalvlaran/arcroute/core"
)

// addVerticesWithIDFn adds vertices idFn(0..n-1) in index order.
func addVerticesWithIDFn(g *core.Graph, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		vid := idFn(i)
		if err := g.AddVertex(vid); err != nil {
			return fmt.Errorf("AddVertex(%s): %w", vid, err)
		}
	}

	return nil
}

// addStreet adds u→v with weight w. When twoWay is set and g is directed,
// the reverse arc v→u is added with the same key, so both arcs describe one
// street segment.
func addStreet(g *core.Graph, u, v string, w float64, twoWay bool) error {
	eid, err := g.AddEdge(u, v, w)
	if err != nil {
		return fmt.Errorf("AddEdge(%s→%s, w=%g): %w", u, v, w, err)
	}
	if !twoWay || !g.Directed() || u == v {
		return nil
	}
	e, err := g.GetEdge(eid)
	if err != nil {
		return err
	}
	if _, err = g.AddEdge(v, u, w, core.WithEdgeKey(e.Key)); err != nil {
		return fmt.Errorf("AddEdge(%s→%s, w=%g): %w", v, u, w, err)
	}

	return nil
}
