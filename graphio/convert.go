package graphio

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/arcroute/core"
)

// ToGraph builds a directed road graph (core.NewRoadGraph) from doc.
func ToGraph(doc Document) (*core.Graph, error) {
	g := core.NewRoadGraph()

	seen := make(map[string]bool, len(doc.Nodes))
	for i, n := range doc.Nodes {
		if n.ID == "" || seen[n.ID] {
			return nil, fmt.Errorf("%w: nodes[%d] id %q", ErrBadNode, i, n.ID)
		}
		seen[n.ID] = true
		if err := g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("%w: nodes[%d]: %w", ErrBadNode, i, err)
		}
		if n.X != nil {
			_ = g.SetVertexAttr(n.ID, core.AttrX, *n.X)
		}
		if n.Y != nil {
			_ = g.SetVertexAttr(n.ID, core.AttrY, *n.Y)
		}
	}

	for i, e := range doc.Edges {
		if err := addSegment(g, e); err != nil {
			return nil, fmt.Errorf("%w: edges[%d] %s-%s: %w", ErrBadEdge, i, e.From, e.To, err)
		}
	}

	return g, nil
}

// addSegment adds the arc from→to and, for two-way segments, the reverse
// arc with the same key.
func addSegment(g *core.Graph, e Edge) error {
	opts := []core.EdgeOption{core.WithEdgeAttrs(e.Attrs)}
	if e.Key != nil {
		opts = append(opts, core.WithEdgeKey(*e.Key))
	}
	eid, err := g.AddEdge(e.From, e.To, e.Length, opts...)
	if err != nil {
		return err
	}
	if e.OneWay || e.From == e.To {
		return nil
	}
	fwd, err := g.GetEdge(eid)
	if err != nil {
		return err
	}
	_, err = g.AddEdge(e.To, e.From, e.Length, core.WithEdgeAttrs(e.Attrs), core.WithEdgeKey(fwd.Key))

	return err
}

// FromGraph converts g to a document. Opposite directed arcs with equal key,
// length and attributes are folded into one two-way segment; undirected
// edges are two-way.
func FromGraph(g *core.Graph) Document {
	doc := Document{Nodes: []Node{}, Edges: []Edge{}}
	for _, id := range g.Vertices() {
		n := Node{ID: id}
		if v, err := g.Vertex(id); err == nil {
			n.X = coord(v.Metadata[core.AttrX])
			n.Y = coord(v.Metadata[core.AttrY])
		}
		doc.Nodes = append(doc.Nodes, n)
	}

	folded := make(map[string]bool)
	for _, e := range g.Edges() {
		if folded[e.ID] {
			continue
		}
		key := e.Key
		out := Edge{From: e.From, To: e.To, Key: &key, Length: e.Weight, Attrs: e.Metadata}
		if len(out.Attrs) == 0 {
			out.Attrs = nil
		}
		if e.Directed {
			out.OneWay = true
			if rev, ok := g.EdgeByKey(e.To, e.From, e.Key); ok && foldable(e, rev) && !folded[rev.ID] {
				folded[rev.ID] = true
				out.OneWay = false
			}
		}
		doc.Edges = append(doc.Edges, out)
	}

	return doc
}

func foldable(e, rev *core.Edge) bool {
	if !rev.Directed || rev.ID == e.ID || rev.From != e.To || rev.To != e.From {
		return false
	}
	if rev.Weight != e.Weight {
		return false
	}
	if len(e.Metadata) == 0 && len(rev.Metadata) == 0 {
		return true
	}

	return reflect.DeepEqual(e.Metadata, rev.Metadata)
}

// coord reads a numeric coordinate attribute.
func coord(v interface{}) *float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	default:
		return nil
	}

	return &f
}
