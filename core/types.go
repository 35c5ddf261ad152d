// Package core defines the central Graph, Vertex, and Edge types used by every
// routing stage, and provides thread-safe primitives for building, querying,
// projecting, and cloning road networks.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be read from several
// partition workers at once.
//
// Errors:
//
//	ErrEmptyVertexID        - vertex ID is the empty string.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrEdgeNotFound         - requested edge does not exist.
//	ErrBadWeight            - negative/NaN weight, or non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed       - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges are disabled.
//	ErrMixedEdgesNotAllowed - per-edge direction override without mixed mode.
//	ErrDuplicateKey         - explicit edge key already used between the same endpoints.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates an invalid weight (negative, NaN, or non-zero on an unweighted graph).
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override on a graph without mixed mode.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")

	// ErrDuplicateKey indicates an explicit key collides with an existing edge between the same endpoints.
	ErrDuplicateKey = errors.New("core: duplicate edge key")
)

// Well-known edge metadata attributes.
const (
	// AttrTrail marks the provenance of an edge in derived graphs.
	AttrTrail = "trail"

	// TrailAugmented is the AttrTrail value of edges added by the postman augmentation.
	TrailAugmented = "augmented"

	// AttrName is the optional street name carried through to emitted routes.
	AttrName = "name"
)

// Well-known vertex metadata attributes.
const (
	// AttrX and AttrY hold planar coordinates of an intersection, in meters.
	AttrX = "x"
	AttrY = "y"
)

// Vertex represents an intersection in the road network.
//
// Metadata stores arbitrary key-value data (e.g. "x","y" coordinates) and is
// shared on clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents one street segment between two vertices.
//
// Key distinguishes parallel edges between the same endpoints; it is the
// value callers use to refer to a specific segment across derived graphs
// (projection, subgraphs, augmentation), since IDs are local to one Graph.
type Edge struct {
	// ID uniquely identifies this edge in its Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Key disambiguates parallel edges between the same endpoints.
	Key int

	// Weight is the segment length in meters.
	Weight float64

	// Directed marks a one-way segment. Undirected edges are traversable both ways.
	Directed bool

	// Metadata carries application attributes (AttrTrail, AttrName, ...).
	Metadata map[string]interface{}
}

// Other returns the endpoint opposite to id. For self-loops it returns id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Attr returns the metadata value stored under name, or nil.
func (e *Edge) Attr(name string) interface{} {
	if e == nil || e.Metadata == nil {
		return nil
	}

	return e.Metadata[name]
}

// IsAugmented reports whether the edge was added by postman augmentation.
func (e *Edge) IsAugmented() bool {
	s, ok := e.Attr(AttrTrail).(string)

	return ok && s == TrailAugmented
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// edgeConfig collects per-edge options before the edge is materialized.
type edgeConfig struct {
	directed *bool
	key      int
	keySet   bool
	metadata map[string]interface{}
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeConfig)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
// An override that differs from the default requires WithMixedEdges.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(c *edgeConfig) { c.directed = &directed }
}

// WithEdgeKey sets an explicit parallel-edge key. Without it the smallest
// unused key between the endpoints is assigned.
func WithEdgeKey(key int) EdgeOption {
	return func(c *edgeConfig) { c.key, c.keySet = key, true }
}

// WithEdgeMetadata sets one metadata attribute on the new edge.
func WithEdgeMetadata(name string, value interface{}) EdgeOption {
	return func(c *edgeConfig) {
		if c.metadata == nil {
			c.metadata = make(map[string]interface{})
		}
		c.metadata[name] = value
	}
}

// WithEdgeAttrs copies every attribute of attrs onto the new edge.
func WithEdgeAttrs(attrs map[string]interface{}) EdgeOption {
	return func(c *edgeConfig) {
		if len(attrs) == 0 {
			return
		}
		if c.metadata == nil {
			c.metadata = make(map[string]interface{}, len(attrs))
		}
		for k, v := range attrs {
			c.metadata[k] = v
		}
	}
}

// Graph is the core in-memory multigraph.
//
// It supports directed vs. undirected (and mixed) edges, weighted vs.
// unweighted edges, parallel edges with keys, and self-loops.
// muVert protects vertices; muEdgeAdj protects edges and adjacencyList.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool // default directedness
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	allowMixed bool // allow mixed directed edges

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[from][to][edgeID]; undirected edges are mirrored.
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
