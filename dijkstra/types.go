// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on street networks.
//
// Dijkstra computes the minimum-length path from a single source vertex to
// all other reachable vertices in a graph with non-negative edge lengths.
// Directed edges are followed only forward; undirected edges both ways.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E) (lazy decrease-key keeps stale heap entries)
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– ReturnPath:       if true, return the predecessor map.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnweightedGraph if the graph is not configured to support weights.
//	– ErrVertexNotFound  if the source or target vertex does not exist.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrNoPath          if the target is unreachable from the source.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/arcroute/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that a requested vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that no path connects the requested vertices.
	ErrNoPath = errors.New("dijkstra: no path between vertices")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           string  // The ID of the source vertex
	ReturnPath       bool    // Whether to return the predecessor map
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered closed (e.g. a blocked street carrying a sentinel length).
// Panics with ErrBadInfThreshold on a non-positive value.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for the given source with no distance cap
// and no impassable edges.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Path is a concrete shortest path: the vertex chain, the edges taken in
// order, and the total length.
type Path struct {
	Nodes    []string
	Edges    []core.Traversal
	Distance float64
}

// Tree is the shortest-path tree rooted at Source. Dist holds +Inf for
// vertices that are not reachable.
type Tree struct {
	Source   string
	Dist     map[string]float64
	prevEdge map[string]*core.Edge
	prevNode map[string]string
}
