// SPDX-License-Identifier: MIT
// Package: arcroute/builder
//
// impl_random_connected.go - implementation of RandomConnected(n, p) constructor.
//
// Model: Erdős–Rényi G(n, p) street network, resampled until connected.
//   • Each unordered pair {i,j}, i<j, becomes a street with probability p.
//   • On directed graphs each street is two-way (both arcs, same key), unless
//     it is drawn one-way with probability oneWay; a one-way street runs
//     i→j or j→i with equal odds.
//   • A sample is accepted when every sampled intersection has a street and
//     the undirected projection is connected.
//     At most maxRandomAttempts samples are drawn.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • 0 < p ≤ 1 and 0 ≤ oneWay ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng != nil (else ErrNeedRandSource).
//   • ErrConstructFailed after maxRandomAttempts disconnected samples.
//
// Determinism: trial order i asc, j asc; fixed seed ⇒ identical graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/arcroute/bfs"
	"github.com/katalvlaran/arcroute/core"
)

const (
	methodRandomConnected = "RandomConnected"
	minRandomVertices     = 2
	maxRandomAttempts     = 100
)

// RandomConnected returns a Constructor that samples a connected random
// street network over n intersections. oneWay is the probability that a
// sampled street is one-way on directed graphs; it is ignored otherwise.
func RandomConnected(n int, p, oneWay float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomConnected, n, minRandomVertices, ErrTooFewVertices)
		}
		if p <= 0 || p > 1 || oneWay < 0 || oneWay > 1 {
			return fmt.Errorf("%s: p=%.6f oneWay=%.6f: %w",
				methodRandomConnected, p, oneWay, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		for attempt := 0; attempt < maxRandomAttempts; attempt++ {
			sample := g.CloneEmpty()
			if err := sampleStreets(sample, n, p, oneWay, cfg); err != nil {
				return fmt.Errorf("%s: %w", methodRandomConnected, err)
			}
			ok, err := bfs.IsConnected(core.UndirectedProjection(sample))
			if err != nil {
				return fmt.Errorf("%s: %w", methodRandomConnected, err)
			}
			if !ok || !everyVertexTouched(sample, n, cfg.idFn) {
				continue
			}
			if err = addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
				return fmt.Errorf("%s: %w", methodRandomConnected, err)
			}
			for _, e := range sample.Edges() {
				if _, err = g.AddEdge(e.From, e.To, e.Weight, core.WithEdgeKey(e.Key)); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomConnected, e.From, e.To, err)
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no connected sample in %d attempts: %w",
			methodRandomConnected, maxRandomAttempts, ErrConstructFailed)
	}
}

// sampleStreets draws one G(n, p) sample into g.
func sampleStreets(g *core.Graph, n int, p, oneWay float64, cfg builderConfig) error {
	if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
		return err
	}
	useWeight := g.Weighted()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() >= p {
				continue
			}
			u, v := cfg.idFn(i), cfg.idFn(j)
			twoWay := true
			if g.Directed() && cfg.rng.Float64() < oneWay {
				twoWay = false
				if cfg.rng.Intn(2) == 1 {
					u, v = v, u
				}
			}
			if err := addStreet(g, u, v, cfg.weight(useWeight), twoWay); err != nil {
				return err
			}
		}
	}

	return nil
}

// everyVertexTouched reports whether idFn(0..n-1) all have at least one edge.
func everyVertexTouched(g *core.Graph, n int, idFn IDFn) bool {
	deg := g.Degrees()
	for i := 0; i < n; i++ {
		if deg[idFn(i)] == 0 {
			return false
		}
	}

	return true
}
