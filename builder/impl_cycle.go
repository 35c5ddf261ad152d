// SPDX-License-Identifier: MIT
// Package: arcroute/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds n vertices via cfg.idFn(0..n-1) and edges i→(i+1) mod n.
//   • On a directed graph the result is a one-way ring unless
//     WithTwoWayStreets is set.
//
// Determinism: vertex order i asc; edge order i asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/arcroute/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		useWeight := g.Weighted()
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if err := addStreet(g, u, v, cfg.weight(useWeight), cfg.twoWay); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}
