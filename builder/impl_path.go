// SPDX-License-Identifier: MIT
// Package: arcroute/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds n vertices via cfg.idFn and edges i→i+1 for i in [0, n-2].
//   • Weight policy: cfg.weightFn(cfg.rng) on weighted graphs, else 0.
//   • WithTwoWayStreets mirrors every arc on directed graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/arcroute/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}

		useWeight := g.Weighted()
		for i := 0; i < n-1; i++ {
			if err := addStreet(g, cfg.idFn(i), cfg.idFn(i+1), cfg.weight(useWeight), cfg.twoWay); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}
