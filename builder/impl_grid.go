// SPDX-License-Identifier: MIT
// Package: arcroute/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Model: a Manhattan street grid.
//   • Vertex IDs use the fixed coordinate scheme "r,c" (row-major order),
//     a deliberate exception to cfg.idFn. Each vertex carries core.AttrX = c·spacing
//     and core.AttrY = r·spacing.
//   • Streets connect right (r,c+1) and bottom (r+1,c) neighbors.
//   • On directed graphs every street is two-way (both arcs, same key), except
//     the avenues selected by WithOneWayAvenues: row r is one-way when
//     r mod k == 0; avenue r/k even runs east, odd runs west.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//
// Determinism:
//   • Vertex order: row-major. Edge order: for each (r,c) Right then Bottom.

package builder

import (
	"fmt"

	"github.com/katalvlaran/arcroute/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID Grid assigns to row r, column c.
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
				_ = g.SetVertexAttr(id, core.AttrX, float64(c)*cfg.spacing)
				_ = g.SetVertexAttr(id, core.AttrY, float64(r)*cfg.spacing)
			}
		}

		useWeight := g.Weighted()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					v := GridID(r, c+1)
					twoWay := true
					if cfg.oneWayEvery > 0 && r%cfg.oneWayEvery == 0 {
						twoWay = false
						if (r/cfg.oneWayEvery)%2 == 1 {
							u, v = v, u // westbound
						}
					}
					if err := addStreet(g, u, v, cfg.weight(useWeight), twoWay); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
					u = GridID(r, c)
				}
				if r+1 < rows {
					if err := addStreet(g, u, GridID(r+1, c), cfg.weight(useWeight), true); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
