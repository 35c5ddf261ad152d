// SPDX-License-Identifier: MIT
// Package: arcroute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • rng         = nil                (pure unless seeded)
//   • weightFn    = DefaultWeightFn    (constant DefaultEdgeWeight)
//   • oneWayEvery = 0                  (every grid street is two-way)
//   • twoWay      = false              (Cycle/Path emit forward arcs only)
//   • spacing     = DefaultSpacing     (grid coordinates, meters)

package builder

import (
	"math/rand"
)

// DefaultSpacing is the distance in meters between neighbouring grid
// intersections, used for their x/y coordinates.
const DefaultSpacing = 100.0

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges; used only for weighted graphs.
	weightFn WeightFn
	// Grid: every k-th row is a one-way avenue; 0 disables.
	oneWayEvery int
	// Cycle/Path on directed graphs also emit the reverse arc.
	twoWay bool
	// Grid coordinate spacing in meters.
	spacing float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
		spacing:  DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight, or 0 for unweighted graphs.
func (c builderConfig) weight(weighted bool) float64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}
