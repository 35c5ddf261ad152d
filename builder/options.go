// SPDX-License-Identifier: MIT
// Package: arcroute/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithOneWayAvenues turns every k-th grid row (0, k, 2k, ...) into a one-way
// avenue on directed graphs. Avenues alternate direction: even avenues run
// east (increasing column), odd avenues run west. Panics if k < 0; 0 disables.
func WithOneWayAvenues(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithOneWayAvenues(k<0)")
	}
	return func(c *builderConfig) {
		c.oneWayEvery = k
	}
}

// WithTwoWayStreets makes Cycle and Path emit the reverse arc of every edge
// on directed graphs, sharing the forward arc's key.
func WithTwoWayStreets() BuilderOption {
	return func(c *builderConfig) {
		c.twoWay = true
	}
}

// WithSpacing sets the grid coordinate spacing in meters. Panics if d <= 0.
func WithSpacing(d float64) BuilderOption {
	if d <= 0 {
		panic("builder: WithSpacing(d<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = d
	}
}
