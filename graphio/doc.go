// Package graphio reads and writes road networks and routing results as
// JSON or YAML documents.
//
// A network document lists intersections and street segments:
//
//	nodes:
//	  - {id: A, x: 0, y: 0}
//	edges:
//	  - {from: A, to: B, key: 0, length: 120, oneway: false, attrs: {name: Main St}}
//
// A two-way segment (oneway: false) loads as two opposite arcs sharing the
// key; a one-way segment loads as the single arc from→to. Endpoints missing
// from nodes are created without coordinates. Writing folds opposite arcs
// with equal key and length back into one two-way segment, so a document
// survives a read/write round trip.
//
// Plans and drone flights are written with WriteRoutes and WriteFlight.
// Output is deterministic: nodes sorted by ID, edges in creation order.
package graphio
