// Package builder assembles synthetic road networks for tests, examples and
// the `arcroute generate` command.
//
// A network is built by BuildGraph (or BuildRoadGraph for the directed,
// weighted, multi-edge shape the planner expects) from an ordered list of
// Constructors, configured through functional BuilderOptions:
//
//   - Topologies:
//     – Grid(rows, cols):             Manhattan grid, IDs "r,c", x/y coordinates.
//     – Cycle(n), Path(n):            rings and chains over cfg ID scheme.
//     – RandomConnected(n, p, oneWay): G(n, p) resampled until connected.
//   - Street direction (directed graphs only):
//     – Grid streets are two-way unless WithOneWayAvenues(k) selects them.
//     – Cycle/Path are one-way unless WithTwoWayStreets() is set.
//     – A two-way street is a pair of opposite arcs sharing one key.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     PrefixedIDFn.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, NormalWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Deterministic output for equal inputs, options and seed.
//   - Option constructors panic on meaningless values; Constructors never
//     panic and report sentinel errors (ErrTooFewVertices, ...).
package builder
