// Package fleet plans snow-clearing routes for a fleet of vehicles over a
// street network with one-way streets, and single-flight routes for a
// survey drone.
//
// A fleet plan runs the full pipeline:
//
//	partition.Split        network → k regions (Girvan–Newman)
//	core.SourceSubgraph    region  → streets leaving its vertices
//	repair.Reconnect       region  → drivable from its anchor
//	postman.Solve          region  → covering circuit (undirected)
//	dipath.Build           circuit → drivable route (one-ways honoured)
//
// Regions are independent once split, so the per-region stages run on a
// bounded errgroup. A failing region never blocks the others: the Plan is
// returned with every route that succeeded, aggregates only over those, and
// the error wraps ErrPartialPlan together with one PartitionError per failed
// region.
//
// A drone flies over streets regardless of direction, so Drone solves the
// postman problem once on the undirected projection.
package fleet
