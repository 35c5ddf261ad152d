// Package arcroute plans routes that traverse every street of a road
// network: one drone circuit, or a fleet of snow plows that split the city
// between them.
//
// The pipeline for N vehicles:
//
//	partition  Girvan–Newman edge-betweenness splitting into N regions
//	repair     import shortest connecting streets until a region is reachable from its anchor
//	postman    Chinese Postman circuit (odd-vertex matching + Hierholzer)
//	dipath     turn the undirected circuit into a drivable directed route
//	fleet      run the stages per region concurrently and aggregate a Plan
//
// Supporting packages:
//
//	core       weighted multigraph with keyed parallel edges and derived views
//	dijkstra   shortest paths and shortest-path trees
//	bfs        reachability and connected components
//	centrality Brandes edge betweenness
//	matching   minimum-weight perfect matching (Edmonds' blossom)
//	euler      Eulerian circuits
//	builder    synthetic grids and random road networks
//	graphio    JSON/YAML network and route documents
//
// The arcroute command (cmd/arcroute) exposes drone, fleet and generate.
package arcroute
