package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/dijkstra"
)

// ExampleShortestPath routes around a one-way street.
func ExampleShortestPath() {
	g := core.NewRoadGraph()
	g.AddEdge("A", "B", 100) // one-way A→B
	g.AddEdge("B", "C", 40)
	g.AddEdge("C", "A", 40)

	p, err := dijkstra.ShortestPath(g, "B", "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Nodes, p.Distance)

	// Output:
	// [B C A] 80
}

// ExampleDijkstra computes all distances from one source.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[A]=%g, dist[B]=%g, dist[C]=%g\n", dist["A"], dist["B"], dist["C"])

	// Output:
	// dist[A]=0, dist[B]=1, dist[C]=3
}
