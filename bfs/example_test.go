package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/arcroute/bfs"
	"github.com/katalvlaran/arcroute/core"
)

// ExampleBFS_GridTraversal demonstrates BFS layering on a 3×3 street grid.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 0)
			}
			if i+1 < 3 {
				g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 0)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleConnectedComponents lists the districts of a network split in two.
func ExampleConnectedComponents() {
	g := core.NewUndirectedRoadGraph()
	g.AddEdge("north1", "north2", 120)
	g.AddEdge("north2", "north3", 80)
	g.AddEdge("south1", "south2", 95)

	comps, _ := bfs.ConnectedComponents(g)
	for _, c := range comps {
		fmt.Println(c)
	}
	// Output:
	// [north1 north2 north3]
	// [south1 south2]
}
