package matching

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/dijkstra"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrOddCount is returned when an odd number of vertices must be paired.
	ErrOddCount = errors.New("matching: odd number of vertices to pair")

	// ErrUnreachable is returned when two vertices to be paired have no path between them.
	ErrUnreachable = errors.New("matching: no path between vertices")

	// ErrNotPerfect is returned when the matcher leaves a vertex unpaired.
	ErrNotPerfect = errors.New("matching: no perfect matching")
)

// distanceScale converts metres to integral matcher weights.
const distanceScale = 1000

// Pair is one matched couple of vertices with the shortest path U→V.
type Pair struct {
	U, V     string
	Distance float64
	Path     *dijkstra.Path
}

// OddVertices returns the vertices of g with odd degree, sorted. Direction is
// ignored and a self-loop adds two.
func OddVertices(g *core.Graph) []string {
	if g == nil {
		return nil
	}
	deg := g.Degrees()
	var odd []string
	for _, v := range g.Vertices() {
		if deg[v]%2 == 1 {
			odd = append(odd, v)
		}
	}

	return odd
}

// PairPaths computes the shortest path between every pair of nodes, one
// Dijkstra run per node. The result is keyed [i][j] for i < j by index in nodes.
//
// Errors: ErrUnreachable, or any dijkstra error.
func PairPaths(g *core.Graph, nodes []string) ([][]*dijkstra.Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := len(nodes)
	out := make([][]*dijkstra.Path, n)
	for i, u := range nodes {
		out[i] = make([]*dijkstra.Path, n)
		if i == n-1 {
			break
		}
		tree, err := dijkstra.SingleSource(g, u)
		if err != nil {
			return nil, fmt.Errorf("matching: shortest paths from %q: %w", u, err)
		}
		for j := i + 1; j < n; j++ {
			p, err := tree.PathTo(nodes[j])
			if err != nil {
				if errors.Is(err, dijkstra.ErrNoPath) {
					return nil, fmt.Errorf("%w: %s -> %s", ErrUnreachable, u, nodes[j])
				}

				return nil, err
			}
			out[i][j] = p
		}
	}

	return out, nil
}

// MinWeightPerfect returns a perfect matching of nodes 0..n-1 minimizing the
// sum of dist(i, j). dist is only queried for i < j and must be finite and
// non-negative. The result maps each index to its partner.
//
// Errors: ErrOddCount, ErrNotPerfect.
func MinWeightPerfect(n int, dist func(i, j int) float64) ([]int, error) {
	if n%2 == 1 {
		return nil, fmt.Errorf("%w: %d", ErrOddCount, n)
	}
	if n == 0 {
		return nil, nil
	}

	scaled := make([]int64, 0, n*(n-1)/2)
	var maxScaled int64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := int64(math.Round(dist(i, j) * distanceScale))
			if w > maxScaled {
				maxScaled = w
			}
			scaled = append(scaled, w)
		}
	}

	edges := make([]WeightedEdge, 0, len(scaled))
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, WeightedEdge{I: i, J: j, Weight: maxScaled + 1 - scaled[k]})
			k++
		}
	}

	mate := MaxWeightMatching(edges, true)
	if len(mate) != n {
		return nil, ErrNotPerfect
	}
	for v, w := range mate {
		if w < 0 {
			return nil, fmt.Errorf("%w: vertex %d unpaired", ErrNotPerfect, v)
		}
	}

	return mate, nil
}

// Solve pairs the given vertices of g at minimum total shortest-path distance.
// Pairs are oriented U < V and sorted by U.
//
// Errors: ErrGraphNil, ErrOddCount, ErrUnreachable, ErrNotPerfect.
func Solve(g *core.Graph, nodes []string) ([]Pair, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(nodes)%2 == 1 {
		return nil, fmt.Errorf("%w: %d", ErrOddCount, len(nodes))
	}
	if len(nodes) == 0 {
		return nil, nil
	}

	sorted := append([]string(nil), nodes...)
	sort.Strings(sorted)

	paths, err := PairPaths(g, sorted)
	if err != nil {
		return nil, err
	}
	mate, err := MinWeightPerfect(len(sorted), func(i, j int) float64 {
		return paths[i][j].Distance
	})
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, len(sorted)/2)
	for i, j := range mate {
		if i > j {
			continue
		}
		p := paths[i][j]
		pairs = append(pairs, Pair{U: sorted[i], V: sorted[j], Distance: p.Distance, Path: p})
	}

	return pairs, nil
}

// TotalDistance sums the distances of pairs.
func TotalDistance(pairs []Pair) float64 {
	var sum float64
	for _, p := range pairs {
		sum += p.Distance
	}

	return sum
}
