package core

// Traversal is one move along an edge, in the direction the walk takes it.
// For undirected edges From/To may be the reverse of Edge.From/Edge.To.
type Traversal struct {
	From string
	To   string
	Edge *Edge
}

// Key returns the parallel-edge key of the traversed edge.
func (t Traversal) Key() int {
	if t.Edge == nil {
		return 0
	}

	return t.Edge.Key
}

// Weight returns the length of the traversed edge.
func (t Traversal) Weight() float64 {
	if t.Edge == nil {
		return 0
	}

	return t.Edge.Weight
}

// Reverse returns the same edge taken in the opposite direction.
func (t Traversal) Reverse() Traversal {
	return Traversal{From: t.To, To: t.From, Edge: t.Edge}
}

// WalkLength sums the edge weights of a walk.
func WalkLength(walk []Traversal) float64 {
	var sum float64
	for _, t := range walk {
		sum += t.Weight()
	}

	return sum
}

// WalkNodes returns the vertex sequence of a walk, including its final vertex.
// An empty walk yields nil.
func WalkNodes(walk []Traversal) []string {
	if len(walk) == 0 {
		return nil
	}
	nodes := make([]string, 0, len(walk)+1)
	nodes = append(nodes, walk[0].From)
	for _, t := range walk {
		nodes = append(nodes, t.To)
	}

	return nodes
}

// IsClosedWalk reports whether consecutive traversals chain head to tail and
// the walk ends where it starts. An empty walk is closed.
func IsClosedWalk(walk []Traversal) bool {
	if len(walk) == 0 {
		return true
	}
	for i := 1; i < len(walk); i++ {
		if walk[i-1].To != walk[i].From {
			return false
		}
	}

	return walk[len(walk)-1].To == walk[0].From
}
