package partition

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/arcroute/bfs"
	"github.com/katalvlaran/arcroute/centrality"
	"github.com/katalvlaran/arcroute/core"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("partition: graph is nil")

	// ErrBadCount is returned when fewer than one region is requested.
	ErrBadCount = errors.New("partition: region count must be at least 1")
)

// Step is the state of the working graph after one round of cuts.
type Step struct {
	// Round is 1-based; 0 marks the initial components when no round ran.
	Round int

	// Removed lists the cut edges in removal order. They belong to the
	// undirected working graph, not to the input.
	Removed []*core.Edge

	// Components are sorted vertex sets ordered by smallest member.
	Components [][]string
}

// Split runs up to k−1 rounds of Girvan–Newman cuts on g and returns every step.
// The result is never empty.
//
// Errors: ErrGraphNil, ErrBadCount, ctx.Err() on cancellation.
func Split(ctx context.Context, g *core.Graph, k int) ([]Step, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, k)
	}

	w := core.UndirectedProjection(g)
	w.FilterEdges(func(e *core.Edge) bool { return e.From != e.To })

	comps, err := bfs.ConnectedComponents(w)
	if err != nil {
		return nil, err
	}
	if w.EdgeCount() == 0 {
		return []Step{{Components: comps}}, nil
	}

	var steps []Step
	for round := 1; round < k && w.EdgeCount() > 0; round++ {
		before := len(comps)
		var removed []*core.Edge
		for len(comps) <= before && w.EdgeCount() > 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			e, _, err := centrality.MostCentralEdge(w)
			if err != nil {
				return nil, fmt.Errorf("partition: round %d: %w", round, err)
			}
			if err := w.RemoveEdge(e.ID); err != nil {
				return nil, fmt.Errorf("partition: remove %s: %w", e.ID, err)
			}
			removed = append(removed, e)

			if comps, err = bfs.ConnectedComponents(w); err != nil {
				return nil, err
			}
		}
		steps = append(steps, Step{Round: round, Removed: removed, Components: comps})
	}
	if len(steps) == 0 {
		steps = append(steps, Step{Components: comps})
	}

	return steps, nil
}

// Partition returns the components of the last Split step.
func Partition(ctx context.Context, g *core.Graph, k int) ([][]string, error) {
	steps, err := Split(ctx, g, k)
	if err != nil {
		return nil, err
	}

	return steps[len(steps)-1].Components, nil
}
