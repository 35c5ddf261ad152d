package fleet_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/dipath"
	"github.com/katalvlaran/arcroute/fleet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoWay(t *testing.T, g *core.Graph, u, v string, length float64) {
	t.Helper()
	_, err := g.AddEdge(u, v, length)
	require.NoError(t, err)
	_, err = g.AddEdge(v, u, length)
	require.NoError(t, err)
}

// twinTriangles: two-way triangles abc and def joined by the two-way street c-d.
func twinTriangles(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewRoadGraph()
	for _, p := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"d", "e"}, {"e", "f"}, {"f", "d"}, {"c", "d"}} {
		twoWay(t, g, p[0], p[1], 10)
	}

	return g
}

func TestPlanTwoVehicles(t *testing.T) {
	p := fleet.NewPlanner(nil)
	plan, err := p.Plan(context.Background(), twinTriangles(t), 2)
	require.NoError(t, err)

	assert.NotEqual(t, [16]byte{}, [16]byte(plan.ID))
	require.Len(t, plan.Routes, 2)
	assert.Equal(t, []string{"a", "b", "c"}, plan.Routes[0].Vertices)
	assert.Equal(t, []string{"d", "e", "f"}, plan.Routes[1].Vertices)

	for _, vr := range plan.Routes {
		require.NoError(t, vr.Err)
		// Triangle plus the bridge driven out and back.
		assert.InDelta(t, 50, vr.Distance, 1e-9, "vehicle %d", vr.Index)
		assert.Equal(t, fleet.PlowType1, vr.Class)
		assert.InDelta(t, 18, vr.Duration.Seconds(), 1e-6)
		assert.True(t, core.IsClosedWalk(vr.Route.Steps))
		assert.Zero(t, vr.Route.Detours)
	}
	assert.InDelta(t, 100, plan.TotalDistance, 1e-9)
	assert.InDelta(t, 70, plan.NetworkLength, 1e-9)
	assert.InDelta(t, 100, plan.ClassDistance[fleet.PlowType1], 1e-9)
	assert.Equal(t, 2, plan.Succeeded())
	assert.Empty(t, plan.Failures)
	assert.InDelta(t, 18, plan.Makespan.Seconds(), 1e-6)
}

func TestPlanClearsEveryStreet(t *testing.T) {
	g := twinTriangles(t)
	plan, err := fleet.NewPlanner(nil).Plan(context.Background(), g, 3)
	require.NoError(t, err)

	// A street is cleared once, in either direction.
	street := func(u, v string, key int) string {
		if v < u {
			u, v = v, u
		}
		return fmt.Sprintf("%s-%s/%d", u, v, key)
	}
	cleared := map[string]bool{}
	for _, vr := range plan.Routes {
		require.NoError(t, vr.Err)
		for _, st := range vr.Route.Steps {
			cleared[street(st.From, st.To, st.Key())] = true
		}
	}
	for _, e := range g.Edges() {
		assert.True(t, cleared[street(e.From, e.To, e.Key)], "%s-%s not cleared", e.From, e.To)
	}
}

func TestPlanPartialFailure(t *testing.T) {
	g := core.NewRoadGraph()
	twoWay(t, g, "a", "b", 10)
	twoWay(t, g, "b", "c", 10)
	twoWay(t, g, "c", "a", 10)
	// A one-way dead end: x->y can be driven but never returned from.
	_, err := g.AddEdge("x", "y", 5)
	require.NoError(t, err)

	p := &fleet.Planner{Type2Share: 0.5, Workers: 1}
	plan, err := p.Plan(context.Background(), g, 1)
	require.Error(t, err)
	require.NotNil(t, plan)

	assert.ErrorIs(t, err, fleet.ErrPartialPlan)
	assert.ErrorIs(t, err, dipath.ErrNoDirectedPath)
	var pe *fleet.PartitionError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Index)
	assert.Equal(t, fleet.StageRoute, pe.Stage)

	require.Len(t, plan.Routes, 2)
	assert.NoError(t, plan.Routes[0].Err)
	assert.Equal(t, fleet.PlowType2, plan.Routes[0].Class)
	assert.Equal(t, fleet.PlowType1, plan.Routes[1].Class)
	assert.Nil(t, plan.Routes[1].Route)
	assert.Equal(t, 1, plan.Succeeded())
	require.Len(t, plan.Failures, 1)
	assert.InDelta(t, 30, plan.TotalDistance, 1e-9, "failed regions are left out of the totals")
	assert.InDelta(t, 30, plan.ClassDistance[fleet.PlowType2], 1e-9)
}

func TestPlanValidation(t *testing.T) {
	p := fleet.NewPlanner(nil)
	_, err := p.Plan(context.Background(), nil, 2)
	assert.ErrorIs(t, err, fleet.ErrGraphNil)

	_, err = p.Plan(context.Background(), twinTriangles(t), 0)
	assert.ErrorIs(t, err, fleet.ErrBadVehicleCount)

	bad := &fleet.Planner{Speeds: fleet.Speeds{DroneKmh: 70, PlowType1Kmh: 0, PlowType2Kmh: 10}}
	_, err = bad.Plan(context.Background(), twinTriangles(t), 1)
	assert.ErrorIs(t, err, fleet.ErrBadSpeed)
}

func TestPlanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := fleet.NewPlanner(nil)
	_, err := p.Plan(ctx, twinTriangles(t), 2)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = p.Plan(ctx, twinTriangles(t), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDrone(t *testing.T) {
	g := core.NewUndirectedRoadGraph()
	for _, s := range []struct {
		u, v string
		l    float64
	}{
		{"0", "1", 1}, {"1", "2", 2}, {"2", "3", 1}, {"3", "0", 2}, {"0", "2", 1},
	} {
		_, err := g.AddEdge(s.u, s.v, s.l)
		require.NoError(t, err)
	}

	f, err := fleet.NewPlanner(nil).Drone(context.Background(), g)
	require.NoError(t, err)
	assert.InDelta(t, 8, f.Distance, 1e-9)
	assert.InDelta(t, 7, f.NetworkLength, 1e-9)
	assert.Len(t, f.Circuit, 6)
	assert.Equal(t, g.EdgeCount()+1, f.Augmented.EdgeCount())
	assert.InDelta(t, 8/(70/3.6), f.Duration.Seconds(), 1e-6)
}

func TestDroneIgnoresOneWays(t *testing.T) {
	g := core.NewRoadGraph()
	_, _ = g.AddEdge("a", "b", 4)
	_, _ = g.AddEdge("b", "c", 4)
	_, _ = g.AddEdge("c", "a", 4)

	f, err := fleet.NewPlanner(nil).Drone(context.Background(), g)
	require.NoError(t, err)
	assert.InDelta(t, 12, f.Distance, 1e-9)
}

func TestSpeeds(t *testing.T) {
	s := fleet.DefaultSpeeds()
	require.NoError(t, s.Validate())
	assert.Equal(t, 70.0, s.For(fleet.Drone))
	assert.Equal(t, 36*time.Second, s.Duration(fleet.PlowType1, 100).Round(time.Second))
	assert.Equal(t, "plow-type-2", fleet.PlowType2.String())

	p := &fleet.Planner{Type2Share: 0.5}
	assert.Equal(t, fleet.PlowType2, p.ClassOf(0, 4))
	assert.Equal(t, fleet.PlowType2, p.ClassOf(1, 4))
	assert.Equal(t, fleet.PlowType1, p.ClassOf(2, 4))
}
