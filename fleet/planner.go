package fleet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/dipath"
	"github.com/katalvlaran/arcroute/partition"
	"github.com/katalvlaran/arcroute/postman"
	"github.com/katalvlaran/arcroute/repair"
)

// Planner routes vehicles over a street network. The zero value is usable:
// it logs nothing, uses one worker per CPU, default speeds and type-1 plows only.
//
// A Planner holds no per-run state; one value may serve concurrent calls.
type Planner struct {
	Logger *log.Logger

	// Workers bounds the regions processed at once; <= 0 means GOMAXPROCS.
	Workers int

	// Speeds of each vehicle class; the zero value means DefaultSpeeds.
	Speeds Speeds

	// Type2Share is the fraction of the fleet, in [0,1], made of type-2
	// plows. They take the lowest vehicle indices.
	Type2Share float64
}

// NewPlanner returns a Planner with the given logger and default settings.
func NewPlanner(logger *log.Logger) *Planner {
	return &Planner{Logger: logger, Speeds: DefaultSpeeds()}
}

func (p *Planner) logger() *log.Logger {
	if p.Logger == nil {
		return log.New(io.Discard)
	}

	return p.Logger
}

func (p *Planner) speeds() Speeds {
	if p.Speeds == (Speeds{}) {
		return DefaultSpeeds()
	}

	return p.Speeds
}

func (p *Planner) workers() int {
	if p.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return p.Workers
}

// ClassOf returns the class of vehicle i in a fleet of n.
func (p *Planner) ClassOf(i, n int) Class {
	share := math.Min(math.Max(p.Type2Share, 0), 1)
	if i < int(math.Round(share*float64(n))) {
		return PlowType2
	}

	return PlowType1
}

// Plan splits g into one region per vehicle and routes every region.
//
// The returned Plan is non-nil whenever partitioning succeeded. If some
// regions failed, the error wraps ErrPartialPlan and every *PartitionError;
// check it with errors.Is / errors.As.
//
// Errors: ErrGraphNil, ErrBadVehicleCount, ErrBadSpeed, ErrPartialPlan,
// partition errors, ctx.Err().
func (p *Planner) Plan(ctx context.Context, g *core.Graph, vehicles int) (*Plan, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if vehicles < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadVehicleCount, vehicles)
	}
	speeds := p.speeds()
	if err := speeds.Validate(); err != nil {
		return nil, err
	}

	plan := &Plan{
		ID:            uuid.New(),
		ClassDistance: make(map[Class]float64),
		NetworkLength: core.UndirectedProjection(g).TotalWeight(),
	}
	logger := p.logger().With("run", plan.ID.String())
	logger.Info("planning fleet", "vehicles", vehicles, "nodes", g.VertexCount(), "edges", g.EdgeCount())
	start := time.Now()

	steps, err := partition.Split(ctx, g, vehicles)
	if err != nil {
		return nil, fmt.Errorf("fleet: partition: %w", err)
	}
	plan.Steps = steps
	regions := steps[len(steps)-1].Components
	logger.Debug("partitioned network", "rounds", len(steps), "regions", len(regions))

	plan.Routes = make([]VehicleRoute, len(regions))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(p.workers())
	for i, region := range regions {
		if ectx.Err() != nil {
			break
		}
		i, region := i, region
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			vr := VehicleRoute{Index: i, Class: p.ClassOf(i, len(regions)), Vertices: region}
			p.routeRegion(logger, g, &vr, speeds)
			plan.Routes[i] = vr

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var failures []error
	for i := range plan.Routes {
		vr := &plan.Routes[i]
		if vr.Err != nil {
			var pe *PartitionError
			if errors.As(vr.Err, &pe) {
				plan.Failures = append(plan.Failures, pe)
			}
			failures = append(failures, vr.Err)
			logger.Warn("region failed", "partition", i, "err", vr.Err)
			continue
		}
		plan.TotalDistance += vr.Distance
		plan.ClassDistance[vr.Class] += vr.Distance
		if vr.Duration > plan.Makespan {
			plan.Makespan = vr.Duration
		}
	}

	logger.Info("fleet planned",
		"routed", plan.Succeeded(),
		"failed", len(plan.Failures),
		"distance", plan.TotalDistance,
		"network", plan.NetworkLength,
		"duration", time.Since(start).Round(time.Millisecond))

	if len(failures) > 0 {
		return plan, fmt.Errorf("%w: %w", ErrPartialPlan, errors.Join(failures...))
	}

	return plan, nil
}

// routeRegion runs repair, postman and route building for one region and
// stores the outcome in vr. Failures are recorded as *PartitionError.
func (p *Planner) routeRegion(logger *log.Logger, g *core.Graph, vr *VehicleRoute, speeds Speeds) {
	fail := func(stage Stage, err error) {
		vr.Err = &PartitionError{Index: vr.Index, Stage: stage, Err: err}
	}

	keep := make(map[string]bool, len(vr.Vertices))
	for _, v := range vr.Vertices {
		keep[v] = true
	}
	sub := core.SourceSubgraph(g, keep)
	vr.Region = sub

	rep, err := repair.Reconnect(g, sub)
	if err != nil {
		fail(StageRepair, err)
		return
	}
	logger.Debug("region repaired",
		"partition", vr.Index,
		"nodes", sub.VertexCount(),
		"edges", sub.EdgeCount(),
		"anchor", rep.Anchor,
		"imported", rep.Imported)

	res, err := postman.Solve(sub)
	if err != nil {
		fail(StagePostman, err)
		return
	}
	logger.Debug("circuit solved", "partition", vr.Index, "steps", len(res.Circuit), "distance", res.Distance)

	route, err := dipath.Build(g, res.Circuit)
	if err != nil {
		fail(StageRoute, err)
		return
	}
	vr.Route = route
	vr.Distance = route.Distance()
	vr.Duration = speeds.Duration(vr.Class, vr.Distance)
	logger.Debug("route built",
		"partition", vr.Index,
		"class", vr.Class,
		"distance", vr.Distance,
		"detours", route.Detours)
}

// Drone plans a single survey flight over every street of g, ignoring
// one-way restrictions.
//
// Errors: ErrGraphNil, ErrBadSpeed, postman errors, ctx.Err().
func (p *Planner) Drone(ctx context.Context, g *core.Graph) (*Flight, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	speeds := p.speeds()
	if err := speeds.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := &Flight{ID: uuid.New()}
	logger := p.logger().With("run", f.ID.String())

	u := g
	if g.HasDirectedEdges() {
		u = core.UndirectedProjection(g)
	}
	f.NetworkLength = u.TotalWeight()
	logger.Info("planning drone flight", "nodes", u.VertexCount(), "edges", u.EdgeCount())

	res, err := postman.Solve(u)
	if err != nil {
		return nil, fmt.Errorf("fleet: drone: %w", err)
	}
	f.Circuit = res.Circuit
	f.Augmented = res.Augmented
	f.Distance = res.Distance
	f.Duration = speeds.Duration(Drone, f.Distance)

	logger.Info("drone flight planned",
		"odd", len(res.Odd),
		"distance", f.Distance,
		"network", f.NetworkLength,
		"duration", f.Duration)

	return f, nil
}
