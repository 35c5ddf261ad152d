package fleet

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/dipath"
	"github.com/katalvlaran/arcroute/partition"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when a nil network is passed.
	ErrGraphNil = errors.New("fleet: graph is nil")

	// ErrBadVehicleCount is returned when fewer than one vehicle is requested.
	ErrBadVehicleCount = errors.New("fleet: vehicle count must be at least 1")

	// ErrBadSpeed is returned for a non-positive vehicle speed.
	ErrBadSpeed = errors.New("fleet: speed must be positive")

	// ErrPartialPlan is returned with a Plan in which some regions failed.
	ErrPartialPlan = errors.New("fleet: some regions could not be routed")
)

// Class is a vehicle type.
type Class int

const (
	Drone Class = iota
	PlowType1
	PlowType2
)

func (c Class) String() string {
	switch c {
	case Drone:
		return "drone"
	case PlowType1:
		return "plow-type-1"
	case PlowType2:
		return "plow-type-2"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Speeds holds the average travel speed of each vehicle class in km/h.
type Speeds struct {
	DroneKmh     float64
	PlowType1Kmh float64
	PlowType2Kmh float64
}

// DefaultSpeeds returns 70 km/h for the drone and 10 km/h for both plow types.
func DefaultSpeeds() Speeds {
	return Speeds{DroneKmh: 70, PlowType1Kmh: 10, PlowType2Kmh: 10}
}

// For returns the speed of class c in km/h.
func (s Speeds) For(c Class) float64 {
	switch c {
	case Drone:
		return s.DroneKmh
	case PlowType2:
		return s.PlowType2Kmh
	default:
		return s.PlowType1Kmh
	}
}

// Validate reports ErrBadSpeed when any speed is not positive.
func (s Speeds) Validate() error {
	for _, c := range []Class{Drone, PlowType1, PlowType2} {
		if v := s.For(c); !(v > 0) {
			return fmt.Errorf("%w: %s=%g", ErrBadSpeed, c, v)
		}
	}

	return nil
}

// Duration returns the time class c needs to cover meters.
func (s Speeds) Duration(c Class, meters float64) time.Duration {
	mps := s.For(c) / 3.6

	return time.Duration(meters / mps * float64(time.Second))
}

// Stage names the pipeline step a region failed in.
type Stage string

const (
	StageRepair  Stage = "repair"
	StagePostman Stage = "postman"
	StageRoute   Stage = "route"
)

// PartitionError records why one region could not be routed.
type PartitionError struct {
	Index int
	Stage Stage
	Err   error
}

func (e *PartitionError) Error() string {
	return fmt.Sprintf("region %d: %s: %v", e.Index, e.Stage, e.Err)
}

func (e *PartitionError) Unwrap() error { return e.Err }

// VehicleRoute is the assignment of one vehicle.
type VehicleRoute struct {
	Index int
	Class Class

	// Vertices is the region the partitioner assigned.
	Vertices []string

	// Region is the repaired street subgraph the route covers.
	Region *core.Graph

	// Route is nil when Err is set.
	Route *dipath.Route

	Distance float64
	Duration time.Duration
	Err      error
}

// Plan is the outcome of routing a fleet.
type Plan struct {
	ID uuid.UUID

	// Steps are the partition rounds; the last one defines the regions.
	Steps []partition.Step

	Routes []VehicleRoute

	// TotalDistance sums the routes that succeeded.
	TotalDistance float64

	// ClassDistance splits TotalDistance by vehicle class.
	ClassDistance map[Class]float64

	// Makespan is the longest route duration.
	Makespan time.Duration

	// NetworkLength is the total street length, two-way streets counted once.
	NetworkLength float64

	Failures []*PartitionError
}

// Succeeded returns the number of routed regions.
func (p *Plan) Succeeded() int {
	return len(p.Routes) - len(p.Failures)
}

// Flight is a single-drone survey of the whole network.
type Flight struct {
	ID uuid.UUID

	// Circuit is the closed walk over the undirected network.
	Circuit []core.Traversal

	// Augmented is the network plus the matched shortcuts that made it Eulerian.
	Augmented *core.Graph

	Distance      float64
	Duration      time.Duration
	NetworkLength float64
}
