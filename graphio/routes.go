package graphio

import (
	"io"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/fleet"
)

// WriteRoutes encodes a fleet plan. Failed regions are listed under
// failures and omitted from routes.
func WriteRoutes(w io.Writer, f Format, plan *fleet.Plan) error {
	return encode(w, f, PlanToDocument(plan))
}

// WriteFlight encodes a single-drone survey.
func WriteFlight(w io.Writer, f Format, flight *fleet.Flight) error {
	return encode(w, f, FlightToDocument(flight))
}

// PlanToDocument converts plan for serialization.
func PlanToDocument(plan *fleet.Plan) PlanDocument {
	doc := PlanDocument{
		RunID:           plan.ID.String(),
		Vehicles:        len(plan.Routes),
		TotalDistance:   plan.TotalDistance,
		MakespanSeconds: plan.Makespan.Seconds(),
		NetworkLength:   plan.NetworkLength,
		Routes:          []RouteDocument{},
	}
	if len(plan.ClassDistance) > 0 {
		doc.ClassDistance = make(map[string]float64, len(plan.ClassDistance))
		for c, d := range plan.ClassDistance {
			doc.ClassDistance[c.String()] = d
		}
	}

	for _, vr := range plan.Routes {
		if vr.Err != nil || vr.Route == nil {
			continue
		}
		doc.Routes = append(doc.Routes, RouteDocument{
			Vehicle:         vr.Index,
			Class:           vr.Class.String(),
			Region:          vr.Vertices,
			Nodes:           vr.Route.Nodes(),
			Steps:           stepDocuments(vr.Route.Steps),
			Distance:        vr.Distance,
			DurationSeconds: vr.Duration.Seconds(),
			Detours:         vr.Route.Detours,
		})
	}
	for _, pe := range plan.Failures {
		doc.Failures = append(doc.Failures, FailureDocument{
			Region: pe.Index,
			Stage:  string(pe.Stage),
			Error:  pe.Err.Error(),
		})
	}

	return doc
}

// FlightToDocument converts flight for serialization.
func FlightToDocument(flight *fleet.Flight) FlightDocument {
	return FlightDocument{
		RunID:           flight.ID.String(),
		Nodes:           core.WalkNodes(flight.Circuit),
		Steps:           stepDocuments(flight.Circuit),
		Distance:        flight.Distance,
		Deadhead:        flight.Distance - flight.NetworkLength,
		DurationSeconds: flight.Duration.Seconds(),
		NetworkLength:   flight.NetworkLength,
	}
}

func stepDocuments(walk []core.Traversal) []StepDocument {
	steps := make([]StepDocument, 0, len(walk))
	for _, t := range walk {
		s := StepDocument{From: t.From, To: t.To, Key: t.Key(), Length: t.Weight()}
		if t.Edge != nil {
			s.Name, _ = t.Edge.Attr(core.AttrName).(string)
			s.Augmented = t.Edge.IsAugmented()
		}
		steps = append(steps, s)
	}

	return steps
}
