package graphio

import (
	"errors"
	"path/filepath"
	"strings"
)

// Format selects the document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownFormat is returned for a Format other than JSON or YAML.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrBadNode is returned for a node without an ID or a repeated ID.
	ErrBadNode = errors.New("graphio: invalid node")

	// ErrBadEdge is returned for an edge the road graph rejects.
	ErrBadEdge = errors.New("graphio: invalid edge")
)

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Document is the serialized road network.
type Document struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// Node is one intersection. Coordinates are optional.
type Node struct {
	ID string   `json:"id" yaml:"id"`
	X  *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y  *float64 `json:"y,omitempty" yaml:"y,omitempty"`
}

// Edge is one street segment. A nil Key lets the graph assign one.
type Edge struct {
	From   string                 `json:"from" yaml:"from"`
	To     string                 `json:"to" yaml:"to"`
	Key    *int                   `json:"key,omitempty" yaml:"key,omitempty"`
	Length float64                `json:"length" yaml:"length"`
	OneWay bool                   `json:"oneway" yaml:"oneway"`
	Attrs  map[string]interface{} `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// PlanDocument is the serialized result of a fleet run.
type PlanDocument struct {
	RunID           string             `json:"run_id" yaml:"run_id"`
	Vehicles        int                `json:"vehicles" yaml:"vehicles"`
	TotalDistance   float64            `json:"total_distance" yaml:"total_distance"`
	MakespanSeconds float64            `json:"makespan_seconds" yaml:"makespan_seconds"`
	NetworkLength   float64            `json:"network_length" yaml:"network_length"`
	ClassDistance   map[string]float64 `json:"class_distance,omitempty" yaml:"class_distance,omitempty"`
	Routes          []RouteDocument    `json:"routes" yaml:"routes"`
	Failures        []FailureDocument  `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// RouteDocument is the route of one vehicle.
type RouteDocument struct {
	Vehicle         int            `json:"vehicle" yaml:"vehicle"`
	Class           string         `json:"class" yaml:"class"`
	Region          []string       `json:"region" yaml:"region"`
	Nodes           []string       `json:"nodes" yaml:"nodes"`
	Steps           []StepDocument `json:"steps" yaml:"steps"`
	Distance        float64        `json:"distance" yaml:"distance"`
	DurationSeconds float64        `json:"duration_seconds" yaml:"duration_seconds"`
	Detours         int            `json:"detours" yaml:"detours"`
}

// StepDocument is one traversed street.
type StepDocument struct {
	From      string  `json:"from" yaml:"from"`
	To        string  `json:"to" yaml:"to"`
	Key       int     `json:"key" yaml:"key"`
	Length    float64 `json:"length" yaml:"length"`
	Name      string  `json:"name,omitempty" yaml:"name,omitempty"`
	Augmented bool    `json:"augmented,omitempty" yaml:"augmented,omitempty"`
}

// FailureDocument reports a region that could not be routed.
type FailureDocument struct {
	Region int    `json:"region" yaml:"region"`
	Stage  string `json:"stage" yaml:"stage"`
	Error  string `json:"error" yaml:"error"`
}

// FlightDocument is the serialized single-drone survey.
type FlightDocument struct {
	RunID           string         `json:"run_id" yaml:"run_id"`
	Nodes           []string       `json:"nodes" yaml:"nodes"`
	Steps           []StepDocument `json:"steps" yaml:"steps"`
	Distance        float64        `json:"distance" yaml:"distance"`
	Deadhead        float64        `json:"deadhead" yaml:"deadhead"`
	DurationSeconds float64        `json:"duration_seconds" yaml:"duration_seconds"`
	NetworkLength   float64        `json:"network_length" yaml:"network_length"`
}
