// Package config loads arcroute settings from a TOML file.
//
// Missing sections and keys keep their Default values, so a file only needs
// to name what it changes:
//
//	[fleet]
//	vehicles = 4
//	type2_share = 0.5
//
//	[speeds]
//	plow_type_2_kmh = 12
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/arcroute/fleet"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full arcroute configuration.
type Config struct {
	Fleet  Fleet  `toml:"fleet"`
	Speeds Speeds `toml:"speeds"`
	Log    Log    `toml:"log"`
}

// Fleet controls the multi-vehicle planner.
type Fleet struct {
	// Vehicles is the default fleet size for `arcroute fleet`.
	Vehicles int `toml:"vehicles"`

	// Workers bounds concurrent region routing; 0 means GOMAXPROCS.
	Workers int `toml:"workers"`

	// Strict makes a partially routed plan a command failure.
	Strict bool `toml:"strict"`

	// Type2Share is the fraction of vehicles that are type-2 plows.
	Type2Share float64 `toml:"type2_share"`
}

// Speeds are vehicle speeds in km/h.
type Speeds struct {
	DroneKmh     float64 `toml:"drone_kmh"`
	PlowType1Kmh float64 `toml:"plow_type_1_kmh"`
	PlowType2Kmh float64 `toml:"plow_type_2_kmh"`
}

// Log controls CLI logging.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	s := fleet.DefaultSpeeds()

	return &Config{
		Fleet: Fleet{Vehicles: 1},
		Speeds: Speeds{
			DroneKmh:     s.DroneKmh,
			PlowType1Kmh: s.PlowType1Kmh,
			PlowType2Kmh: s.PlowType2Kmh,
		},
		Log: Log{Level: "info"},
	}
}

// Load decodes the TOML file at path over Default and validates the result.
// An empty path returns Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field and joins all failures.
func (c *Config) Validate() error {
	var errs []error
	if c.Fleet.Vehicles < 1 {
		errs = append(errs, fmt.Errorf("%w: fleet.vehicles=%d, must be at least 1", ErrInvalid, c.Fleet.Vehicles))
	}
	if c.Fleet.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: fleet.workers=%d, must not be negative", ErrInvalid, c.Fleet.Workers))
	}
	if c.Fleet.Type2Share < 0 || c.Fleet.Type2Share > 1 {
		errs = append(errs, fmt.Errorf("%w: fleet.type2_share=%g, must be in [0,1]", ErrInvalid, c.Fleet.Type2Share))
	}
	if err := c.FleetSpeeds().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: speeds: %w", ErrInvalid, err))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// FleetSpeeds converts the speed section for the planner.
func (c *Config) FleetSpeeds() fleet.Speeds {
	return fleet.Speeds{
		DroneKmh:     c.Speeds.DroneKmh,
		PlowType1Kmh: c.Speeds.PlowType1Kmh,
		PlowType2Kmh: c.Speeds.PlowType2Kmh,
	}
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log.level=%q", ErrInvalid, c.Log.Level)
	}

	return lvl, nil
}

// Planner builds a fleet planner from the configuration.
func (c *Config) Planner(logger *log.Logger) *fleet.Planner {
	p := fleet.NewPlanner(logger)
	p.Workers = c.Fleet.Workers
	p.Speeds = c.FleetSpeeds()
	p.Type2Share = c.Fleet.Type2Share

	return p
}
