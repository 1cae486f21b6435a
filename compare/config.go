package compare

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration and reporting.
var (
	// ErrNoScenarios indicates a config that names no scenarios.
	ErrNoScenarios = errors.New("compare: config names no scenarios")

	// ErrNoWeightFactor indicates a config without an A* weight factor.
	// The factor changes what "shortest" means, so it is never defaulted.
	ErrNoWeightFactor = errors.New("compare: weight_factor is required")

	// ErrUnknownAttribute indicates a path whose edges do not carry the
	// requested attribute.
	ErrUnknownAttribute = errors.New("compare: attribute not present along path")
)

// Coordinate is a raw WGS-84 position.
type Coordinate struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// Scenario is one named source→target comparison request.
type Scenario struct {
	Name   string     `yaml:"name"`
	Source Coordinate `yaml:"source"`
	Target Coordinate `yaml:"target"`
}

// Config drives a full comparison run.
//
// WeightFactor is deliberately a pointer: the factor trades optimality for
// speed, so the file must state it explicitly, 1.0 included.
type Config struct {
	OSMFile      string     `yaml:"osm_file"`
	WeightFactor *float64   `yaml:"weight_factor"`
	Output       string     `yaml:"output,omitempty"`
	Scenarios    []Scenario `yaml:"scenarios"`
}

// ParseConfig decodes and validates YAML config bytes.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("compare: parse config: %w", err)
	}

	if cfg.OSMFile == "" {
		return Config{}, errors.New("compare: osm_file is required")
	}
	if cfg.WeightFactor == nil {
		return Config{}, ErrNoWeightFactor
	}
	if *cfg.WeightFactor < 0 {
		return Config{}, fmt.Errorf("compare: weight_factor must be non-negative, got %v", *cfg.WeightFactor)
	}
	if len(cfg.Scenarios) == 0 {
		return Config{}, ErrNoScenarios
	}
	for i, s := range cfg.Scenarios {
		if s.Name == "" {
			return Config{}, fmt.Errorf("compare: scenario %d has no name", i)
		}
		for _, c := range []Coordinate{s.Source, s.Target} {
			if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
				return Config{}, fmt.Errorf("compare: scenario %q has out-of-range coordinates", s.Name)
			}
		}
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("compare: read config: %w", err)
	}

	return ParseConfig(data)
}
