// Package scenario loads simulation scenarios from YAML files for
// non-interactive CLI runs.
package scenario

import (
	"fmt"
	"os"

	"github.com/me/seeksim/pkg/disk"
	"gopkg.in/yaml.v3"
)

// Scenario is one simulation run described in a YAML file.
type Scenario struct {
	Name            string `yaml:"name"`
	InitialPosition int    `yaml:"initial_position"`
	MaxCylinder     int    `yaml:"max_cylinder"`
	Requests        []int  `yaml:"requests"`
	Algorithm       string `yaml:"algorithm"`
	Direction       string `yaml:"direction"` // scan only, left or right
}

// Load reads and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}
	return &sc, nil
}

// Policy resolves the scenario's algorithm name, defaulting the SCAN
// direction to right when none was given.
func (sc *Scenario) Policy() (disk.Policy, disk.Direction, error) {
	policy, err := disk.ParsePolicy(sc.Algorithm)
	if err != nil {
		return "", "", err
	}
	direction := disk.Direction(sc.Direction)
	if policy.NeedsDirection() && direction == "" {
		direction = disk.DirectionRight
	}
	return policy, direction, nil
}

// Build constructs a validated scheduler from the scenario, feeding
// every request through the engine's validation gate.
func (sc *Scenario) Build() (*disk.Scheduler, error) {
	s, err := disk.New(sc.InitialPosition, sc.MaxCylinder)
	if err != nil {
		return nil, err
	}
	for _, r := range sc.Requests {
		if err := s.AddRequest(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}
