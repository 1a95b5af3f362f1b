package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/springmesh/internal/mesh"
	"github.com/san-kum/springmesh/internal/scenario"
)

const (
	DefaultDt    = 0.1
	DefaultSteps = 1000
)

// Config is the YAML form of a scenario: initial masses, spring
// parameters, connectivity pairs and stepping settings.
type Config struct {
	Scenario     string         `yaml:"scenario"`
	Dt           float64        `yaml:"dt"`
	Steps        int            `yaml:"steps"`
	Output       string         `yaml:"output"`
	Track        []int          `yaml:"track"`
	Masses       []MassConfig   `yaml:"masses"`
	Springs      []SpringConfig `yaml:"springs"`
	Connectivity []LinkConfig   `yaml:"connectivity"`
}

type MassConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	M     float64 `yaml:"m"`
	Fixed bool    `yaml:"fixed"`
}

type SpringConfig struct {
	K    float64 `yaml:"k"`
	Rest float64 `yaml:"rest"`
}

// LinkConfig binds one spring to its two endpoint masses.
type LinkConfig struct {
	Spring int `yaml:"spring"`
	A      int `yaml:"a"`
	B      int `yaml:"b"`
}

// DefaultConfig mirrors the one-spring builtin scenario.
func DefaultConfig() *Config {
	return &Config{
		Scenario: "one-spring",
		Dt:       DefaultDt,
		Steps:    DefaultSteps,
		Output:   "1m1s.dat",
		Track:    []int{1},
		Masses: []MassConfig{
			{X: 0, Y: 0, Fixed: true},
			{X: 0, Y: -3, M: 3},
		},
		Springs:      []SpringConfig{{K: 3, Rest: 2}},
		Connectivity: []LinkConfig{{Spring: 0, A: 0, B: 1}},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToScenario converts the config into a runnable scenario record.
// Structural validity (positive masses, index ranges) is checked by
// mesh.NewSystem when the scenario is built.
func (c *Config) ToScenario() (scenario.Scenario, error) {
	if c.Dt <= 0 {
		return scenario.Scenario{}, fmt.Errorf("config: dt must be positive, got %g", c.Dt)
	}
	if c.Steps <= 0 {
		return scenario.Scenario{}, fmt.Errorf("config: steps must be positive, got %d", c.Steps)
	}

	sc := scenario.Scenario{
		Name:         c.Scenario,
		Dt:           c.Dt,
		Steps:        c.Steps,
		Track:        c.Track,
		Output:       c.Output,
		Masses:       make([]mesh.Mass, len(c.Masses)),
		Springs:      make([]mesh.Spring, len(c.Springs)),
		Connectivity: make(mesh.Connectivity, len(c.Connectivity)),
	}
	for i, m := range c.Masses {
		if m.Fixed {
			sc.Masses[i] = mesh.NewAnchor(m.X, m.Y)
		} else {
			sc.Masses[i] = mesh.NewMass(m.X, m.Y, m.M)
		}
	}
	for i, sp := range c.Springs {
		sc.Springs[i] = mesh.NewSpring(sp.K, sp.Rest)
	}
	for _, l := range c.Connectivity {
		sc.Connectivity[l.Spring] = [2]int{l.A, l.B}
	}
	return sc, nil
}
