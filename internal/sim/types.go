package sim

import (
	"fmt"

	"github.com/san-kum/springmesh/internal/mesh"
)

// Observer receives the system after every recorded step. Step 0 is the
// initial state, before any integration.
type Observer interface {
	OnStep(step int, t float64, sys *mesh.System)
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(t float64, sys *mesh.System)
	Value() float64
	Reset()
}

type Config struct {
	Dt    float64
	Steps int
	Track []int
}

type Result struct {
	Times      []float64
	Tracks     map[int][]mesh.Snapshot
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

func (c Config) validate(sys *mesh.System) error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", c.Dt)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", c.Steps)
	}
	for _, i := range c.Track {
		if i < 0 || i >= sys.MassCount() {
			return fmt.Errorf("tracked mass %d out of range (%d masses)", i, sys.MassCount())
		}
	}
	return nil
}
