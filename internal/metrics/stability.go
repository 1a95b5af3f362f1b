package metrics

import (
	"math"

	"github.com/san-kum/springmesh/internal/mesh"
)

// Stability reports the fraction of observed steps in which every mass
// stayed finite and within a magnitude threshold.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{name: "stability", threshold: threshold}
}

func (s *Stability) Name() string { return s.name }

func (s *Stability) Observe(t float64, sys *mesh.System) {
	s.samples++
	for i := 0; i < sys.MassCount(); i++ {
		snap := sys.Snapshot(i)
		if !snap.Position.IsFinite() || !snap.Velocity.IsFinite() ||
			math.Abs(snap.Position.X) > s.threshold || math.Abs(snap.Position.Y) > s.threshold {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
