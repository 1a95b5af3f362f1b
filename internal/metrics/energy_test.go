package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/springmesh/internal/mesh"
)

func stretchedSystem(t *testing.T) *mesh.System {
	t.Helper()
	masses := []mesh.Mass{mesh.NewAnchor(0, 0), mesh.NewMass(0, -3, 3)}
	springs := []mesh.Spring{mesh.NewSpring(3, 2)}
	sys, err := mesh.NewSystem(masses, springs, mesh.Connectivity{0: {0, 1}})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	return sys
}

func TestEnergyDrift(t *testing.T) {
	sys := stretchedSystem(t)
	m := NewEnergyDrift()

	m.Observe(0, sys)
	if m.Value() != 0 {
		t.Errorf("expected zero drift on first observation, got %g", m.Value())
	}

	for i := 0; i < 100; i++ {
		if err := sys.Step(0.1); err != nil {
			t.Fatalf("step failed: %v", err)
		}
		m.Observe(float64(i+1)*0.1, sys)
	}

	drift := m.Value()
	if math.IsNaN(drift) || math.IsInf(drift, 0) {
		t.Fatal("drift is not finite")
	}
	if drift > 2.0 {
		t.Errorf("drift %g exceeds symplectic bound for this configuration", drift)
	}
}

func TestEnergyDriftReset(t *testing.T) {
	sys := stretchedSystem(t)
	m := NewEnergyDrift()

	m.Observe(0, sys)
	if err := sys.Step(0.1); err != nil {
		t.Fatalf("step failed: %v", err)
	}
	m.Observe(0.1, sys)

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestStability(t *testing.T) {
	sys := stretchedSystem(t)
	m := NewStability(100.0)

	for i := 0; i < 50; i++ {
		m.Observe(float64(i)*0.1, sys)
		if err := sys.Step(0.1); err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}

	if m.Value() != 1.0 {
		t.Errorf("expected stability 1.0 for bounded run, got %g", m.Value())
	}
}

func TestStability_Violation(t *testing.T) {
	sys := stretchedSystem(t)
	m := NewStability(1.0) // masses start outside this bound

	m.Observe(0, sys)
	if m.Value() != 0 {
		t.Errorf("expected stability 0, got %g", m.Value())
	}
}
