package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/springmesh/internal/mesh"
)

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)

	if strings.ContainsFunc(c.String(), func(r rune) bool { return r > 0x2800 && r <= 0x28FF }) {
		t.Error("out-of-bounds set should not light any dot")
	}
}

func TestDrawSystem(t *testing.T) {
	masses := []mesh.Mass{mesh.NewAnchor(0, 0), mesh.NewMass(0, -3, 3)}
	springs := []mesh.Spring{mesh.NewSpring(3, 2)}
	sys, err := mesh.NewSystem(masses, springs, mesh.Connectivity{0: {0, 1}})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	c := NewCanvas(20, 10)
	c.DrawSystem(sys, FitSystem(sys, 0.2))

	lit := 0
	for _, r := range c.String() {
		if r > 0x2800 && r <= 0x28FF {
			lit++
		}
	}
	if lit == 0 {
		t.Error("expected lit cells after drawing system")
	}
}
