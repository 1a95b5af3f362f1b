package export

import (
	"strings"
	"testing"

	"github.com/san-kum/springmesh/internal/mesh"
)

func TestTrajectoryToSVG(t *testing.T) {
	points := []mesh.Vec2{{X: 0, Y: -3}, {X: 0, Y: -2.99}, {X: 0.1, Y: -2.5}}

	svg := TrajectoryToSVG(points, 400, 300, "#00ff88")

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, `stroke="#00ff88"`) {
		t.Error("missing stroke color")
	}
	if strings.Count(svg, " L") != len(points)-1 {
		t.Errorf("expected %d line segments, got %d", len(points)-1, strings.Count(svg, " L"))
	}
}

func TestTrajectoryToSVG_TooFewPoints(t *testing.T) {
	if svg := TrajectoryToSVG([]mesh.Vec2{{X: 1, Y: 1}}, 100, 100, "red"); svg != "" {
		t.Error("expected empty output for single point")
	}
}
