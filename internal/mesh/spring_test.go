package mesh

import (
	"errors"
	"math"
	"testing"
)

func TestSpringForce_Stretched(t *testing.T) {
	a := NewAnchor(0, 0)
	b := NewMass(0, -3, 3)
	sp := NewSpring(3, 2)

	f, err := sp.Force(&a, &b)
	if err != nil {
		t.Fatalf("force failed: %v", err)
	}

	// length 3, extension 1, magnitude k*e = 3, pulling b up toward a
	if math.Abs(f.X) > 1e-12 {
		t.Errorf("expected zero x force, got %g", f.X)
	}
	if math.Abs(f.Y-3.0) > 1e-12 {
		t.Errorf("expected y force 3, got %g", f.Y)
	}
}

func TestSpringForce_Compressed(t *testing.T) {
	a := NewAnchor(0, 0)
	b := NewMass(0, -3, 1)
	sp := NewSpring(3, 5)

	f, err := sp.Force(&a, &b)
	if err != nil {
		t.Fatalf("force failed: %v", err)
	}

	// length 3 < rest 5: b is pushed away from a (downward)
	if f.Y >= 0 {
		t.Errorf("compressed spring should push b away, got y force %g", f.Y)
	}
	if math.Abs(f.Norm()-6.0) > 1e-12 {
		t.Errorf("expected magnitude 6, got %g", f.Norm())
	}
}

func TestSpringForce_Proportionality(t *testing.T) {
	tests := []struct {
		name    string
		k, rest float64
		bx, by  float64
	}{
		{"stretched diagonal", 2.0, 1.0, 3.0, 4.0},
		{"compressed", 10.0, 8.0, 0.0, 5.0},
		{"at rest length", 5.0, 2.0, 2.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnchor(0, 0)
			b := NewMass(tt.bx, tt.by, 1)
			sp := NewSpring(tt.k, tt.rest)

			f, err := sp.Force(&a, &b)
			if err != nil {
				t.Fatalf("force failed: %v", err)
			}

			length := math.Hypot(tt.bx, tt.by)
			want := tt.k * math.Abs(length-tt.rest)
			if math.Abs(f.Norm()-want) > 1e-12 {
				t.Errorf("expected magnitude %g, got %g", want, f.Norm())
			}
		})
	}
}

func TestSpringForce_ThirdLaw(t *testing.T) {
	a := NewMass(1.2, -0.7, 2)
	b := NewMass(-2.5, 3.1, 5)
	sp := NewSpring(4, 1.5)

	fb, err := sp.Force(&a, &b)
	if err != nil {
		t.Fatalf("force failed: %v", err)
	}
	fa, err := sp.Force(&b, &a)
	if err != nil {
		t.Fatalf("force failed: %v", err)
	}

	if fb.Add(fa).Norm() > 1e-12 {
		t.Errorf("forces not equal and opposite: %v vs %v", fb, fa)
	}
}

func TestSpringForce_Degenerate(t *testing.T) {
	a := NewMass(1, 1, 1)
	b := NewMass(1, 1, 1)
	sp := NewSpring(2, 1)

	f, err := sp.Force(&a, &b)
	if !errors.Is(err, ErrDegenerateSpring) {
		t.Fatalf("expected ErrDegenerateSpring, got %v", err)
	}
	if f.X != 0 || f.Y != 0 {
		t.Errorf("expected zero force for degenerate spring, got %v", f)
	}
}

func TestSpringEnergy(t *testing.T) {
	a := NewAnchor(0, 0)
	b := NewMass(0, -3, 3)
	sp := NewSpring(3, 2)

	// extension 1: E = 0.5 * 3 * 1 = 1.5
	if e := sp.Energy(&a, &b); math.Abs(e-1.5) > 1e-12 {
		t.Errorf("expected energy 1.5, got %g", e)
	}
}
