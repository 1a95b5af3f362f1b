package mesh

import (
	"errors"
	"fmt"
)

// Connectivity maps a spring index to its (endpoint A, endpoint B) mass
// indices. Resolved exactly once, at system construction.
type Connectivity map[int][2]int

// Snapshot is a read-only view of one mass's state, exposed to
// observers and trajectory sinks.
type Snapshot struct {
	Position Vec2
	Velocity Vec2
	Force    Vec2
}

// System owns an index-stable collection of masses and the springs
// connecting them, and advances them with explicit time-stepping.
type System struct {
	masses  []Mass
	springs []Spring
}

// NewSystem copies the given masses and springs and binds each spring's
// endpoints from the connectivity table. Construction either fully
// succeeds or returns an error; the system is never left partially
// bound.
//
// Rejected inputs: movable masses with non-positive mass, springs with
// non-positive stiffness or negative rest length, connectivity entries
// out of range, coincident endpoints, unbound or doubly bound springs.
func NewSystem(masses []Mass, springs []Spring, conn Connectivity) (*System, error) {
	for i, m := range masses {
		if !m.Fixed && m.M <= 0 {
			return nil, fmt.Errorf("mass %d: %w (m=%g)", i, ErrInvalidMass, m.M)
		}
	}
	for i, sp := range springs {
		if sp.K <= 0 || sp.Rest < 0 {
			return nil, fmt.Errorf("spring %d: %w (k=%g, rest=%g)", i, ErrInvalidSpring, sp.K, sp.Rest)
		}
	}
	if len(conn) != len(springs) {
		return nil, fmt.Errorf("%w: %d entries for %d springs", ErrInvalidConnectivity, len(conn), len(springs))
	}

	s := &System{
		masses:  make([]Mass, len(masses)),
		springs: make([]Spring, len(springs)),
	}
	copy(s.masses, masses)
	copy(s.springs, springs)

	for si, ends := range conn {
		if si < 0 || si >= len(springs) {
			return nil, fmt.Errorf("%w: spring index %d out of range", ErrInvalidConnectivity, si)
		}
		a, b := ends[0], ends[1]
		if a < 0 || a >= len(masses) || b < 0 || b >= len(masses) {
			return nil, fmt.Errorf("%w: spring %d references mass (%d, %d), have %d masses",
				ErrInvalidConnectivity, si, a, b, len(masses))
		}
		if a == b {
			return nil, fmt.Errorf("%w: spring %d connects mass %d to itself", ErrInvalidConnectivity, si, a)
		}
		s.springs[si].A = a
		s.springs[si].B = b
	}

	return s, nil
}

// Step advances the system by dt in three strict phases: zero forces,
// accumulate spring forces pairwise, integrate movable masses with
// semi-implicit Euler.
//
// A spring that is degenerate at evaluation time contributes zero force
// for this step; Step still integrates and returns a *SpringError per
// occurrence (joined if several), so the caller decides whether to halt.
func (s *System) Step(dt float64) error {
	for i := range s.masses {
		s.masses[i].Force = Vec2{}
	}

	var errs []error
	for i := range s.springs {
		sp := &s.springs[i]
		a, b := &s.masses[sp.A], &s.masses[sp.B]
		f, err := sp.Force(a, b)
		if err != nil {
			errs = append(errs, &SpringError{Spring: i, Wrapped: err})
			continue
		}
		b.Force = b.Force.Add(f)
		a.Force = a.Force.Sub(f)
	}

	for i := range s.masses {
		m := &s.masses[i]
		if m.Fixed {
			continue
		}
		m.Velocity = m.Velocity.Add(m.Force.Scale(dt / m.M))
		m.Position = m.Position.Add(m.Velocity.Scale(dt))
	}

	return errors.Join(errs...)
}

func (s *System) MassCount() int   { return len(s.masses) }
func (s *System) SpringCount() int { return len(s.springs) }

// Snapshot returns the current state of mass i.
func (s *System) Snapshot(i int) Snapshot {
	m := &s.masses[i]
	return Snapshot{Position: m.Position, Velocity: m.Velocity, Force: m.Force}
}

// Springs returns a copy of the bound spring collection.
func (s *System) Springs() []Spring {
	out := make([]Spring, len(s.springs))
	copy(out, s.springs)
	return out
}

// Energy returns total mechanical energy: kinetic energy of movable
// masses plus elastic potential energy of all springs.
func (s *System) Energy() float64 {
	e := 0.0
	for i := range s.masses {
		m := &s.masses[i]
		if m.Fixed {
			continue
		}
		e += 0.5 * m.M * m.Velocity.NormSq()
	}
	for i := range s.springs {
		sp := &s.springs[i]
		e += sp.Energy(&s.masses[sp.A], &s.masses[sp.B])
	}
	return e
}

// Momentum returns the total linear momentum of the movable masses.
func (s *System) Momentum() Vec2 {
	var p Vec2
	for i := range s.masses {
		m := &s.masses[i]
		if m.Fixed {
			continue
		}
		p = p.Add(m.Velocity.Scale(m.M))
	}
	return p
}
