package mesh

// Mass is a point particle. Force is transient: it is reset and
// re-accumulated on every call to [System.Step]. A fixed mass acts as
// an immovable anchor; its M field is ignored and the integrator never
// touches its position or velocity.
type Mass struct {
	Position Vec2
	Velocity Vec2
	Force    Vec2
	M        float64
	Fixed    bool
}

// NewMass returns a movable mass at (x, y) with zero velocity.
// m must be strictly positive; [NewSystem] rejects violations.
func NewMass(x, y, m float64) Mass {
	return Mass{Position: Vec2{X: x, Y: y}, M: m}
}

// NewAnchor returns a fixed mass at (x, y) with infinite effective inertia.
func NewAnchor(x, y float64) Mass {
	return Mass{Position: Vec2{X: x, Y: y}, Fixed: true}
}
