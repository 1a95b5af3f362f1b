package mesh

// Spring is an ideal Hookean spring. Endpoints are stable integer
// indices into the owning system's mass slice, assigned once by
// [NewSystem] from the connectivity table.
type Spring struct {
	K    float64
	Rest float64
	A, B int
}

// NewSpring returns an unbound spring with stiffness k and rest length rest.
func NewSpring(k, rest float64) Spring {
	return Spring{K: k, Rest: rest}
}

// Force returns the force the spring exerts on endpoint b. The endpoint
// a receives the exact negation. Stretched springs pull b toward a,
// compressed springs push b away. Pure: neither mass is mutated.
//
// Returns ErrDegenerateSpring when the endpoints coincide, since the
// force direction is undefined at zero separation.
func (s Spring) Force(a, b *Mass) (Vec2, error) {
	d := a.Position.Sub(b.Position)
	length := d.Norm()
	if length == 0 {
		return Vec2{}, ErrDegenerateSpring
	}
	ext := length - s.Rest
	return d.Scale(s.K * ext / length), nil
}

// Length returns the current distance between the endpoints.
func (s Spring) Length(a, b *Mass) float64 {
	return b.Position.Sub(a.Position).Norm()
}

// Energy returns the elastic potential energy, ½k·(len−rest)².
func (s Spring) Energy(a, b *Mass) float64 {
	ext := s.Length(a, b) - s.Rest
	return 0.5 * s.K * ext * ext
}
