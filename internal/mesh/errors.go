package mesh

import "errors"

// Domain errors for system construction and stepping.
var (
	// ErrInvalidConnectivity indicates a connectivity entry references a
	// spring or mass index outside the valid range, binds a spring twice,
	// or leaves a spring unbound.
	ErrInvalidConnectivity = errors.New("mesh: invalid connectivity")

	// ErrDegenerateSpring indicates a spring whose endpoints coincide;
	// the force direction is undefined at zero separation.
	ErrDegenerateSpring = errors.New("mesh: degenerate spring (zero length)")

	// ErrInvalidMass indicates a movable mass with non-positive mass.
	ErrInvalidMass = errors.New("mesh: movable mass must have positive mass")

	// ErrInvalidSpring indicates non-positive stiffness or negative rest length.
	ErrInvalidSpring = errors.New("mesh: invalid spring parameters")
)

// SpringError wraps an error with the index of the offending spring.
type SpringError struct {
	Spring  int
	Wrapped error
}

func (e *SpringError) Error() string {
	return e.Wrapped.Error()
}

func (e *SpringError) Unwrap() error {
	return e.Wrapped
}
