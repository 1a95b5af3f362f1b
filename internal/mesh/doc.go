// Package mesh implements a 2D point-mass/spring simulation kernel.
//
// The package defines the fundamental types for explicit time-stepping
// of Hookean spring networks:
//
//   - [Vec2]: two-dimensional vector arithmetic
//   - [Mass]: point particle with position, velocity and accumulated force
//   - [Spring]: ideal linear spring referencing two masses by index
//   - [System]: owns the mass and spring collections and advances them
//
// A [System] is built from mass and spring slices plus a [Connectivity]
// table mapping each spring to its two endpoint masses. Binding happens
// once at construction; the mass collection is never resized afterward,
// so spring endpoint indices stay valid for the run's lifetime.
//
// # Stepping
//
// [System.Step] advances the simulation by one timestep in three strict
// phases: reset accumulated forces, accumulate pairwise spring forces,
// then integrate movable masses with semi-implicit Euler (velocity
// first, position from the updated velocity). Fixed masses are never
// mutated.
//
// # Example
//
//	masses := []mesh.Mass{mesh.NewAnchor(0, 0), mesh.NewMass(0, -3, 3)}
//	springs := []mesh.Spring{mesh.NewSpring(3, 2)}
//	sys, _ := mesh.NewSystem(masses, springs, mesh.Connectivity{0: {0, 1}})
//	for i := 0; i < 1000; i++ {
//	    sys.Step(0.1)
//	}
//
// # Thread Safety
//
// System instances are NOT thread-safe. Each run owns its System
// exclusively; steps are sequential because every step's forces depend
// on the previous step's positions.
package mesh
