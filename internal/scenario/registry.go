package scenario

import "github.com/san-kum/springmesh/internal/mesh"

// Builtin returns the stock scenario table.
func Builtin() []Scenario {
	square := Scenario{
		Name:        "four-springs",
		Description: "one mass, four springs attached to the corners of a unit square",
		Masses: []mesh.Mass{
			mesh.NewAnchor(0, 0),
			mesh.NewAnchor(1, 0),
			mesh.NewAnchor(0, 1),
			mesh.NewAnchor(1, 1),
			mesh.NewMass(0.2, 0.6, 1),
		},
		Springs:      make([]mesh.Spring, 4),
		Connectivity: mesh.Connectivity{},
		Dt:           0.01,
		Steps:        10000,
		Track:        []int{4},
		Output:       "1m4s.dat",
	}
	for i := range square.Springs {
		square.Springs[i] = mesh.NewSpring(2, 2)
		square.Connectivity[i] = [2]int{i, 4}
	}

	return []Scenario{
		{
			Name:        "one-spring",
			Description: "one spring, one moving mass",
			Masses: []mesh.Mass{
				mesh.NewAnchor(0, 0),
				mesh.NewMass(0, -3, 3),
			},
			Springs:      []mesh.Spring{mesh.NewSpring(3, 2)},
			Connectivity: mesh.Connectivity{0: {0, 1}},
			Dt:           0.1,
			Steps:        1000,
			Track:        []int{1},
			Output:       "1m1s.dat",
		},
		square,
	}
}

// Get looks up a builtin scenario by name.
func Get(name string) (Scenario, bool) {
	for _, sc := range Builtin() {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}

// Names lists the builtin scenario names in table order.
func Names() []string {
	builtins := Builtin()
	names := make([]string, 0, len(builtins))
	for _, sc := range builtins {
		names = append(names, sc.Name)
	}
	return names
}
