package config

// Presets are named variations of the builtin scenarios.
var Presets = map[string]map[string]*Config{
	"one-spring": {
		"soft": {
			Scenario: "one-spring", Dt: 0.1, Steps: 1000, Output: "1m1s.dat", Track: []int{1},
			Masses: []MassConfig{
				{X: 0, Y: 0, Fixed: true},
				{X: 0, Y: -3, M: 3},
			},
			Springs:      []SpringConfig{{K: 1, Rest: 2}},
			Connectivity: []LinkConfig{{Spring: 0, A: 0, B: 1}},
		},
		"stiff": {
			Scenario: "one-spring", Dt: 0.01, Steps: 10000, Output: "1m1s.dat", Track: []int{1},
			Masses: []MassConfig{
				{X: 0, Y: 0, Fixed: true},
				{X: 0, Y: -3, M: 3},
			},
			Springs:      []SpringConfig{{K: 30, Rest: 2}},
			Connectivity: []LinkConfig{{Spring: 0, A: 0, B: 1}},
		},
	},
	"four-springs": {
		"offset": {
			Scenario: "four-springs", Dt: 0.01, Steps: 10000, Output: "1m4s.dat", Track: []int{4},
			Masses: []MassConfig{
				{X: 0, Y: 0, Fixed: true},
				{X: 1, Y: 0, Fixed: true},
				{X: 0, Y: 1, Fixed: true},
				{X: 1, Y: 1, Fixed: true},
				{X: 0.2, Y: 0.6, M: 1},
			},
			Springs: []SpringConfig{
				{K: 2, Rest: 2}, {K: 2, Rest: 2}, {K: 2, Rest: 2}, {K: 2, Rest: 2},
			},
			Connectivity: []LinkConfig{
				{Spring: 0, A: 0, B: 4}, {Spring: 1, A: 1, B: 4},
				{Spring: 2, A: 2, B: 4}, {Spring: 3, A: 3, B: 4},
			},
		},
		"centered": {
			Scenario: "four-springs", Dt: 0.01, Steps: 10000, Output: "1m4s.dat", Track: []int{4},
			Masses: []MassConfig{
				{X: 0, Y: 0, Fixed: true},
				{X: 1, Y: 0, Fixed: true},
				{X: 0, Y: 1, Fixed: true},
				{X: 1, Y: 1, Fixed: true},
				{X: 0.5, Y: 0.5, M: 1},
			},
			Springs: []SpringConfig{
				{K: 2, Rest: 2}, {K: 2, Rest: 2}, {K: 2, Rest: 2}, {K: 2, Rest: 2},
			},
			Connectivity: []LinkConfig{
				{Spring: 0, A: 0, B: 4}, {Spring: 1, A: 1, B: 4},
				{Spring: 2, A: 2, B: 4}, {Spring: 3, A: 3, B: 4},
			},
		},
	},
}

func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	return names
}
