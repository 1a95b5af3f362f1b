package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scenario != "one-spring" {
		t.Errorf("expected scenario one-spring, got %s", cfg.Scenario)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
}

func TestToScenario(t *testing.T) {
	cfg := DefaultConfig()

	sc, err := cfg.ToScenario()
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if len(sc.Masses) != 2 || len(sc.Springs) != 1 {
		t.Errorf("unexpected scenario shape: %d masses, %d springs", len(sc.Masses), len(sc.Springs))
	}
	if !sc.Masses[0].Fixed {
		t.Error("first mass should be an anchor")
	}
	if sc.Masses[1].M != 3 {
		t.Errorf("expected mass 3, got %g", sc.Masses[1].M)
	}

	if _, err := sc.System(); err != nil {
		t.Fatalf("scenario should build: %v", err)
	}
}

func TestToScenario_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative steps", func(c *Config) { c.Steps = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if _, err := cfg.ToScenario(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := DefaultConfig()
	cfg.Dt = 0.05
	cfg.Springs[0].K = 7

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Dt != 0.05 {
		t.Errorf("expected dt 0.05, got %g", loaded.Dt)
	}
	if loaded.Springs[0].K != 7 {
		t.Errorf("expected k 7, got %g", loaded.Springs[0].K)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("one-spring", "stiff")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Springs[0].K != 30 {
		t.Errorf("expected k 30, got %g", cfg.Springs[0].K)
	}

	sc, err := cfg.ToScenario()
	if err != nil {
		t.Fatalf("preset should convert: %v", err)
	}
	if _, err := sc.System(); err != nil {
		t.Fatalf("preset should build: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("one-spring", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "stiff") != nil {
		t.Error("expected nil for nonexistent scenario")
	}
}
