package scenario

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinScenariosBuild(t *testing.T) {
	for _, sc := range Builtin() {
		t.Run(sc.Name, func(t *testing.T) {
			sys, err := sc.System()
			if err != nil {
				t.Fatalf("build failed: %v", err)
			}
			if sys.MassCount() != len(sc.Masses) {
				t.Errorf("expected %d masses, got %d", len(sc.Masses), sys.MassCount())
			}
			if sys.SpringCount() != len(sc.Springs) {
				t.Errorf("expected %d springs, got %d", len(sc.Springs), sys.SpringCount())
			}
		})
	}
}

func TestGet(t *testing.T) {
	if _, ok := Get("one-spring"); !ok {
		t.Error("expected one-spring scenario")
	}
	if _, ok := Get("nonexistent"); ok {
		t.Error("expected lookup miss")
	}
}

func TestRun_OneSpring(t *testing.T) {
	sc, ok := Get("one-spring")
	if !ok {
		t.Fatal("missing builtin")
	}
	sc.Steps = 3

	dir := t.TempDir()
	result, err := Run(context.Background(), sc, dir)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.StepsTaken != 3 {
		t.Errorf("expected 3 steps, got %d", result.StepsTaken)
	}
	if len(result.Errors) != 0 {
		t.Errorf("unexpected step errors: %v", result.Errors)
	}
	if _, ok := result.Metrics["energy_drift"]; !ok {
		t.Error("expected energy_drift metric")
	}

	f, err := os.Open(filepath.Join(dir, sc.Output))
	if err != nil {
		t.Fatalf("trajectory file missing: %v", err)
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (initial + 3 steps), got %d", len(lines))
	}
	if lines[0] != "0 -3 0 0" {
		t.Errorf("unexpected initial line: %q", lines[0])
	}
	if lines[1] != "0 -2.99 0 0.1" {
		t.Errorf("unexpected first-step line: %q", lines[1])
	}
}

func TestRun_BadOutputDir(t *testing.T) {
	sc, ok := Get("one-spring")
	if !ok {
		t.Fatal("missing builtin")
	}
	sc.Steps = 1

	if _, err := Run(context.Background(), sc, "/nonexistent/path"); err == nil {
		t.Error("expected error for unwritable output")
	}
}
