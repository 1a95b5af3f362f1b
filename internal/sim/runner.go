// Package sim drives repeated steps of a mesh system and records
// trajectories, in the shape of the original test harness loop but with
// I/O pushed out to observers.
package sim

import (
	"context"

	"github.com/san-kum/springmesh/internal/mesh"
)

type Runner struct {
	sys       *mesh.System
	metrics   []Metric
	observers []Observer
}

func New(sys *mesh.System) *Runner {
	return &Runner{sys: sys}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run advances the system cfg.Steps times. Row i of every track is the
// tracked mass's state after i steps; row 0 is the initial state. Step
// errors (degenerate springs) are recorded in Result.Errors and the run
// continues; only context cancellation and invalid config abort.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.validate(r.sys); err != nil {
		return nil, err
	}

	result := &Result{
		Times:   make([]float64, 0, cfg.Steps+1),
		Tracks:  make(map[int][]mesh.Snapshot, len(cfg.Track)),
		Metrics: make(map[string]float64),
	}
	for _, i := range cfg.Track {
		result.Tracks[i] = make([]mesh.Snapshot, 0, cfg.Steps+1)
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	r.record(0, t, cfg, result)

	for i := 1; i <= cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := r.sys.Step(cfg.Dt); err != nil {
			result.Errors = append(result.Errors, err)
		}
		t += cfg.Dt
		result.StepsTaken++

		r.record(i, t, cfg, result)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (r *Runner) record(step int, t float64, cfg Config, result *Result) {
	result.Times = append(result.Times, t)
	for _, i := range cfg.Track {
		result.Tracks[i] = append(result.Tracks[i], r.sys.Snapshot(i))
	}
	for _, m := range r.metrics {
		m.Observe(t, r.sys)
	}
	for _, o := range r.observers {
		o.OnStep(step, t, r.sys)
	}
}
