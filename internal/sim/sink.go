package sim

import (
	"fmt"
	"io"

	"github.com/san-kum/springmesh/internal/mesh"
)

// TrackWriter is an Observer that emits one trajectory line per step:
// four whitespace-separated fields per tracked mass,
// "position.x position.y velocity.x velocity.y", newline-terminated.
// Column pairs line up for external plotting tools.
type TrackWriter struct {
	w       io.Writer
	indices []int
	err     error
}

func NewTrackWriter(w io.Writer, indices ...int) *TrackWriter {
	return &TrackWriter{w: w, indices: indices}
}

func (t *TrackWriter) OnStep(step int, _ float64, sys *mesh.System) {
	if t.err != nil {
		return
	}
	for n, i := range t.indices {
		snap := sys.Snapshot(i)
		if n > 0 {
			if _, err := fmt.Fprint(t.w, " "); err != nil {
				t.err = err
				return
			}
		}
		if _, err := fmt.Fprintf(t.w, "%g %g %g %g",
			snap.Position.X, snap.Position.Y, snap.Velocity.X, snap.Velocity.Y); err != nil {
			t.err = err
			return
		}
	}
	if _, err := fmt.Fprintln(t.w); err != nil {
		t.err = err
	}
}

// Err reports the first write failure; the writer stops emitting after one.
func (t *TrackWriter) Err() error { return t.err }
