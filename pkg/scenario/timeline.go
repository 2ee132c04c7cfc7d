package scenario

import (
	"time"

	"github.com/go-drift/flick/pkg/graphics"
)

// Sample is the flickable state at one instant of a run.
type Sample struct {
	Elapsed   time.Duration
	Offset    graphics.Offset
	Animating bool
	Dragging  bool
}

// Timeline is the ordered sequence of samples recorded during a run:
// one at the start, one after each pointer event, and one after each tick.
type Timeline []Sample

// Duration returns the elapsed time of the last sample.
func (t Timeline) Duration() time.Duration {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Elapsed
}

// Bounds returns the smallest rectangle containing every sampled offset.
func (t Timeline) Bounds() graphics.Rect {
	if len(t) == 0 {
		return graphics.Rect{}
	}
	first := t[0].Offset
	r := graphics.Rect{Left: first.X, Top: first.Y, Right: first.X, Bottom: first.Y}
	for _, s := range t[1:] {
		r.Left = min(r.Left, s.Offset.X)
		r.Right = max(r.Right, s.Offset.X)
		r.Top = min(r.Top, s.Offset.Y)
		r.Bottom = max(r.Bottom, s.Offset.Y)
	}
	return r
}

// Final returns the last sample, or the zero sample for an empty timeline.
func (t Timeline) Final() Sample {
	if len(t) == 0 {
		return Sample{}
	}
	return t[len(t)-1]
}
