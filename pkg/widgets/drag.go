package widgets

import (
	"time"

	"github.com/go-drift/flick/pkg/gestures"
	"github.com/go-drift/flick/pkg/graphics"
)

// DragSession is the state of one held press over the draggable surface.
type DragSession struct {
	StartPosition  graphics.Offset
	LastPosition   graphics.Offset
	LastSampleTime time.Time

	samples *gestures.VelocityTracker
}

// RecentSamples returns the positions still inside the sampling window, oldest first.
func (s *DragSession) RecentSamples() []gestures.VelocitySample {
	return s.samples.Samples()
}

// DragTracker turns press, move, and release events into viewport offset
// changes while a drag is active. During a drag the offset follows the pointer
// one to one with no boundary resistance; axes whose content fits the viewport
// stay pinned at 0.
type DragTracker struct {
	viewport *Viewport
	physics  Physics
	session  *DragSession
}

// NewDragTracker creates a tracker writing to viewport.
func NewDragTracker(viewport *Viewport, physics Physics) *DragTracker {
	return &DragTracker{
		viewport: viewport,
		physics:  physics.withDefaults(),
	}
}

// IsDragging reports whether a drag session is active.
func (d *DragTracker) IsDragging() bool {
	return d.session != nil
}

// Session returns the active drag session, or nil.
func (d *DragTracker) Session() *DragSession {
	return d.session
}

// Press begins a drag session at pos. A press during an active session
// restarts the session from pos.
func (d *DragTracker) Press(pos graphics.Offset, now time.Time) {
	samples := gestures.NewVelocityTracker(d.physics.SampleWindow)
	samples.AddSample(now, pos)
	d.session = &DragSession{
		StartPosition:  pos,
		LastPosition:   pos,
		LastSampleTime: now,
		samples:        samples,
	}
}

// Move applies the pointer movement since the last event to the offset.
// It returns false when no drag is active.
func (d *DragTracker) Move(pos graphics.Offset, now time.Time) bool {
	s := d.session
	if s == nil {
		return false
	}
	delta := pos.Sub(s.LastPosition)
	d.viewport.setOffset(d.viewport.Offset().Add(delta))
	s.samples.AddSample(now, pos)
	s.LastPosition = pos
	s.LastSampleTime = now
	return true
}

// Release ends the drag and returns the release velocity in logical pixels
// per second. Movement between the last move and pos is applied first.
// Velocity is zero for axes that cannot scroll and when no drag is active.
func (d *DragTracker) Release(pos graphics.Offset, now time.Time) graphics.Offset {
	s := d.session
	if s == nil {
		return graphics.Offset{}
	}
	if pos != s.LastPosition {
		d.viewport.setOffset(d.viewport.Offset().Add(pos.Sub(s.LastPosition)))
	}
	velocity := s.samples.Velocity(now, pos)
	d.session = nil

	if !d.viewport.ScrollableX() {
		velocity.X = 0
	}
	if !d.viewport.ScrollableY() {
		velocity.Y = 0
	}
	return d.physics.normalizeVelocity(velocity)
}

// Cancel ends the drag without a velocity handoff.
func (d *DragTracker) Cancel() {
	d.session = nil
}
