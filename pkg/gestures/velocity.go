package gestures

import (
	"slices"
	"time"

	"github.com/go-drift/flick/pkg/graphics"
)

// DefaultSampleWindow is how far back a VelocityTracker looks when
// estimating release velocity.
const DefaultSampleWindow = 100 * time.Millisecond

// VelocitySample is a timestamped pointer position.
type VelocitySample struct {
	Time     time.Time
	Position graphics.Offset
}

// VelocityTracker keeps the pointer positions seen within a short retention
// window and estimates velocity from the oldest retained sample.
//
// Samples older than the window, measured from the newest event, are
// discarded, so a pointer held still before release yields zero velocity.
type VelocityTracker struct {
	window  time.Duration
	samples []VelocitySample
}

// NewVelocityTracker creates a tracker with the given retention window.
// A non-positive window selects DefaultSampleWindow.
func NewVelocityTracker(window time.Duration) *VelocityTracker {
	if window <= 0 {
		window = DefaultSampleWindow
	}
	return &VelocityTracker{window: window}
}

// Window returns the retention window.
func (v *VelocityTracker) Window() time.Duration {
	return v.window
}

// AddSample records pos at time t and evicts samples that fell out of the window.
func (v *VelocityTracker) AddSample(t time.Time, pos graphics.Offset) {
	v.samples = append(v.samples, VelocitySample{Time: t, Position: pos})
	v.evict(t)
}

// Samples returns a copy of the retained samples, oldest first.
func (v *VelocityTracker) Samples() []VelocitySample {
	return slices.Clone(v.samples)
}

// Velocity estimates the velocity, in logical pixels per second, of a release
// at pos and time t. It is the displacement from the oldest sample still inside
// the window divided by the elapsed time. No retained samples, or zero elapsed
// time, yields zero velocity.
func (v *VelocityTracker) Velocity(t time.Time, pos graphics.Offset) graphics.Offset {
	v.evict(t)
	if len(v.samples) == 0 {
		return graphics.Offset{}
	}
	oldest := v.samples[0]
	elapsed := t.Sub(oldest.Time).Seconds()
	if elapsed <= 0 {
		return graphics.Offset{}
	}
	return pos.Sub(oldest.Position).Scale(1 / elapsed)
}

// Reset drops all samples.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}

func (v *VelocityTracker) evict(now time.Time) {
	drop := 0
	for drop < len(v.samples) && now.Sub(v.samples[drop].Time) > v.window {
		drop++
	}
	if drop > 0 {
		v.samples = append(v.samples[:0], v.samples[drop:]...)
	}
}
