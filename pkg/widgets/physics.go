package widgets

import (
	"math"
	"time"

	"github.com/go-drift/flick/pkg/gestures"
	"github.com/go-drift/flick/pkg/graphics"
)

// DefaultDeceleration is the friction applied to a flick, in logical pixels
// per second squared.
const DefaultDeceleration = 2200.0

// Physics configures drag sampling and momentum for a Flickable.
// Zero fields take their defaults.
type Physics struct {
	// Deceleration is the constant magnitude opposing motion on each axis.
	Deceleration float64
	// SampleWindow bounds how much recent motion informs release velocity.
	SampleWindow time.Duration
	// MaxFlingVelocity caps each axis of the release velocity. Zero means unbounded.
	MaxFlingVelocity float64
}

// DefaultPhysics returns the physics used when none is configured.
func DefaultPhysics() Physics {
	return Physics{
		Deceleration: DefaultDeceleration,
		SampleWindow: gestures.DefaultSampleWindow,
	}
}

func (p Physics) withDefaults() Physics {
	if p.Deceleration <= 0 {
		p.Deceleration = DefaultDeceleration
	}
	if p.SampleWindow <= 0 {
		p.SampleWindow = gestures.DefaultSampleWindow
	}
	if p.MaxFlingVelocity < 0 {
		p.MaxFlingVelocity = 0
	}
	return p
}

// normalizeVelocity drops non-finite components and applies MaxFlingVelocity.
func (p Physics) normalizeVelocity(v graphics.Offset) graphics.Offset {
	return graphics.Offset{
		X: p.normalizeAxis(v.X),
		Y: p.normalizeAxis(v.Y),
	}
}

func (p Physics) normalizeAxis(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if p.MaxFlingVelocity > 0 {
		return Clamp(v, -p.MaxFlingVelocity, p.MaxFlingVelocity)
	}
	return v
}

// Clamp constrains a value between min and max bounds.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
