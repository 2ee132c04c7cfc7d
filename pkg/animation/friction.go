package animation

import "math"

// FrictionSimulation models motion along one axis under a constant
// deceleration opposing the initial velocity. Positions are computed in
// closed form, so sampling is exact at any time and idempotent past the
// stop time.
//
// Units are caller-defined; the scroll packages use logical pixels and seconds.
type FrictionSimulation struct {
	start        float64
	velocity     float64
	deceleration float64
	stopTime     float64
}

// NewFrictionSimulation creates a simulation starting at start with the given
// initial velocity. A non-positive deceleration or zero velocity yields a
// simulation that is already at rest.
func NewFrictionSimulation(deceleration, start, velocity float64) *FrictionSimulation {
	s := &FrictionSimulation{
		start:        start,
		velocity:     velocity,
		deceleration: deceleration,
	}
	if deceleration > 0 && velocity != 0 {
		s.stopTime = math.Abs(velocity) / deceleration
	}
	return s
}

// StopTime returns the time, in seconds, at which the velocity reaches zero.
func (s *FrictionSimulation) StopTime() float64 {
	return s.stopTime
}

// Position returns the position at time t seconds after the start.
// Negative times clamp to the start; times past StopTime hold the rest position.
func (s *FrictionSimulation) Position(t float64) float64 {
	if t <= 0 || s.stopTime == 0 {
		return s.start
	}
	if t > s.stopTime {
		t = s.stopTime
	}
	speed := math.Abs(s.velocity)
	distance := speed*t - 0.5*s.deceleration*t*t
	return s.start + math.Copysign(distance, s.velocity)
}

// Velocity returns the signed velocity at time t.
func (s *FrictionSimulation) Velocity(t float64) float64 {
	if t >= s.stopTime {
		return 0
	}
	if t < 0 {
		t = 0
	}
	speed := math.Abs(s.velocity) - s.deceleration*t
	return math.Copysign(speed, s.velocity)
}

// RestPosition returns the analytic position where motion stops:
// start + sign(v)·v²/(2a).
func (s *FrictionSimulation) RestPosition() float64 {
	return s.Position(s.stopTime)
}

// IsDone reports whether the simulation has come to rest at time t.
func (s *FrictionSimulation) IsDone(t float64) bool {
	return t >= s.stopTime
}
