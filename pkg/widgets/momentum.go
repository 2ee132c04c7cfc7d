package widgets

import (
	"fmt"
	"time"

	"github.com/go-drift/flick/pkg/animation"
	"github.com/go-drift/flick/pkg/graphics"
)

// AnimationKind is the phase of a momentum animation.
type AnimationKind int

const (
	AnimationDecelerating AnimationKind = iota
	AnimationSettled
)

func (k AnimationKind) String() string {
	switch k {
	case AnimationDecelerating:
		return "decelerating"
	case AnimationSettled:
		return "settled"
	default:
		return fmt.Sprintf("AnimationKind(%d)", int(k))
	}
}

// Animation describes an in-flight flick.
type Animation struct {
	Kind            AnimationKind
	InitialVelocity graphics.Offset
	StartTime       time.Time
	StartOffset     graphics.Offset
}

type axisMotion struct {
	sim  *animation.FrictionSimulation
	done bool
}

// MomentumAnimator owns the viewport offset after a release with non-zero
// velocity. Each axis follows a closed-form constant-deceleration trajectory.
// An axis whose trajectory would leave the legal range stops exactly at the
// bound with no bounce.
type MomentumAnimator struct {
	viewport     *Viewport
	deceleration float64
	current      *Animation
	x, y         axisMotion

	// OnSettled is called once when an animation comes to rest on its own.
	// It is not called on Stop.
	OnSettled func()
}

// NewMomentumAnimator creates an animator writing to viewport.
func NewMomentumAnimator(viewport *Viewport, physics Physics) *MomentumAnimator {
	return &MomentumAnimator{
		viewport:     viewport,
		deceleration: physics.withDefaults().Deceleration,
	}
}

// IsAnimating reports whether a deceleration is in progress.
func (m *MomentumAnimator) IsAnimating() bool {
	return m.current != nil && m.current.Kind == AnimationDecelerating
}

// Animation returns a copy of the current animation, if any.
func (m *MomentumAnimator) Animation() (Animation, bool) {
	if m.current == nil {
		return Animation{}, false
	}
	return *m.current, true
}

// Start hands the offset to the animator with the given initial velocity at
// time now. It returns false, leaving the animator idle, when velocity is zero.
// An out-of-range starting offset is snapped to the nearest bound first.
func (m *MomentumAnimator) Start(velocity graphics.Offset, now time.Time) bool {
	m.Stop()
	if velocity.IsZero() {
		return false
	}
	start := m.viewport.Clamp(m.viewport.Offset())
	m.viewport.setOffset(start)
	m.current = &Animation{
		Kind:            AnimationDecelerating,
		InitialVelocity: velocity,
		StartTime:       now,
		StartOffset:     start,
	}
	m.x = axisMotion{sim: animation.NewFrictionSimulation(m.deceleration, start.X, velocity.X)}
	m.y = axisMotion{sim: animation.NewFrictionSimulation(m.deceleration, start.Y, velocity.Y)}
	return true
}

// Tick advances the animation to time now. It returns true while the
// animation is still decelerating after this tick.
func (m *MomentumAnimator) Tick(now time.Time) bool {
	if !m.IsAnimating() {
		return false
	}
	t := now.Sub(m.current.StartTime).Seconds()
	size, content := m.viewport.Size(), m.viewport.ContentSize()

	offset := m.viewport.Offset()
	offset.X = m.x.advance(t, size.Width, content.Width, offset.X)
	offset.Y = m.y.advance(t, size.Height, content.Height, offset.Y)
	m.viewport.setOffset(offset)

	if m.x.done && m.y.done {
		m.current.Kind = AnimationSettled
		m.current = nil
		if m.OnSettled != nil {
			m.OnSettled()
		}
		return false
	}
	return true
}

// Stop abandons any in-progress animation, leaving the offset where it is.
func (m *MomentumAnimator) Stop() {
	m.current = nil
	m.x = axisMotion{}
	m.y = axisMotion{}
}

// RestOffset returns where the current animation will come to rest, clamped
// into range. Without an animation it returns the current offset.
func (m *MomentumAnimator) RestOffset() graphics.Offset {
	if !m.IsAnimating() {
		return m.viewport.Offset()
	}
	rest := graphics.Offset{X: m.x.rest(), Y: m.y.rest()}
	if m.x.done {
		rest.X = m.viewport.OffsetX()
	}
	if m.y.done {
		rest.Y = m.viewport.OffsetY()
	}
	return m.viewport.Clamp(rest)
}

func (a *axisMotion) advance(t, viewport, content, current float64) float64 {
	if a.done || a.sim == nil {
		a.done = true
		return current
	}
	p := a.sim.Position(t)
	clamped := clampAxis(p, viewport, content)
	if clamped != p || a.sim.IsDone(t) {
		a.done = true
	}
	return clamped
}

func (a *axisMotion) rest() float64 {
	if a.sim == nil {
		return 0
	}
	return a.sim.RestPosition()
}
