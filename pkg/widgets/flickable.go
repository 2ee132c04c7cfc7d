package widgets

import (
	"time"

	"github.com/go-drift/flick/pkg/animation"
	"github.com/go-drift/flick/pkg/gestures"
	"github.com/go-drift/flick/pkg/graphics"
)

// FlickableConfig describes a Flickable at construction.
type FlickableConfig struct {
	// ViewportSize is the visible area in logical pixels.
	ViewportSize graphics.Size
	// ContentSize is the scrollable content area. It is fixed for the
	// lifetime of the Flickable.
	ContentSize graphics.Size
	// InitialOffset is clamped into range before use.
	InitialOffset graphics.Offset
	Physics       Physics
	// Clock supplies event and tick times. Nil uses the animation package clock.
	Clock animation.Clock
}

// Flickable is a kinetic-scroll viewport. It routes a single pointer stream
// to its touch areas and to its drag tracker, and hands the release velocity
// to a momentum animator. The tracker and the animator never write the offset
// at the same time: a press interrupts any animation, and an animation only
// starts once the drag has ended.
//
// Flickable is not safe for concurrent use; hosts deliver events and ticks
// from one goroutine.
//
// Pointer positions are in the Flickable's local coordinates, with the viewport
// occupying (0, 0) to ViewportSize. Touch areas are placed in content
// coordinates.
type Flickable struct {
	viewport   *Viewport
	tracker    *DragTracker
	animator   *MomentumAnimator
	clock      animation.Clock
	ticker     *animation.Ticker
	touchAreas []*TouchArea
}

// NewFlickable creates a Flickable from cfg.
func NewFlickable(cfg FlickableConfig) *Flickable {
	clock := cfg.Clock
	if clock == nil {
		clock = animation.DefaultClock()
	}
	physics := cfg.Physics.withDefaults()
	viewport := NewViewport(cfg.ViewportSize, cfg.ContentSize)
	viewport.setOffset(viewport.Clamp(cfg.InitialOffset))

	f := &Flickable{
		viewport: viewport,
		tracker:  NewDragTracker(viewport, physics),
		animator: NewMomentumAnimator(viewport, physics),
		clock:    clock,
	}
	// Frames are timed by f.clock, the same clock that stamps pointer events.
	f.ticker = animation.NewTicker(func(time.Time) { f.Tick() })
	return f
}

// Viewport returns the viewport whose offset this Flickable drives.
func (f *Flickable) Viewport() *Viewport { return f.viewport }

// Offset returns the current scroll offset.
func (f *Flickable) Offset() graphics.Offset { return f.viewport.Offset() }

// ViewportX returns the horizontal content translation, the negated offset.
func (f *Flickable) ViewportX() float64 { return f.viewport.ViewportX() }

// ViewportY returns the vertical content translation, the negated offset.
func (f *Flickable) ViewportY() float64 { return f.viewport.ViewportY() }

// IsDragging reports whether a drag session is active.
func (f *Flickable) IsDragging() bool { return f.tracker.IsDragging() }

// IsAnimating reports whether a momentum animation is in progress.
func (f *Flickable) IsAnimating() bool { return f.animator.IsAnimating() }

// Animation returns the in-progress momentum animation, if any.
func (f *Flickable) Animation() (Animation, bool) { return f.animator.Animation() }

// DragSession returns the active drag session, or nil.
func (f *Flickable) DragSession() *DragSession { return f.tracker.Session() }

// RestOffset returns where the current motion will settle.
func (f *Flickable) RestOffset() graphics.Offset { return f.animator.RestOffset() }

// AddTouchArea places a touch area in content coordinates and returns it.
func (f *Flickable) AddTouchArea(area *TouchArea) *TouchArea {
	f.touchAreas = append(f.touchAreas, area)
	return area
}

// TouchAreas returns the registered touch areas.
func (f *Flickable) TouchAreas() []*TouchArea {
	return f.touchAreas
}

// HandlePointer processes one pointer event to completion.
func (f *Flickable) HandlePointer(event gestures.PointerEvent) {
	now := f.clock.Now()

	// Areas are clipped by the viewport: a pointer outside it is outside
	// every area, wherever the area sits in content space.
	visible := f.viewport.Bounds().Contains(event.Position)
	overlayEvent := event
	overlayEvent.Position = f.viewport.ContentPosition(event.Position)
	for _, area := range f.touchAreas {
		area.update(overlayEvent, visible && area.Rect.Contains(overlayEvent.Position))
	}

	switch event.Phase {
	case gestures.PointerPhaseDown:
		if !event.IsPrimary() || !f.viewport.Bounds().Contains(event.Position) {
			return
		}
		f.stopAnimation()
		f.tracker.Press(event.Position, now)
	case gestures.PointerPhaseMove:
		f.tracker.Move(event.Position, now)
	case gestures.PointerPhaseUp:
		if !event.IsPrimary() || !f.tracker.IsDragging() {
			return
		}
		velocity := f.tracker.Release(event.Position, now)
		if f.animator.Start(velocity, now) {
			f.ticker.Start()
			return
		}
		f.viewport.settle()
	case gestures.PointerPhaseCancel, gestures.PointerPhaseExit:
		if f.tracker.IsDragging() {
			f.tracker.Cancel()
			f.viewport.settle()
		}
	}
}

// Tick advances any momentum animation to the Flickable's clock time.
func (f *Flickable) Tick() {
	if !f.animator.Tick(f.clock.Now()) {
		f.ticker.Stop()
	}
}

// JumpTo stops any motion and moves to offset, clamped into range.
func (f *Flickable) JumpTo(offset graphics.Offset) {
	f.stopAnimation()
	f.tracker.Cancel()
	f.viewport.setOffset(f.viewport.Clamp(offset))
}

// Dispose stops the frame ticker.
func (f *Flickable) Dispose() {
	f.stopAnimation()
}

func (f *Flickable) stopAnimation() {
	f.animator.Stop()
	f.ticker.Stop()
}
