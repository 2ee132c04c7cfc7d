package widgets

import (
	"fmt"

	"github.com/go-drift/flick/pkg/gestures"
	"github.com/go-drift/flick/pkg/graphics"
)

// TouchAreaState is the interaction state of a TouchArea.
type TouchAreaState int

const (
	TouchAreaIdle TouchAreaState = iota
	TouchAreaHovered
	TouchAreaPressed
)

func (s TouchAreaState) String() string {
	switch s {
	case TouchAreaIdle:
		return "idle"
	case TouchAreaHovered:
		return "hovered"
	case TouchAreaPressed:
		return "pressed"
	default:
		return fmt.Sprintf("TouchAreaState(%d)", int(s))
	}
}

// TouchArea tracks pressed and hovered flags for a rectangular region.
//
// It reacts to the raw pointer stream on its own, so it keeps working while an
// enclosing Flickable is dragging or decelerating over the same events.
type TouchArea struct {
	// Rect is the region in the coordinate space of the events it receives.
	Rect graphics.Rect
	// OnClicked fires on a primary release inside the region that ends a
	// press which started inside it.
	OnClicked func()
	// OnChanged fires whenever Pressed or Hovered changes.
	OnChanged func()

	pressed bool
	hovered bool
}

// NewTouchArea creates a touch area covering rect.
func NewTouchArea(rect graphics.Rect) *TouchArea {
	return &TouchArea{Rect: rect}
}

// Pressed reports whether a primary press that began inside is still held.
func (t *TouchArea) Pressed() bool { return t.pressed }

// Hovered reports whether the pointer is currently inside the region.
func (t *TouchArea) Hovered() bool { return t.hovered }

// State collapses the flags into a single state, pressed taking precedence.
func (t *TouchArea) State() TouchAreaState {
	switch {
	case t.pressed:
		return TouchAreaPressed
	case t.hovered:
		return TouchAreaHovered
	default:
		return TouchAreaIdle
	}
}

// HandlePointer updates the state for one event. Event positions must be in the
// same coordinate space as Rect.
func (t *TouchArea) HandlePointer(event gestures.PointerEvent) {
	t.update(event, t.Rect.Contains(event.Position))
}

// update applies event with the hit test already decided by the caller.
func (t *TouchArea) update(event gestures.PointerEvent, inside bool) {
	pressed, hovered := t.pressed, t.hovered
	clicked := false

	switch event.Phase {
	case gestures.PointerPhaseMove:
		t.hovered = inside
	case gestures.PointerPhaseDown:
		t.hovered = inside
		if inside && event.IsPrimary() {
			t.pressed = true
		}
	case gestures.PointerPhaseUp:
		t.hovered = inside
		if t.pressed && event.IsPrimary() {
			t.pressed = false
			clicked = inside
		}
	case gestures.PointerPhaseCancel:
		t.pressed = false
	case gestures.PointerPhaseExit:
		t.pressed = false
		t.hovered = false
	}

	if (pressed != t.pressed || hovered != t.hovered) && t.OnChanged != nil {
		t.OnChanged()
	}
	if clicked && t.OnClicked != nil {
		t.OnClicked()
	}
}
