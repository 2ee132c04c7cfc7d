// Package gestures defines the pointer event stream consumed by scrollable
// widgets and the velocity estimation used when a drag is released.
package gestures

import (
	"fmt"

	"github.com/go-drift/flick/pkg/graphics"
)

// PointerPhase identifies the stage of a pointer interaction.
type PointerPhase int

const (
	// PointerPhaseDown is a button press.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is a position change, with or without a held button.
	PointerPhaseMove
	// PointerPhaseUp is a button release.
	PointerPhaseUp
	// PointerPhaseCancel means another gesture claimed the pointer.
	PointerPhaseCancel
	// PointerPhaseExit means the pointer left the window.
	PointerPhaseExit
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	case PointerPhaseExit:
		return "exit"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerButton identifies which button a press or release refers to.
// The zero value is the primary button so touch-style events need not set it.
type PointerButton int

const (
	ButtonPrimary PointerButton = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a single pointer sample in logical coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
	Button    PointerButton
}

// IsPrimary reports whether the event concerns the primary button.
// Only presses and releases carry a meaningful button.
func (e PointerEvent) IsPrimary() bool {
	return e.Button == ButtonPrimary
}

// Pressed returns a primary-button press event at pos.
func Pressed(pos graphics.Offset) PointerEvent {
	return PointerEvent{Position: pos, Phase: PointerPhaseDown}
}

// Moved returns a move event at pos.
func Moved(pos graphics.Offset) PointerEvent {
	return PointerEvent{Position: pos, Phase: PointerPhaseMove}
}

// Released returns a primary-button release event at pos.
func Released(pos graphics.Offset) PointerEvent {
	return PointerEvent{Position: pos, Phase: PointerPhaseUp}
}
