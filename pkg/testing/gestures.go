package testing

import (
	"time"

	"github.com/go-drift/flick/pkg/gestures"
	"github.com/go-drift/flick/pkg/graphics"
)

// pointerState tracks the simulated pointer between events.
type pointerState struct {
	id       int64
	position graphics.Offset
	button   gestures.PointerButton
}

// nextPointerID is incremented for each new press to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// Press sends a primary press at pos.
func (t *FlickTester) Press(pos graphics.Offset) {
	t.PressButton(pos, gestures.ButtonPrimary)
}

// PressButton sends a press of button at pos. Later events of the same
// pointer report the same button.
func (t *FlickTester) PressButton(pos graphics.Offset, button gestures.PointerButton) {
	t.pointer = &pointerState{id: allocPointerID(), position: pos, button: button}
	t.send(gestures.PointerEvent{
		PointerID: t.pointer.id,
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
		Button:    button,
	})
}

// MoveTo sends a move to pos. Without a held press it is a hover move.
func (t *FlickTester) MoveTo(pos graphics.Offset) {
	t.send(t.eventAt(pos, gestures.PointerPhaseMove))
}

// Release sends a release at pos.
func (t *FlickTester) Release(pos graphics.Offset) {
	t.send(t.eventAt(pos, gestures.PointerPhaseUp))
	t.pointer = nil
}

// Cancel sends a cancel at the last pointer position.
func (t *FlickTester) Cancel() {
	t.send(t.eventAt(t.lastPosition(), gestures.PointerPhaseCancel))
	t.pointer = nil
}

// Exit reports that the pointer left the window.
func (t *FlickTester) Exit() {
	t.send(t.eventAt(t.lastPosition(), gestures.PointerPhaseExit))
	t.pointer = nil
}

// DragFrom presses at start, moves by delta in steps evenly spread over
// duration, then holds still for longer than the sampling window before
// releasing, so the drag ends without momentum.
func (t *FlickTester) DragFrom(start, delta graphics.Offset, steps int, duration time.Duration) {
	end := t.moveSteps(start, delta, steps, duration)
	t.clock.Advance(time.Second)
	t.Release(end)
}

// Fling presses at start and moves by delta in steps spread over duration,
// releasing immediately after the last move so the motion carries momentum.
func (t *FlickTester) Fling(start, delta graphics.Offset, steps int, duration time.Duration) {
	end := t.moveSteps(start, delta, steps, duration)
	t.Release(end)
}

func (t *FlickTester) moveSteps(start, delta graphics.Offset, steps int, duration time.Duration) graphics.Offset {
	if steps < 1 {
		steps = 1
	}
	t.Press(start)
	interval := duration / time.Duration(steps)
	for i := 1; i <= steps; i++ {
		t.clock.Advance(interval)
		frac := float64(i) / float64(steps)
		t.MoveTo(start.Add(delta.Scale(frac)))
	}
	return start.Add(delta)
}

func (t *FlickTester) eventAt(pos graphics.Offset, phase gestures.PointerPhase) gestures.PointerEvent {
	ev := gestures.PointerEvent{Position: pos, Phase: phase}
	if t.pointer != nil {
		ev.PointerID = t.pointer.id
		ev.Button = t.pointer.button
		t.pointer.position = pos
	}
	return ev
}

func (t *FlickTester) lastPosition() graphics.Offset {
	if t.pointer != nil {
		return t.pointer.position
	}
	return graphics.Offset{}
}

func (t *FlickTester) send(event gestures.PointerEvent) {
	t.flick.HandlePointer(event)
}
