package demo

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/flick/pkg/gestures"
	"github.com/go-drift/flick/pkg/graphics"
)

const pressButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// mouseState turns tcell's button-mask mouse reports into a pointer stream.
type mouseState struct {
	id       int64
	down     bool
	button   gestures.PointerButton
	position graphics.Offset
	seen     bool
}

func cellPosition(x, y int) graphics.Offset {
	return graphics.Offset{
		X: (float64(x) + 0.5) * CellWidth,
		Y: (float64(y) + 0.5) * CellHeight,
	}
}

func buttonFor(mask tcell.ButtonMask) gestures.PointerButton {
	switch {
	case mask&tcell.Button1 != 0:
		return gestures.ButtonPrimary
	case mask&tcell.Button2 != 0:
		return gestures.ButtonSecondary
	default:
		return gestures.ButtonMiddle
	}
}

// translate returns the pointer event implied by ev. It returns false for
// reports that carry nothing new, such as wheel-only reports.
func (m *mouseState) translate(ev *tcell.EventMouse) (gestures.PointerEvent, bool) {
	pos := cellPosition(ev.Position())
	buttons := ev.Buttons() & pressButtons

	var phase gestures.PointerPhase
	switch {
	case !m.down && buttons != 0:
		m.id++
		m.down = true
		m.button = buttonFor(buttons)
		phase = gestures.PointerPhaseDown
	case m.down && buttons != 0:
		phase = gestures.PointerPhaseMove
	case m.down:
		m.down = false
		phase = gestures.PointerPhaseUp
	default:
		if m.seen && pos == m.position {
			return gestures.PointerEvent{}, false
		}
		phase = gestures.PointerPhaseMove
	}

	event := gestures.PointerEvent{
		PointerID: m.id,
		Position:  pos,
		Phase:     phase,
		Button:    m.button,
	}
	m.position = pos
	m.seen = true
	return event, true
}

// exit reports the pointer leaving the window. It returns false when there
// is no pointer to report.
func (m *mouseState) exit() (gestures.PointerEvent, bool) {
	if !m.seen {
		return gestures.PointerEvent{}, false
	}
	event := gestures.PointerEvent{
		PointerID: m.id,
		Position:  m.position,
		Phase:     gestures.PointerPhaseExit,
		Button:    m.button,
	}
	m.down = false
	m.seen = false
	return event, true
}
