// Package demo runs an interactive kinetic-scroll viewport in the terminal.
//
// Terminal cells are mapped to logical pixels so that drag distances and
// fling velocities use the same units as a graphical host.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/flick/pkg/animation"
	"github.com/go-drift/flick/pkg/errors"
	"github.com/go-drift/flick/pkg/graphics"
	"github.com/go-drift/flick/pkg/widgets"
)

const (
	// CellWidth is the logical width of one terminal column.
	CellWidth = 8.0
	// CellHeight is the logical height of one terminal row.
	CellHeight = 16.0

	buttonEvery = 40
	buttonLabel = "[ top ]"
	buttonCol   = 2
)

// Config configures a Demo.
type Config struct {
	Lines   int
	Frame   time.Duration
	Physics widgets.Physics
	// Clock overrides the Flickable clock. Nil uses the animation package clock.
	Clock animation.Clock
}

// Demo owns the screen and the Flickable it renders.
type Demo struct {
	screen  tcell.Screen
	cfg     Config
	flick   *widgets.Flickable
	buttons []*widgets.TouchArea
	mouse   mouseState
	width   int
	height  int
}

var (
	styleText     = tcell.StyleDefault
	styleGutter   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleButton   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleHovered  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	stylePressed  = tcell.StyleDefault.Reverse(true)
	styleStatus   = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleOverflow = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

// New initializes screen and builds the demo content.
func New(screen tcell.Screen, cfg Config) (*Demo, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()

	if cfg.Lines <= 0 {
		cfg.Lines = 400
	}
	if cfg.Frame <= 0 {
		cfg.Frame = 16 * time.Millisecond
	}
	d := &Demo{screen: screen, cfg: cfg}
	d.resize()
	return d, nil
}

// Flickable returns the flickable driven by the demo.
func (d *Demo) Flickable() *widgets.Flickable {
	return d.flick
}

// Run processes input and frames until the user quits or ctx is done.
// A panic inside the loop is reported and returned as an error after the
// terminal is restored.
func (d *Demo) Run(ctx context.Context) (err error) {
	defer d.screen.Fini()
	defer errors.RecoverWithCallback("demo.Run", func(r any) {
		err = fmt.Errorf("demo aborted: %v", r)
	})

	ticker := time.NewTicker(d.cfg.Frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go d.pollEvents(ctx, eventChan)

	d.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-eventChan:
			if !ok || !d.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			d.frame()
		}
	}
}

// frame advances running animations and redraws.
func (d *Demo) frame() {
	if animation.HasActiveTickers() {
		animation.StepTickers()
	}
	d.draw()
}

// pollEvents forwards screen events to out until the screen is finalized,
// which closes out, or ctx is done.
func (d *Demo) pollEvents(ctx context.Context, out chan<- tcell.Event) {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handleEvent applies one terminal event. It returns false to quit.
func (d *Demo) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyHome:
			d.flick.JumpTo(graphics.Offset{})
		case ev.Key() == tcell.KeyEnd:
			d.flick.JumpTo(d.flick.Viewport().MaxOffset())
		}
	case *tcell.EventMouse:
		if pe, ok := d.mouse.translate(ev); ok {
			d.flick.HandlePointer(pe)
		}
	case *tcell.EventFocus:
		if !ev.Focused {
			if pe, ok := d.mouse.exit(); ok {
				d.flick.HandlePointer(pe)
			}
		}
	case *tcell.EventResize:
		d.screen.Sync()
		d.resize()
	}
	return true
}

// resize rebuilds the flickable for the current screen size, keeping the
// scroll position.
func (d *Demo) resize() {
	w, h := d.screen.Size()
	if d.flick != nil && w == d.width && h == d.height {
		return
	}
	d.width, d.height = w, h

	var offset graphics.Offset
	if d.flick != nil {
		offset = d.flick.Offset()
		d.flick.Dispose()
	}
	rows := max(h-1, 1)
	d.flick = widgets.NewFlickable(widgets.FlickableConfig{
		ViewportSize:  graphics.Size{Width: float64(w) * CellWidth, Height: float64(rows) * CellHeight},
		ContentSize:   graphics.Size{Width: float64(w) * CellWidth, Height: float64(d.cfg.Lines) * CellHeight},
		InitialOffset: offset,
		Physics:       d.cfg.Physics,
		Clock:         d.cfg.Clock,
	})

	d.buttons = d.buttons[:0]
	for line := buttonEvery; line < d.cfg.Lines; line += buttonEvery {
		area := widgets.NewTouchArea(graphics.RectFromLTWH(
			buttonCol*CellWidth, float64(line)*CellHeight,
			float64(len(buttonLabel))*CellWidth, CellHeight,
		))
		area.OnClicked = func() { d.flick.JumpTo(graphics.Offset{}) }
		d.flick.AddTouchArea(area)
		d.buttons = append(d.buttons, area)
	}
}

// lineAt returns the content line shown on screen row, or -1 past either end.
func (d *Demo) lineAt(row int) int {
	y := float64(row)*CellHeight + d.flick.Offset().Y
	if y < 0 {
		return -1
	}
	line := int(y / CellHeight)
	if line >= d.cfg.Lines {
		return -1
	}
	return line
}

func (d *Demo) buttonAt(line int) *widgets.TouchArea {
	if line <= 0 || line%buttonEvery != 0 {
		return nil
	}
	i := line/buttonEvery - 1
	if i >= len(d.buttons) {
		return nil
	}
	return d.buttons[i]
}

func (d *Demo) draw() {
	d.screen.Clear()
	for row := 0; row < d.height-1; row++ {
		line := d.lineAt(row)
		if line < 0 {
			drawText(d.screen, 0, row, "~", styleOverflow)
			continue
		}
		if button := d.buttonAt(line); button != nil {
			style := styleButton
			switch button.State() {
			case widgets.TouchAreaPressed:
				style = stylePressed
			case widgets.TouchAreaHovered:
				style = styleHovered
			}
			drawText(d.screen, buttonCol, row, buttonLabel, style)
			continue
		}
		gutter := fmt.Sprintf("%4d ", line)
		drawText(d.screen, 0, row, gutter, styleGutter)
		drawText(d.screen, len(gutter), row, lineText(line), styleText)
	}
	d.drawStatus()
	d.screen.Show()
}

func (d *Demo) drawStatus() {
	row := d.height - 1
	for x := 0; x < d.width; x++ {
		d.screen.SetContent(x, row, ' ', nil, styleStatus)
	}
	state := "idle"
	switch {
	case d.flick.IsDragging():
		state = "dragging"
	case d.flick.IsAnimating():
		anim, _ := d.flick.Animation()
		state = fmt.Sprintf("flinging %.0f px/s", anim.InitialVelocity.Y)
	}
	status := fmt.Sprintf(" offset %.1f  %s  | drag to scroll, Home/End, q quits", d.flick.Offset().Y, state)
	drawText(d.screen, 0, row, status, styleStatus)
}

func lineText(line int) string {
	return fmt.Sprintf("%s line %d", [...]string{"·", "∙", "•", "∙"}[line%4], line)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
