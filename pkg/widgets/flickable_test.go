package widgets_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/flick/pkg/animation"
	"github.com/go-drift/flick/pkg/gestures"
	"github.com/go-drift/flick/pkg/graphics"
	flicktest "github.com/go-drift/flick/pkg/testing"
	"github.com/go-drift/flick/pkg/widgets"
)

func pt(x, y float64) graphics.Offset { return graphics.Offset{X: x, Y: y} }

func newTester(t *testing.T) *flicktest.FlickTester {
	return flicktest.NewFlickTesterWithT(t, widgets.FlickableConfig{
		ViewportSize: graphics.Size{Width: 500, Height: 500},
		ContentSize:  graphics.Size{Width: 2000, Height: 2000},
	})
}

func TestFlickable_DragTracksPointer(t *testing.T) {
	tester := newTester(t)

	tester.Press(pt(100, 100))
	positions := []graphics.Offset{pt(300, 150), pt(320, 90), pt(40, 60), pt(-30, 400)}
	prev := pt(100, 100)
	for _, pos := range positions {
		before := tester.Offset()
		tester.Clock().Advance(16 * time.Millisecond)
		tester.MoveTo(pos)
		want := before.Add(pos.Sub(prev))
		if tester.Offset() != want {
			t.Errorf("move to %v: offset = %v, want %v", pos, tester.Offset(), want)
		}
		prev = pos
	}
	if !tester.Flickable().IsDragging() {
		t.Error("expected drag to be active")
	}
}

func TestFlickable_StationaryReleaseHasNoMomentum(t *testing.T) {
	tester := newTester(t)
	tester.Press(pt(100, 100))
	tester.Clock().Advance(50 * time.Millisecond)
	tester.MoveTo(pt(200, 150))
	tester.Clock().Advance(500 * time.Millisecond)
	before := tester.Offset()
	tester.Release(pt(200, 150))

	if tester.Flickable().IsAnimating() {
		t.Fatal("animator should not start after a stationary release")
	}
	tester.Pump(time.Second)
	if tester.Offset() != before {
		t.Errorf("offset changed from %v to %v", before, tester.Offset())
	}
}

func TestFlickable_FlickDeceleratesToRest(t *testing.T) {
	tester := newTester(t)

	// 100px over 50ms: 2000 px/s on x, 1000 px/s on y.
	tester.Fling(pt(100, 100), pt(100, 50), 5, 50*time.Millisecond)
	anim, ok := tester.Flickable().Animation()
	if !ok || anim.Kind != widgets.AnimationDecelerating {
		t.Fatal("expected a decelerating animation after the flick")
	}
	if !anim.InitialVelocity.ApproxEqual(pt(2000, 1000)) {
		t.Errorf("InitialVelocity = %v, want (2000, 1000)", anim.InitialVelocity)
	}
	if anim.StartOffset != pt(100, 50) {
		t.Errorf("StartOffset = %v, want (100, 50)", anim.StartOffset)
	}

	a := widgets.DefaultDeceleration
	restX := 100 + 2000*2000/(2*a)
	restY := 50 + 1000*1000/(2*a)

	prev := tester.Offset()
	for tester.Flickable().IsAnimating() {
		tester.Advance(16 * time.Millisecond)
		cur := tester.Offset()
		if cur.X < prev.X || cur.Y < prev.Y {
			t.Fatalf("motion reversed: %v -> %v", prev, cur)
		}
		if cur.X > restX+1e-9 || cur.Y > restY+1e-9 {
			t.Fatalf("offset %v passed the rest point (%v, %v)", cur, restX, restY)
		}
		prev = cur
	}
	if !tester.Offset().ApproxEqual(pt(restX, restY)) {
		t.Errorf("settled at %v, want (%v, %v)", tester.Offset(), restX, restY)
	}

	settled := tester.Offset()
	tester.Pump(2 * time.Second)
	if tester.Offset() != settled {
		t.Errorf("offset moved after settling: %v -> %v", settled, tester.Offset())
	}
	if animation.HasActiveTickers() {
		t.Error("ticker should stop once settled")
	}
}

func TestFlickable_BoundarySnap(t *testing.T) {
	tester := newTester(t)
	tester.Flickable().JumpTo(pt(1400, 30))

	// Fast flick towards the far x bound and the near y bound.
	tester.Fling(pt(200, 200), pt(60, -60), 3, 30*time.Millisecond)
	max := tester.Flickable().Viewport().MaxOffset()

	for i := 0; i < 200 && tester.Flickable().IsAnimating(); i++ {
		tester.Advance(8 * time.Millisecond)
		off := tester.Offset()
		if off.X > max.X || off.X < 0 || off.Y < 0 || off.Y > max.Y {
			t.Fatalf("offset %v left [0, %v]", off, max)
		}
	}
	if tester.Offset() != pt(max.X, 0) {
		t.Errorf("offset = %v, want exactly (%v, 0)", tester.Offset(), max.X)
	}
}

func TestFlickable_ReleaseClampsOverDrag(t *testing.T) {
	tester := newTester(t)
	tester.Press(pt(400, 400))
	tester.Clock().Advance(10 * time.Millisecond)
	tester.MoveTo(pt(100, 450))
	if tester.Offset() != pt(-300, 50) {
		t.Fatalf("live drag should be unclamped, got %v", tester.Offset())
	}
	tester.Clock().Advance(time.Second)
	tester.Release(pt(100, 450))
	if tester.Offset() != pt(0, 50) {
		t.Errorf("resting offset = %v, want (0, 50)", tester.Offset())
	}
}

func TestFlickable_PressInterruptsAnimation(t *testing.T) {
	tester := newTester(t)
	tester.Fling(pt(100, 100), pt(100, 0), 5, 50*time.Millisecond)
	tester.Pump(100 * time.Millisecond)

	tester.Press(pt(250, 250))
	interrupted := tester.Offset()
	if tester.Flickable().IsAnimating() {
		t.Fatal("press should cancel the animation")
	}

	tester.Pump(500 * time.Millisecond)
	if tester.Offset() != interrupted {
		t.Fatalf("offset moved after interruption: %v -> %v", interrupted, tester.Offset())
	}

	tester.MoveTo(pt(260, 240))
	if want := interrupted.Add(pt(10, -10)); tester.Offset() != want {
		t.Errorf("offset = %v, want %v", tester.Offset(), want)
	}
}

func TestFlickable_CancelAndExitEndDrag(t *testing.T) {
	for _, end := range []string{"cancel", "exit"} {
		t.Run(end, func(t *testing.T) {
			tester := newTester(t)
			tester.Press(pt(100, 100))
			tester.Clock().Advance(10 * time.Millisecond)
			tester.MoveTo(pt(150, 120))
			if end == "cancel" {
				tester.Cancel()
			} else {
				tester.Exit()
			}
			if tester.Flickable().IsDragging() || tester.Flickable().IsAnimating() {
				t.Fatal("expected idle flickable")
			}
			if tester.Offset() != pt(50, 20) {
				t.Errorf("offset = %v, want (50, 20)", tester.Offset())
			}
			tester.MoveTo(pt(300, 300))
			if tester.Offset() != pt(50, 20) {
				t.Error("moves after cancellation must not scroll")
			}
		})
	}
}

func TestFlickable_IgnoresPressOutsideAndSecondaryButton(t *testing.T) {
	tester := newTester(t)
	f := tester.Flickable()

	f.HandlePointer(gestures.Pressed(pt(600, 100)))
	if f.IsDragging() {
		t.Error("press outside the viewport should not start a drag")
	}
	f.HandlePointer(gestures.PointerEvent{Position: pt(10, 10), Phase: gestures.PointerPhaseDown, Button: gestures.ButtonSecondary})
	if f.IsDragging() {
		t.Error("secondary button should not start a drag")
	}
}

func TestFlickable_SmallContentPinsAxes(t *testing.T) {
	tester := flicktest.NewFlickTesterWithT(t, widgets.FlickableConfig{
		ViewportSize: graphics.Size{Width: 500, Height: 500},
		ContentSize:  graphics.Size{Width: 300, Height: 1500},
	})
	tester.Fling(pt(100, 100), pt(80, 80), 4, 40*time.Millisecond)
	if tester.Offset().X != 0 {
		t.Errorf("x = %v, want pinned at 0", tester.Offset().X)
	}
	anim, ok := tester.Flickable().Animation()
	if !ok || anim.InitialVelocity.X != 0 {
		t.Errorf("expected vertical-only momentum, got %+v", anim)
	}
	if err := tester.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	if tester.Offset().X != 0 {
		t.Errorf("x = %v after settling, want 0", tester.Offset().X)
	}
}

func TestFlickable_TouchAreaIndependentOfScrolling(t *testing.T) {
	tester := newTester(t)
	area := tester.Flickable().AddTouchArea(widgets.NewTouchArea(graphics.RectFromLTWH(150, 150, 50, 50)))
	clicks := 0
	area.OnClicked = func() { clicks++ }

	tester.MoveTo(pt(160, 160))
	if !area.Hovered() || area.Pressed() {
		t.Fatalf("expected hovered, got %v", area.State())
	}

	tester.Press(pt(160, 160))
	if !area.Pressed() {
		t.Fatal("expected pressed while the drag starts")
	}

	// Dragging scrolls content under the pointer; the press survives.
	tester.Clock().Advance(16 * time.Millisecond)
	tester.MoveTo(pt(200, 200))
	if tester.Offset() != pt(40, 40) {
		t.Fatalf("drag did not scroll, offset %v", tester.Offset())
	}
	if !area.Pressed() {
		t.Error("touch area lost its press during the drag")
	}
	// Pointer now maps to content (240, 240), outside the area.
	tester.Clock().Advance(16 * time.Millisecond)
	tester.MoveTo(pt(200, 200))
	if area.Hovered() {
		t.Error("expected hover to follow the content position")
	}

	tester.Release(pt(200, 200))
	if area.State() != widgets.TouchAreaIdle {
		t.Errorf("state = %v, want idle after release outside", area.State())
	}
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
	if !tester.Flickable().IsAnimating() {
		t.Error("the flick itself should still carry momentum")
	}
}

func TestFlickable_TouchAreasClippedByViewport(t *testing.T) {
	tester := flicktest.NewFlickTesterWithT(t, widgets.FlickableConfig{
		ViewportSize: graphics.Size{Width: 500, Height: 300},
		ContentSize:  graphics.Size{Width: 2000, Height: 2000},
	})
	area := tester.Flickable().AddTouchArea(widgets.NewTouchArea(graphics.RectFromLTWH(0, 500, 100, 200)))

	// Content (50, 520) is inside the area but below the visible window.
	tester.Press(pt(50, 520))
	if area.Pressed() || area.Hovered() {
		t.Fatalf("state = %v, want idle for a press outside the viewport", area.State())
	}
	if tester.Flickable().IsDragging() {
		t.Fatal("press outside the viewport should not start a drag")
	}
	tester.Release(pt(50, 520))

	// Scrolled so the area spans local y 200..400, past the bottom edge.
	tester.Flickable().JumpTo(pt(0, 300))
	tester.MoveTo(pt(50, 250))
	if !area.Hovered() {
		t.Fatal("expected hover over the visible part of the area")
	}
	tester.MoveTo(pt(50, 350))
	if area.Hovered() {
		t.Error("hover should clear once the pointer leaves the viewport")
	}
	tester.Press(pt(50, 350))
	if area.Pressed() {
		t.Error("the clipped part of the area must not accept presses")
	}
}

func TestFlickable_FramesUseConfiguredClock(t *testing.T) {
	// Only the Flickable's clock is fake; the package clock stays on real time.
	clk := flicktest.NewFakeClock()
	f := widgets.NewFlickable(widgets.FlickableConfig{
		ViewportSize:  graphics.Size{Width: 500, Height: 500},
		ContentSize:   graphics.Size{Width: 2000, Height: 2000},
		InitialOffset: pt(500, 0),
		Clock:         clk,
	})
	t.Cleanup(f.Dispose)

	f.HandlePointer(gestures.Pressed(pt(100, 100)))
	clk.Advance(50 * time.Millisecond)
	f.HandlePointer(gestures.Moved(pt(150, 100)))
	f.HandlePointer(gestures.Released(pt(150, 100)))
	if !f.IsAnimating() {
		t.Fatal("expected momentum after a 1000 px/s release")
	}

	clk.Advance(16 * time.Millisecond)
	animation.StepTickers()

	a := widgets.DefaultDeceleration
	want := 550 + 1000*0.016 - 0.5*a*0.016*0.016
	if got := f.Offset().X; math.Abs(got-want) > 1e-6 {
		t.Errorf("offset after one frame = %v, want %v", got, want)
	}
	if !f.IsAnimating() {
		t.Error("one frame should not finish the deceleration")
	}
}

func TestFlickable_JumpToClampsAndStops(t *testing.T) {
	tester := newTester(t)
	tester.Fling(pt(100, 100), pt(100, 0), 5, 50*time.Millisecond)

	tester.Flickable().JumpTo(pt(5000, -10))
	if tester.Offset() != pt(1500, 0) {
		t.Errorf("offset = %v, want (1500, 0)", tester.Offset())
	}
	if tester.Flickable().IsAnimating() {
		t.Error("JumpTo should stop the animation")
	}
	if tester.Flickable().ViewportX() != -1500 || tester.Flickable().ViewportY() != 0 {
		t.Error("ViewportX/Y should be the negated offset")
	}
}

func TestFlickable_StepTickersDrivesAnimation(t *testing.T) {
	tester := newTester(t)
	tester.Fling(pt(100, 100), pt(100, 0), 5, 50*time.Millisecond)
	if !animation.HasActiveTickers() {
		t.Fatal("expected an active ticker while decelerating")
	}
	before := tester.Offset()
	tester.Clock().Advance(32 * time.Millisecond)
	animation.StepTickers()
	if tester.Offset().X <= before.X {
		t.Errorf("StepTickers did not advance the flick: %v -> %v", before, tester.Offset())
	}
}
