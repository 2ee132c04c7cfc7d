package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/flick/pkg/animation"
	"github.com/go-drift/flick/pkg/graphics"
	"github.com/go-drift/flick/pkg/widgets"
)

const (
	// DefaultViewportWidth is the default logical width of the tested viewport.
	DefaultViewportWidth = 500
	// DefaultViewportHeight is the default logical height of the tested viewport.
	DefaultViewportHeight = 500
	// DefaultFrameInterval is the clock step used by Pump and PumpAndSettle.
	DefaultFrameInterval = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: flickable did not settle")

// FlickTester drives a Flickable with a fake clock. Pointer helpers deliver
// events at the current fake time; Advance and Pump move the clock and tick
// the flickable the way a host frame loop would.
type FlickTester struct {
	flick     *widgets.Flickable
	clock     *FakeClock
	prevClock animation.Clock
	frame     time.Duration
	pointer   *pointerState
}

// NewFlickTester creates a tester for a Flickable built from cfg. Zero sizes
// default to a 500x500 viewport over 2000x2000 content. The tester's clock
// replaces both cfg.Clock and the animation package clock.
// Call Cleanup() when done, or use NewFlickTesterWithT() instead.
func NewFlickTester(cfg widgets.FlickableConfig) *FlickTester {
	if cfg.ViewportSize == (graphics.Size{}) {
		cfg.ViewportSize = graphics.Size{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
	}
	if cfg.ContentSize == (graphics.Size{}) {
		cfg.ContentSize = graphics.Size{Width: 4 * cfg.ViewportSize.Width, Height: 4 * cfg.ViewportSize.Height}
	}
	clk := NewFakeClock()
	cfg.Clock = clk
	t := &FlickTester{
		clock: clk,
		frame: DefaultFrameInterval,
	}
	t.prevClock = animation.SetClock(clk)
	t.flick = widgets.NewFlickable(cfg)
	return t
}

// NewFlickTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewFlickTesterWithT(t *testing.T, cfg widgets.FlickableConfig) *FlickTester {
	tester := NewFlickTester(cfg)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup stops the flickable's ticker and restores the animation clock.
// Must be called if not using NewFlickTesterWithT.
func (t *FlickTester) Cleanup() {
	if t.flick != nil {
		t.flick.Dispose()
	}
	if t.prevClock != nil {
		animation.SetClock(t.prevClock)
		t.prevClock = nil
	}
}

// Flickable returns the flickable under test.
func (t *FlickTester) Flickable() *widgets.Flickable {
	return t.flick
}

// Clock returns the fake clock driving the tester.
func (t *FlickTester) Clock() *FakeClock {
	return t.clock
}

// Offset returns the flickable's current offset.
func (t *FlickTester) Offset() graphics.Offset {
	return t.flick.Offset()
}

// SetFrameInterval changes the clock step used by Pump and PumpAndSettle.
func (t *FlickTester) SetFrameInterval(d time.Duration) {
	if d > 0 {
		t.frame = d
	}
}

// Advance moves the clock forward by d and ticks once.
func (t *FlickTester) Advance(d time.Duration) {
	t.clock.Advance(d)
	t.flick.Tick()
}

// Pump advances the clock by d in frame-sized steps, ticking after each step
// and once more at exactly d.
func (t *FlickTester) Pump(d time.Duration) {
	for d > t.frame {
		t.Advance(t.frame)
		d -= t.frame
	}
	t.Advance(d)
}

// PumpAndSettle ticks frame by frame until the flickable stops animating.
func (t *FlickTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		if !t.flick.IsAnimating() {
			return nil
		}
		t.Advance(t.frame)
		elapsed += t.frame
	}
	if !t.flick.IsAnimating() {
		return nil
	}
	return ErrSettleTimeout
}
