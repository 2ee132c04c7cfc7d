package widgets

import (
	"math"
	"time"

	"github.com/go-drift/flick/pkg/graphics"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func ms(n int) time.Time {
	return testEpoch.Add(time.Duration(n) * time.Millisecond)
}

type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

func approxOffset(a, b graphics.Offset) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func size(w, h float64) graphics.Size {
	return graphics.Size{Width: w, Height: h}
}

func pt(x, y float64) graphics.Offset {
	return graphics.Offset{X: x, Y: y}
}
