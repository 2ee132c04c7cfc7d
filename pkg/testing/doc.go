// Package testing provides deterministic test harnesses for flickables.
//
// # Quick Start
//
// Create a tester, drive pointer events, and advance the fake clock:
//
//	func TestFlick(t *testing.T) {
//	    tester := flicktest.NewFlickTesterWithT(t, widgets.FlickableConfig{})
//
//	    tester.Press(graphics.Offset{X: 100, Y: 100})
//	    tester.Clock().Advance(20 * time.Millisecond)
//	    tester.MoveTo(graphics.Offset{X: 300, Y: 150})
//	    tester.Release(graphics.Offset{X: 300, Y: 150})
//
//	    if err := tester.PumpAndSettle(5 * time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Clock Control
//
// The tester installs a [FakeClock] as the animation clock for its lifetime.
// Press, MoveTo and Release never move the clock. DragFrom and Fling spread
// their moves over a duration without ticking. [FlickTester.Advance] and
// [FlickTester.Pump] move the clock and tick the flickable, the same way a
// host frame loop would.
package testing
