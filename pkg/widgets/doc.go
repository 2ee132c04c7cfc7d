// Package widgets provides a kinetic-scroll viewport and its parts.
//
// A Flickable composes four pieces that can also be used on their own:
//
//   - Viewport holds the scroll offset and clamps it into the range the
//     content allows. Axes whose content fits are pinned at zero.
//   - TouchArea tracks hover and press state for a rectangle in content
//     coordinates, independently of scrolling.
//   - DragTracker moves the offset 1:1 with the pointer and estimates the
//     release velocity from recent samples.
//   - MomentumAnimator decelerates the offset after release at a constant
//     rate, stopping at the exact rest point or at a content edge.
//
// # Event Flow
//
// Hosts deliver pointer events with HandlePointer and drive frames either by
// calling Tick or through animation.StepTickers:
//
//	f := widgets.NewFlickable(widgets.FlickableConfig{
//	    ViewportSize: graphics.Size{Width: 500, Height: 500},
//	    ContentSize:  graphics.Size{Width: 500, Height: 2000},
//	})
//	f.HandlePointer(event)
//
//	// on each display frame:
//	if animation.HasActiveTickers() {
//	    animation.StepTickers()
//	}
//
// The offset is unclamped while a drag is active, so over-drag is visible
// to the host. Every resting state is clamped: a release without momentum,
// a cancelled drag, and the end of an animation.
//
// Nothing in this package returns errors, and nothing is safe for
// concurrent use. Events and ticks are expected on one goroutine.
package widgets
