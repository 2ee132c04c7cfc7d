package widgets

import (
	"math"
	"slices"

	"github.com/go-drift/flick/pkg/graphics"
)

// ClampOffset bounds offset into the legal scroll range for a viewport of the
// given size over content of the given size: each axis is clamped to
// [0, max(0, content - viewport)]. Content no larger than the viewport pins
// that axis at 0.
func ClampOffset(offset graphics.Offset, viewport, content graphics.Size) graphics.Offset {
	return graphics.Offset{
		X: clampAxis(offset.X, viewport.Width, content.Width),
		Y: clampAxis(offset.Y, viewport.Height, content.Height),
	}
}

func clampAxis(value, viewport, content float64) float64 {
	return Clamp(value, 0, maxScroll(viewport, content))
}

func maxScroll(viewport, content float64) float64 {
	return math.Max(0, content-viewport)
}

// Viewport is the visible window onto a larger content area. It is the single
// source of truth for the scroll offset: the top-left content coordinate shown
// at the viewport's origin.
//
// The offset may leave the legal range while a drag is in progress. Every
// resting state (after release, cancellation, or momentum) is clamped.
type Viewport struct {
	offset         graphics.Offset
	size           graphics.Size
	content        graphics.Size
	listeners      []viewportListener
	nextListenerID int
}

type viewportListener struct {
	id int
	fn func()
}

// NewViewport creates a viewport of the given size over content of the given
// size, starting at offset zero.
func NewViewport(size, content graphics.Size) *Viewport {
	return &Viewport{size: size, content: content}
}

// Offset returns the current scroll offset.
func (v *Viewport) Offset() graphics.Offset {
	return v.offset
}

// OffsetX returns the horizontal scroll offset.
func (v *Viewport) OffsetX() float64 { return v.offset.X }

// OffsetY returns the vertical scroll offset.
func (v *Viewport) OffsetY() float64 { return v.offset.Y }

// ViewportX returns the horizontal content translation, the negated offset.
func (v *Viewport) ViewportX() float64 { return -v.offset.X }

// ViewportY returns the vertical content translation, the negated offset.
func (v *Viewport) ViewportY() float64 { return -v.offset.Y }

// Size returns the viewport dimensions.
func (v *Viewport) Size() graphics.Size {
	return v.size
}

// ContentSize returns the content dimensions.
func (v *Viewport) ContentSize() graphics.Size {
	return v.content
}

// MaxOffset returns the largest legal offset on each axis.
func (v *Viewport) MaxOffset() graphics.Offset {
	return graphics.Offset{
		X: maxScroll(v.size.Width, v.content.Width),
		Y: maxScroll(v.size.Height, v.content.Height),
	}
}

// ScrollableX reports whether content overflows the viewport horizontally.
func (v *Viewport) ScrollableX() bool {
	return v.content.Width > v.size.Width
}

// ScrollableY reports whether content overflows the viewport vertically.
func (v *Viewport) ScrollableY() bool {
	return v.content.Height > v.size.Height
}

// Clamp bounds offset into this viewport's legal range.
func (v *Viewport) Clamp(offset graphics.Offset) graphics.Offset {
	return ClampOffset(offset, v.size, v.content)
}

// InRange reports whether the current offset is within the legal range.
func (v *Viewport) InRange() bool {
	return v.Clamp(v.offset) == v.offset
}

// ContentPosition maps a point in viewport-local coordinates to content coordinates.
func (v *Viewport) ContentPosition(local graphics.Offset) graphics.Offset {
	return local.Add(v.offset)
}

// Bounds returns the viewport rectangle in its own local coordinates.
func (v *Viewport) Bounds() graphics.Rect {
	return graphics.RectFromLTWH(0, 0, v.size.Width, v.size.Height)
}

// AddListener registers a callback for offset changes. Listeners run in
// registration order. The returned function removes the listener.
func (v *Viewport) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	id := v.nextListenerID
	v.nextListenerID++
	v.listeners = append(v.listeners, viewportListener{id: id, fn: listener})
	return func() {
		v.listeners = slices.DeleteFunc(v.listeners, func(l viewportListener) bool {
			return l.id == id
		})
	}
}

// setOffset stores offset as-is and notifies listeners if it changed.
// Axes that cannot scroll stay pinned at 0.
func (v *Viewport) setOffset(offset graphics.Offset) {
	if !v.ScrollableX() {
		offset.X = 0
	}
	if !v.ScrollableY() {
		offset.Y = 0
	}
	if offset == v.offset {
		return
	}
	v.offset = offset
	v.notifyListeners()
}

// settle clamps the current offset into range.
func (v *Viewport) settle() {
	v.setOffset(v.Clamp(v.offset))
}

func (v *Viewport) notifyListeners() {
	// Copy so a listener may remove itself.
	for _, l := range slices.Clone(v.listeners) {
		l.fn()
	}
}
