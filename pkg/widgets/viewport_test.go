package widgets

import (
	"slices"
	"testing"

	"github.com/go-drift/flick/pkg/graphics"
)

func TestClampOffset(t *testing.T) {
	tests := []struct {
		name     string
		offset   graphics.Offset
		viewport graphics.Size
		content  graphics.Size
		want     graphics.Offset
	}{
		{"in range", pt(10, 20), size(100, 100), size(300, 300), pt(10, 20)},
		{"negative", pt(-5, -50), size(100, 100), size(300, 300), pt(0, 0)},
		{"past max", pt(250, 500), size(100, 100), size(300, 300), pt(200, 200)},
		{"exactly max", pt(200, 200), size(100, 100), size(300, 300), pt(200, 200)},
		{"content smaller", pt(40, 40), size(100, 100), size(50, 50), pt(0, 0)},
		{"content equal", pt(40, 40), size(100, 100), size(100, 100), pt(0, 0)},
		{"mixed axes", pt(40, 40), size(100, 100), size(500, 80), pt(40, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampOffset(tt.offset, tt.viewport, tt.content); got != tt.want {
				t.Errorf("ClampOffset(%v) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestViewport_Accessors(t *testing.T) {
	v := NewViewport(size(500, 500), size(2000, 400))

	if got := v.MaxOffset(); got != pt(1500, 0) {
		t.Errorf("MaxOffset() = %v", got)
	}
	if !v.ScrollableX() || v.ScrollableY() {
		t.Errorf("ScrollableX/Y = %v/%v, want true/false", v.ScrollableX(), v.ScrollableY())
	}

	v.setOffset(pt(120, 30))
	if v.OffsetX() != 120 || v.OffsetY() != 0 {
		t.Errorf("offset = %v, expected Y pinned at 0", v.Offset())
	}
	if v.ViewportX() != -120 || v.ViewportY() != 0 {
		t.Errorf("ViewportX/Y = %v/%v", v.ViewportX(), v.ViewportY())
	}
	if got := v.ContentPosition(pt(10, 10)); got != pt(130, 10) {
		t.Errorf("ContentPosition = %v", got)
	}
	if !v.Bounds().Contains(pt(499, 0)) || v.Bounds().Contains(pt(500, 0)) {
		t.Error("unexpected bounds")
	}
}

func TestViewport_SettleClampsOverDrag(t *testing.T) {
	v := NewViewport(size(100, 100), size(300, 300))
	v.setOffset(pt(-40, 260))
	if v.InRange() {
		t.Fatal("expected over-dragged offset to be out of range")
	}
	v.settle()
	if v.Offset() != pt(0, 200) {
		t.Errorf("settle() left offset at %v, want (0, 200)", v.Offset())
	}
}

func TestViewport_Listeners(t *testing.T) {
	v := NewViewport(size(100, 100), size(300, 300))
	calls := 0
	remove := v.AddListener(func() { calls++ })

	v.setOffset(pt(10, 10))
	v.setOffset(pt(10, 10))
	if calls != 1 {
		t.Errorf("expected 1 notification for one change, got %d", calls)
	}

	remove()
	v.setOffset(pt(20, 20))
	if calls != 1 {
		t.Errorf("removed listener was called")
	}

	v.AddListener(nil)()
}

func TestViewport_ListenersRunInOrder(t *testing.T) {
	v := NewViewport(size(100, 100), size(300, 300))
	var order []string
	v.AddListener(func() { order = append(order, "a") })
	var removeB func()
	removeB = v.AddListener(func() {
		order = append(order, "b")
		removeB()
	})
	v.AddListener(func() { order = append(order, "c") })

	v.setOffset(pt(10, 10))
	v.setOffset(pt(20, 20))
	want := []string{"a", "b", "c", "a", "c"}
	if !slices.Equal(order, want) {
		t.Errorf("notification order = %v, want %v", order, want)
	}
}
