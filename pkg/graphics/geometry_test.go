package graphics

import "testing"

func TestRect_Contains(t *testing.T) {
	r := RectFromLTWH(150, 150, 50, 50)
	tests := []struct {
		name string
		p    Offset
		want bool
	}{
		{"inside", Offset{X: 175, Y: 175}, true},
		{"top-left corner", Offset{X: 150, Y: 150}, true},
		{"right edge", Offset{X: 200, Y: 175}, false},
		{"bottom edge", Offset{X: 175, Y: 200}, false},
		{"left of rect", Offset{X: 149.9, Y: 175}, false},
		{"above rect", Offset{X: 175, Y: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRect_Accessors(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("expected 30x40, got %vx%v", r.Width(), r.Height())
	}
	if got := r.Center(); got != (Offset{X: 25, Y: 40}) {
		t.Errorf("Center() = %v", got)
	}
	if r.IsEmpty() {
		t.Error("expected non-empty rect")
	}
	if !RectFromLTWH(0, 0, 0, 10).IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
	moved := r.Translate(5, -5)
	if moved.Left != 15 || moved.Top != 15 || moved.Size() != r.Size() {
		t.Errorf("Translate(5, -5) = %+v", moved)
	}
}

func TestOffset_Arithmetic(t *testing.T) {
	a := Offset{X: 3, Y: 4}
	b := Offset{X: 1, Y: -2}

	if got := a.Add(b); got != (Offset{X: 4, Y: 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Offset{X: 2, Y: 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Offset{X: 6, Y: 8}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Neg(); got != (Offset{X: -3, Y: -4}) {
		t.Errorf("Neg = %v", got)
	}
	if got := a.Distance(); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if a.IsZero() || !(Offset{}).IsZero() {
		t.Error("IsZero mismatch")
	}
	if !a.ApproxEqual(Offset{X: 3.00001, Y: 4}) {
		t.Error("expected approximate equality within epsilon")
	}
}

func TestColor(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	if c != Color(0xFF123456) {
		t.Errorf("RGB = %#x", uint32(c))
	}
	if got := c.WithAlpha8(0x80).Alpha8(); got != 0x80 {
		t.Errorf("Alpha8 = %#x, want 0x80", got)
	}
	n := c.NRGBA()
	if n.R != 0x12 || n.G != 0x34 || n.B != 0x56 || n.A != 0xFF {
		t.Errorf("NRGBA = %+v", n)
	}
	r, _, _, a := ColorWhite.RGBA()
	if r != 0xFFFF || a != 0xFFFF {
		t.Errorf("RGBA() = %#x, %#x", r, a)
	}
}
