// Package graphics provides the geometry value types shared by the flick
// packages: points, sizes, and axis-aligned rectangles in logical pixels.
package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in logical pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of o and other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference o - other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Scale multiplies both components by factor.
func (o Offset) Scale(factor float64) Offset {
	return Offset{X: o.X * factor, Y: o.Y * factor}
}

// Neg returns the offset pointing in the opposite direction.
func (o Offset) Neg() Offset {
	return Offset{X: -o.X, Y: -o.Y}
}

// IsZero reports whether both components are exactly zero.
func (o Offset) IsZero() bool {
	return o.X == 0 && o.Y == 0
}

// Distance returns the length of the vector.
func (o Offset) Distance() float64 {
	return math.Hypot(o.X, o.Y)
}

// ApproxEqual reports whether o and other differ by at most epsilon on each axis.
func (o Offset) ApproxEqual(other Offset) bool {
	return floatEqual(o.X, other.X) && floatEqual(o.Y, other.Y)
}

// Size represents width and height dimensions in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Contains reports whether p lies inside the rectangle. The left and top
// edges are inclusive, the right and bottom edges exclusive, so adjacent
// rectangles never both claim a point.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
