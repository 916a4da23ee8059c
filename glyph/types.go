package glyph

import "math"

// GlyphID is the index of a glyph within a typeface.
type GlyphID uint16

// Point is a 2D point in glyph or atlas space.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle given by its origin and size.
type Rect struct {
	X, Y float32
	W, H float32
}

// XYWH returns a rectangle with the given origin and size.
func XYWH(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the right edge of the rectangle.
func (r Rect) Right() float32 {
	return r.X + r.W
}

// Bottom returns the bottom edge of the rectangle.
func (r Rect) Bottom() float32 {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Scale returns the rectangle with its origin and size multiplied by s.
func (r Rect) Scale(s float32) Rect {
	return Rect{X: r.X * s, Y: r.Y * s, W: r.W * s, H: r.H * s}
}

// Outset returns the rectangle grown by d on every side.
func (r Rect) Outset(d float32) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Intersects reports whether the interiors of r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// RoundOut returns the smallest rectangle with integer edges containing r.
func (r Rect) RoundOut() Rect {
	x0 := float32(math.Floor(float64(r.X)))
	y0 := float32(math.Floor(float64(r.Y)))
	x1 := float32(math.Ceil(float64(r.Right())))
	y1 := float32(math.Ceil(float64(r.Bottom())))
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
