// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/textatlas/glyph"
	"github.com/gogpu/textatlas/internal/stroke"
)

// hitTolerance is the flattening tolerance used by Contains.
const hitTolerance = 0.05

// Path is a vector path made of subpaths. Filling a path closes open
// subpaths implicitly and uses the non-zero winding rule.
type Path struct {
	elements []stroke.PathElement
	start    stroke.Point
	current  stroke.Point
	open     bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]stroke.PathElement, 0, 16)}
}

// PathFromOutline returns a path tracing a glyph outline translated by (dx, dy).
// Every contour of the outline is closed.
func PathFromOutline(o glyph.Outline, dx, dy float32) *Path {
	p := NewPath()
	pt := func(q glyph.Point) (float64, float64) {
		return float64(q.X + dx), float64(q.Y + dy)
	}
	for _, seg := range o.Segments {
		switch seg.Op {
		case glyph.SegmentMoveTo:
			if p.open {
				p.Close()
			}
			p.MoveTo(pt(seg.Points[0]))
		case glyph.SegmentLineTo:
			p.LineTo(pt(seg.Points[0]))
		case glyph.SegmentQuadTo:
			cx, cy := pt(seg.Points[0])
			x, y := pt(seg.Points[1])
			p.QuadTo(cx, cy, x, y)
		case glyph.SegmentCubeTo:
			c1x, c1y := pt(seg.Points[0])
			c2x, c2y := pt(seg.Points[1])
			x, y := pt(seg.Points[2])
			p.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if p.open {
		p.Close()
	}
	return p
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := stroke.Point{X: x, Y: y}
	p.elements = append(p.elements, stroke.MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.open = true
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.ensureOpen()
	pt := stroke.Point{X: x, Y: y}
	p.elements = append(p.elements, stroke.LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.ensureOpen()
	pt := stroke.Point{X: x, Y: y}
	p.elements = append(p.elements, stroke.QuadTo{Control: stroke.Point{X: cx, Y: cy}, Point: pt})
	p.current = pt
}

// CubeTo draws a cubic Bezier curve.
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ensureOpen()
	pt := stroke.Point{X: x, Y: y}
	p.elements = append(p.elements, stroke.CubicTo{
		Control1: stroke.Point{X: c1x, Y: c1y},
		Control2: stroke.Point{X: c2x, Y: c2y},
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.elements = append(p.elements, stroke.Close{})
	p.current = p.start
	p.open = false
}

// ensureOpen starts a subpath at the current point when drawing continues
// after Close or on an empty path.
func (p *Path) ensureOpen() {
	if !p.open {
		p.MoveTo(p.current.X, p.current.Y)
	}
}

// AddRect adds a closed rectangle.
func (p *Path) AddRect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// AddCircle adds a closed circle using cubic Bezier curves.
func (p *Path) AddCircle(cx, cy, r float64) {
	// 4/3 * (sqrt(2) - 1)
	const k = 0.5522847498307936
	o := r * k
	p.MoveTo(cx+r, cy)
	p.CubeTo(cx+r, cy+o, cx+o, cy+r, cx, cy+r)
	p.CubeTo(cx-o, cy+r, cx-r, cy+o, cx-r, cy)
	p.CubeTo(cx-r, cy-o, cx-o, cy-r, cx, cy-r)
	p.CubeTo(cx+o, cy-r, cx+r, cy-o, cx+r, cy)
	p.Close()
}

// AddPath appends all subpaths of other.
func (p *Path) AddPath(other *Path) {
	if other == nil {
		return
	}
	if p.open {
		p.Close()
	}
	p.elements = append(p.elements, other.elements...)
	p.start, p.current, p.open = other.start, other.current, other.open
}

// IsEmpty reports whether the path draws nothing: it has no segment
// beyond its move-to points.
func (p *Path) IsEmpty() bool {
	for _, el := range p.elements {
		switch el.(type) {
		case stroke.LineTo, stroke.QuadTo, stroke.CubicTo:
			return false
		}
	}
	return true
}

// Bounds returns the bounding box of all points of the path, control
// points included.
func (p *Path) Bounds() glyph.Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(q stroke.Point) {
		minX, minY = math.Min(minX, q.X), math.Min(minY, q.Y)
		maxX, maxY = math.Max(maxX, q.X), math.Max(maxY, q.Y)
	}
	for _, el := range p.elements {
		switch e := el.(type) {
		case stroke.MoveTo:
			add(e.Point)
		case stroke.LineTo:
			add(e.Point)
		case stroke.QuadTo:
			add(e.Control)
			add(e.Point)
		case stroke.CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	if minX > maxX {
		return glyph.Rect{}
	}
	return glyph.XYWH(float32(minX), float32(minY), float32(maxX-minX), float32(maxY-minY))
}

// Contains reports whether (x, y) is inside the filled path.
func (p *Path) Contains(x, y float32) bool {
	px, py := float64(x), float64(y)
	winding := 0
	for _, pl := range stroke.Flatten(p.elements, hitTolerance) {
		pts := pl.Points
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if a.Y <= py {
				if b.Y > py && cross(a, b, px, py) > 0 {
					winding++
				}
			} else if b.Y <= py && cross(a, b, px, py) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

// cross returns which side of the edge a→b the point lies on.
func cross(a, b stroke.Point, x, y float64) float64 {
	return (b.X-a.X)*(y-a.Y) - (x-a.X)*(b.Y-a.Y)
}

// Transform returns a copy of the path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	t := func(q stroke.Point) stroke.Point {
		x, y := m.Apply(q.X, q.Y)
		return stroke.Point{X: x, Y: y}
	}
	result := &Path{elements: make([]stroke.PathElement, 0, len(p.elements))}
	for _, el := range p.elements {
		switch e := el.(type) {
		case stroke.MoveTo:
			result.elements = append(result.elements, stroke.MoveTo{Point: t(e.Point)})
		case stroke.LineTo:
			result.elements = append(result.elements, stroke.LineTo{Point: t(e.Point)})
		case stroke.QuadTo:
			result.elements = append(result.elements, stroke.QuadTo{Control: t(e.Control), Point: t(e.Point)})
		case stroke.CubicTo:
			result.elements = append(result.elements, stroke.CubicTo{
				Control1: t(e.Control1), Control2: t(e.Control2), Point: t(e.Point),
			})
		case stroke.Close:
			result.elements = append(result.elements, e)
		}
	}
	result.start, result.current, result.open = t(p.start), t(p.current), p.open
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := *p
	result.elements = append([]stroke.PathElement(nil), p.elements...)
	return &result
}

// elems returns the path elements. The slice must not be modified.
func (p *Path) elems() []stroke.PathElement {
	return p.elements
}
