package stroke

import "math"

// DefaultTolerance is the default curve flattening tolerance in pixels.
const DefaultTolerance = 0.1

// maxDepth bounds curve subdivision.
const maxDepth = 16

// PathElement is an element of a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts path elements to polylines. Curves are subdivided until
// their control points lie within tolerance of the chord. Consecutive
// duplicate points are dropped. A subpath is Closed only if it ends with
// Close.
func Flatten(elements []PathElement, tolerance float64) []Polyline {
	if tolerance <= 0 || math.IsNaN(tolerance) {
		tolerance = DefaultTolerance
	}
	f := flattener{tolerance: tolerance}
	for _, el := range elements {
		switch e := el.(type) {
		case MoveTo:
			f.flush(false)
			f.start = e.Point
			f.add(e.Point)
		case LineTo:
			f.ensureStarted()
			f.add(e.Point)
		case QuadTo:
			f.ensureStarted()
			f.quad(f.last(), e.Control, e.Point, 0)
		case CubicTo:
			f.ensureStarted()
			f.cubic(f.last(), e.Control1, e.Control2, e.Point, 0)
		case Close:
			f.flush(true)
		}
	}
	f.flush(false)
	return f.out
}

type flattener struct {
	tolerance float64
	start     Point
	cur       []Point
	out       []Polyline
}

func (f *flattener) ensureStarted() {
	if len(f.cur) == 0 {
		f.cur = append(f.cur, f.start)
	}
}

func (f *flattener) last() Point {
	return f.cur[len(f.cur)-1]
}

func (f *flattener) add(p Point) {
	if n := len(f.cur); n > 0 && f.cur[n-1] == p {
		return
	}
	f.cur = append(f.cur, p)
}

func (f *flattener) flush(closed bool) {
	if len(f.cur) == 0 {
		return
	}
	pts := f.cur
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	f.out = append(f.out, Polyline{Points: pts, Closed: closed})
	f.cur = nil
	if closed {
		// A path continuing after Close restarts at the subpath start.
		f.start = pts[0]
	}
}

func (f *flattener) quad(p0, p1, p2 Point, depth int) {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < f.tolerance {
		f.add(p2)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	m := q0.Lerp(q1, 0.5)
	f.quad(p0, q0, m, depth+1)
	f.quad(m, q1, p2, depth+1)
}

func (f *flattener) cubic(p0, p1, p2, p3 Point, depth int) {
	d := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxDepth || d < f.tolerance {
		f.add(p3)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	m := r0.Lerp(r1, 0.5)
	f.cubic(p0, q0, r0, m, depth+1)
	f.cubic(m, r1, q2, p3, depth+1)
}
