package stroke

import "math"

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Stroke defines the style for stroke expansion.
type Stroke struct {
	Width      float64
	Join       LineJoin
	MiterLimit float64
}

// DefaultStroke returns a one pixel stroke with miter joins.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// Expander converts stroked paths to polygons.
type Expander struct {
	style     Stroke
	tolerance float64
	out       []Polygon
}

// NewExpander creates an expander for the given style.
func NewExpander(style Stroke) *Expander {
	if style.MiterLimit < 1 {
		style.MiterLimit = 4
	}
	return &Expander{style: style, tolerance: DefaultTolerance}
}

// SetTolerance sets the curve flattening tolerance.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns polygons whose union is the stroke of the path.
// All polygons have positive signed area. A zero or negative width
// produces no polygons.
func (e *Expander) Expand(elements []PathElement) []Polygon {
	e.out = nil
	if !(e.style.Width > 0) {
		return nil
	}
	for _, pl := range Flatten(elements, e.tolerance) {
		e.polyline(pl)
	}
	out := e.out
	e.out = nil
	return out
}

func (e *Expander) polyline(pl Polyline) {
	pts := pl.Points
	n := len(pts)
	if n < 2 {
		return
	}
	hw := e.style.Width / 2

	segs := n - 1
	if pl.Closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		nrm := b.Sub(a).Normalize().Perp().Scale(hw)
		e.emit(Polygon{a.Add(nrm), b.Add(nrm), b.Add(nrm.Scale(-1)), a.Add(nrm.Scale(-1))})
	}

	first, last := 1, n-1
	if pl.Closed {
		first, last = 0, n
	}
	for i := first; i < last; i++ {
		prev := pts[(i-1+n)%n]
		p := pts[i]
		next := pts[(i+1)%n]
		e.join(prev, p, next, hw)
	}
}

// join fills the gap on the outer side of the turn prev→p→next.
func (e *Expander) join(prev, p, next Point, hw float64) {
	d0 := p.Sub(prev).Normalize()
	d1 := next.Sub(p).Normalize()
	cross := d0.Cross(d1)
	if math.Abs(cross) < 1e-9 && d0.Dot(d1) > 0 {
		return
	}

	if e.style.Join == LineJoinRound {
		e.emit(circle(p, hw, e.tolerance))
		return
	}

	side := 1.0
	if cross > 0 {
		side = -1
	}
	n0 := d0.Perp().Scale(side * hw)
	n1 := d1.Perp().Scale(side * hw)
	a, b := p.Add(n0), p.Add(n1)

	if e.style.Join == LineJoinMiter {
		m := n0.Add(n1)
		ml := m.Length()
		// 2·hw/|m| is the miter length relative to hw.
		if ml > 1e-9 && 2*hw/ml <= e.style.MiterLimit {
			tip := p.Add(m.Scale(2 * hw * hw / (ml * ml)))
			e.emit(Polygon{p, a, tip, b})
			return
		}
	}
	e.emit(Polygon{p, a, b})
}

// emit appends pg oriented with positive area. Degenerate polygons are dropped.
func (e *Expander) emit(pg Polygon) {
	area := pg.Area()
	if math.Abs(area) < 1e-12 {
		return
	}
	if area < 0 {
		for i, j := 0, len(pg)-1; i < j; i, j = i+1, j-1 {
			pg[i], pg[j] = pg[j], pg[i]
		}
	}
	e.out = append(e.out, pg)
}

// circle approximates a circle with a regular polygon whose edges stay
// within tolerance of the arc.
func circle(c Point, r, tolerance float64) Polygon {
	n := 8
	if r > tolerance {
		step := 2 * math.Acos(1-tolerance/r)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}
	n = min(n, 128)
	pg := make(Polygon, n)
	for i := range pg {
		a := 2 * math.Pi * float64(i) / float64(n)
		pg[i] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return pg
}
