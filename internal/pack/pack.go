// Package pack implements the rectangle packer used to lay out atlas pages.
package pack

import "math"

// DefaultPadding is the gap, in final pixels, kept around every packed
// rectangle so that bilinear sampling never bleeds between neighbors.
const DefaultPadding = 3

// Point is a placement returned by the packer.
type Point struct {
	X, Y int
}

// Packer is a greedy, append-only shelf-growing rectangle packer.
//
// The packed area starts empty and grows as rectangles are added: every
// rectangle is placed at the current cursor, and when it would waste more
// space than the area still free, a new shelf is opened along the shorter
// side of the bin. A returned position is never revised, so callers may
// stream placed rectangles into draw lists immediately.
//
// Packer is not safe for concurrent use.
type Packer struct {
	padding int
	width   int
	height  int
	x       int
	y       int
}

// New creates a packer for a page rendered at the given scale. The padding
// is divided by scale so that it stays DefaultPadding pixels after the
// page is scaled up.
func New(scale float32) *Packer {
	if scale <= 0 {
		scale = 1
	}
	p := &Packer{
		padding: int(math.Ceil(float64(DefaultPadding) / float64(scale))),
	}
	p.Reset()
	return p
}

// Padding returns the padding in pack units.
func (p *Packer) Padding() int {
	return p.padding
}

// Width returns the width of the packed area, including the trailing padding.
func (p *Packer) Width() int {
	return p.width
}

// Height returns the height of the packed area, including the trailing padding.
func (p *Packer) Height() int {
	return p.height
}

// Add places a w×h rectangle and returns its top-left corner.
// The rectangle is padded on the right and bottom; the packed area's
// leading padding covers the left and top edges.
func (p *Packer) Add(w, h int) Point {
	w += p.padding
	h += p.padding
	area := (p.width - p.x) * (p.height - p.y)
	if (p.x+w-p.width)*p.y > area || (p.y+h-p.height)*p.x > area {
		if p.width <= p.height {
			p.x = p.width
			p.y = p.padding
			p.width += w
		} else {
			p.x = p.padding
			p.y = p.height
			p.height += h
		}
	}
	pt := Point{X: p.x, Y: p.y}
	if p.x+w-p.width < p.y+h-p.height {
		p.x += w
	} else {
		p.y += h
	}
	// Both bounds must enclose the placed rectangle; growing only the
	// axis the cursor did not advance along lets later shelves overlap it.
	p.width = max(p.width, pt.X+w)
	p.height = max(p.height, pt.Y+h)
	return pt
}

// Reset clears all placements for a new page.
func (p *Packer) Reset() {
	p.width = p.padding
	p.height = p.padding
	p.x = p.padding
	p.y = p.padding
}
