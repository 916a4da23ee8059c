package glyph

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SegmentOp is the type of an outline segment.
type SegmentOp uint8

const (
	// SegmentMoveTo starts a new contour at Points[0].
	SegmentMoveTo SegmentOp = iota

	// SegmentLineTo draws a line to Points[0].
	SegmentLineTo

	// SegmentQuadTo draws a quadratic curve with control Points[0] to Points[1].
	SegmentQuadTo

	// SegmentCubeTo draws a cubic curve with controls Points[0], Points[1] to Points[2].
	SegmentCubeTo
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentMoveTo:
		return "MoveTo"
	case SegmentLineTo:
		return "LineTo"
	case SegmentQuadTo:
		return "QuadTo"
	case SegmentCubeTo:
		return "CubeTo"
	default:
		return unknownStr
	}
}

// PointCount returns how many entries of Points the operation uses.
func (op SegmentOp) PointCount() int {
	switch op {
	case SegmentQuadTo:
		return 2
	case SegmentCubeTo:
		return 3
	default:
		return 1
	}
}

// Segment is one step of a glyph outline.
type Segment struct {
	Op     SegmentOp
	Points [3]Point
}

// Outline is the vector outline of a glyph in pixels, Y axis down,
// origin on the baseline. Contours are implicitly closed.
type Outline struct {
	Segments []Segment
}

// IsEmpty returns true if the outline has no segments.
func (o Outline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// Bounds returns the bounding box of all segment points.
func (o Outline) Bounds() Rect {
	if len(o.Segments) == 0 {
		return Rect{}
	}
	minX, minY := o.Segments[0].Points[0].X, o.Segments[0].Points[0].Y
	maxX, maxY := minX, minY
	for _, seg := range o.Segments {
		for i := 0; i < seg.Op.PointCount(); i++ {
			p := seg.Points[i]
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
	}
	return XYWH(minX, minY, maxX-minX, maxY-minY)
}

// outlineFromSFNT converts sfnt segments to an Outline.
func outlineFromSFNT(segments sfnt.Segments) Outline {
	out := Outline{Segments: make([]Segment, 0, len(segments))}
	for _, seg := range segments {
		s := Segment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			s.Op = SegmentMoveTo
		case sfnt.SegmentOpLineTo:
			s.Op = SegmentLineTo
		case sfnt.SegmentOpQuadTo:
			s.Op = SegmentQuadTo
		case sfnt.SegmentOpCubeTo:
			s.Op = SegmentCubeTo
		default:
			continue
		}
		for i := 0; i < s.Op.PointCount(); i++ {
			s.Points[i] = fixedPoint(seg.Args[i])
		}
		out.Segments = append(out.Segments, s)
	}
	return out
}

// fixedPoint converts a fixed.Point26_6 to a Point.
func fixedPoint(p fixed.Point26_6) Point {
	return Point{X: float32(p.X) / 64, Y: float32(p.Y) / 64}
}
