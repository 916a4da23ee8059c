// Package stroke expands stroked paths into polygons for coverage rasterization.
//
// Paths are flattened into polylines. Every polyline segment becomes a
// quadrilateral of the stroke width, and every interior vertex gets a join
// polygon covering the gap on the outer side of the turn. All polygons are
// emitted with the same winding, so an accumulating rasterizer such as
// golang.org/x/image/vector can fill their union in a single pass without
// overlapping pieces cancelling each other out.
//
// Open subpaths end with butt caps. Glyph outlines are always closed.
//
//	e := stroke.NewExpander(stroke.Stroke{Width: 2, Join: stroke.LineJoinMiter, MiterLimit: 4})
//	polys := e.Expand([]stroke.PathElement{
//	    stroke.MoveTo{Point: stroke.Point{X: 0, Y: 0}},
//	    stroke.LineTo{Point: stroke.Point{X: 10, Y: 0}},
//	    stroke.LineTo{Point: stroke.Point{X: 10, Y: 10}},
//	})
package stroke
