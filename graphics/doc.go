// Package graphics provides vector graphics drawn through a render.Canvas.
//
// A Shape fills a path with a solid color or a linear or radial gradient.
// Shapes are immutable once made and expose their outline for hit testing
// and, when they paint opaquely, for use as a mask.
//
//	p := render.NewPath()
//	p.AddCircle(50, 50, 40)
//	s := graphics.MakeShape(p, render.Color{R: 1, A: 1})
//	s.Draw(surface.Canvas())
package graphics
