package graphics

import (
	"math"

	"github.com/gogpu/textatlas/glyph"
	"github.com/gogpu/textatlas/render"
)

// Graphic is something that can be measured, hit-tested and drawn onto a
// canvas.
type Graphic interface {
	// MeasureBounds returns the bounds of the graphic in local coordinates.
	MeasureBounds() glyph.Rect

	// HitTest reports whether the point lies inside the graphic.
	HitTest(x, y float32) bool

	// Path returns the outline of the graphic when drawing it is the same
	// as filling that outline opaquely.
	Path() (*render.Path, bool)

	// Prepare does work that can happen ahead of Draw.
	Prepare()

	// Draw draws the graphic with the canvas's current matrix.
	Draw(canvas render.Canvas)
}

// GradientType selects the geometry of a gradient fill.
type GradientType int

const (
	// GradientLinear varies the color along the line from Start to End.
	GradientLinear GradientType = iota

	// GradientRadial varies the color outwards from Start, reaching the
	// last stop at the distance of End.
	GradientRadial
)

// String returns the string representation of the gradient type.
func (t GradientType) String() string {
	switch t {
	case GradientLinear:
		return "Linear"
	case GradientRadial:
		return "Radial"
	default:
		return "Unknown"
	}
}

// GradientPaint describes a gradient fill.
type GradientPaint struct {
	Type       GradientType
	Start, End render.Point
	Colors     []render.Color

	// Positions are the stop offsets in [0, 1]. Nil spaces the colors
	// evenly.
	Positions []float32
}

// Shape is a filled path.
type Shape struct {
	path  *render.Path
	paint render.Paint
}

// MakeShape returns a shape filling path with a solid color, or nil when
// the path is empty.
func MakeShape(path *render.Path, color render.Color) *Shape {
	if path == nil || path.IsEmpty() {
		return nil
	}
	paint := render.NewPaint()
	paint.Color = color
	return &Shape{path: path.Clone(), paint: paint}
}

// MakeGradientShape returns a shape filling path with a gradient, or nil
// when the path is empty or the gradient has no colors. A gradient that
// cannot be constructed falls back to its last color.
func MakeGradientShape(path *render.Path, g GradientPaint) *Shape {
	if path == nil || path.IsEmpty() || len(g.Colors) == 0 {
		return nil
	}
	paint := render.NewPaint()
	paint.Shader = gradientShader(g)
	return &Shape{path: path.Clone(), paint: paint}
}

func gradientShader(g GradientPaint) render.Shader {
	var (
		shader render.Shader
		err    error
	)
	switch g.Type {
	case GradientRadial:
		radius := math.Hypot(float64(g.End.X-g.Start.X), float64(g.End.Y-g.Start.Y))
		shader, err = render.NewRadialGradient(g.Start, float32(radius), g.Colors, g.Positions)
	default:
		shader, err = render.NewLinearGradient(g.Start, g.End, g.Colors, g.Positions)
	}
	if err != nil {
		return render.NewColorShader(g.Colors[len(g.Colors)-1])
	}
	return shader
}

// Paint returns the paint the shape is filled with.
func (s *Shape) Paint() render.Paint {
	return s.paint
}

// MeasureBounds implements Graphic.
func (s *Shape) MeasureBounds() glyph.Rect {
	return s.path.Bounds()
}

// HitTest implements Graphic.
func (s *Shape) HitTest(x, y float32) bool {
	return s.path.Contains(x, y)
}

// Path implements Graphic. It returns false unless the paint is fully
// opaque.
func (s *Shape) Path() (*render.Path, bool) {
	if s.paint.Alpha() != 1 {
		return nil, false
	}
	if s.paint.Shader != nil && !s.paint.Shader.IsOpaque() {
		return nil, false
	}
	return s.path.Clone(), true
}

// Prepare implements Graphic. Shapes need no preparation.
func (s *Shape) Prepare() {}

// Draw implements Graphic.
func (s *Shape) Draw(canvas render.Canvas) {
	canvas.DrawPath(s.path, s.paint)
}

var _ Graphic = (*Shape)(nil)
