package graphics

import (
	"testing"

	"github.com/gogpu/textatlas/glyph"
	"github.com/gogpu/textatlas/render"
)

func rectPath(x, y, w, h float64) *render.Path {
	p := render.NewPath()
	p.AddRect(x, y, w, h)
	return p
}

func TestMakeShapeEmpty(t *testing.T) {
	if MakeShape(nil, render.Black) != nil {
		t.Error("MakeShape(nil) should return nil")
	}
	if MakeShape(render.NewPath(), render.Black) != nil {
		t.Error("MakeShape(empty) should return nil")
	}
	if MakeGradientShape(render.NewPath(), GradientPaint{Colors: []render.Color{render.Black}}) != nil {
		t.Error("MakeGradientShape(empty path) should return nil")
	}
	if MakeGradientShape(rectPath(0, 0, 1, 1), GradientPaint{}) != nil {
		t.Error("MakeGradientShape without colors should return nil")
	}
}

func TestShapeBoundsAndHitTest(t *testing.T) {
	s := MakeShape(rectPath(10, 20, 30, 40), render.Black)
	if got, want := s.MeasureBounds(), glyph.XYWH(10, 20, 30, 40); got != want {
		t.Errorf("MeasureBounds() = %+v, want %+v", got, want)
	}
	tests := []struct {
		x, y float32
		want bool
	}{
		{25, 40, true},
		{5, 40, false},
		{25, 61, false},
	}
	for _, tt := range tests {
		if got := s.HitTest(tt.x, tt.y); got != tt.want {
			t.Errorf("HitTest(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestShapeDoesNotAliasPath(t *testing.T) {
	p := rectPath(0, 0, 10, 10)
	s := MakeShape(p, render.Black)
	p.AddRect(100, 100, 10, 10)
	if got := s.MeasureBounds(); got != glyph.XYWH(0, 0, 10, 10) {
		t.Errorf("shape changed with its source path: %+v", got)
	}
}

func TestShapePath(t *testing.T) {
	opaque := []render.Color{{R: 1, A: 1}, {B: 1, A: 1}}
	translucent := []render.Color{{R: 1, A: 1}, {B: 1, A: 0.5}}

	tests := []struct {
		name  string
		shape *Shape
		want  bool
	}{
		{"opaque color", MakeShape(rectPath(0, 0, 4, 4), render.Color{G: 1, A: 1}), true},
		{"translucent color", MakeShape(rectPath(0, 0, 4, 4), render.Color{G: 1, A: 0.5}), false},
		{"opaque gradient", MakeGradientShape(rectPath(0, 0, 4, 4), GradientPaint{End: render.Point{X: 4}, Colors: opaque}), true},
		{"translucent gradient", MakeGradientShape(rectPath(0, 0, 4, 4), GradientPaint{End: render.Point{X: 4}, Colors: translucent}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := tt.shape.Path()
			if ok != tt.want {
				t.Fatalf("Path() ok = %v, want %v", ok, tt.want)
			}
			if ok && p.Bounds() != glyph.XYWH(0, 0, 4, 4) {
				t.Errorf("Path() bounds = %+v", p.Bounds())
			}
		})
	}
}

func TestGradientShader(t *testing.T) {
	colors := []render.Color{render.Black, render.White}

	linear := gradientShader(GradientPaint{Type: GradientLinear, End: render.Point{X: 10}, Colors: colors})
	if _, ok := linear.(*render.LinearGradient); !ok {
		t.Errorf("linear shader = %T", linear)
	}

	radial := gradientShader(GradientPaint{
		Type:   GradientRadial,
		Start:  render.Point{X: 1, Y: 1},
		End:    render.Point{X: 4, Y: 5},
		Colors: colors,
	})
	rg, ok := radial.(*render.RadialGradient)
	if !ok {
		t.Fatalf("radial shader = %T", radial)
	}
	if rg.Radius != 5 || rg.Center != (render.Point{X: 1, Y: 1}) {
		t.Errorf("radial center %+v radius %v, want (1,1) and 5", rg.Center, rg.Radius)
	}

	// Degenerate gradients fall back to the last color.
	for _, typ := range []GradientType{GradientLinear, GradientRadial} {
		s := gradientShader(GradientPaint{Type: typ, Colors: colors})
		cs, ok := s.(*render.ColorShader)
		if !ok || cs.Color != render.White {
			t.Errorf("%v degenerate shader = %#v, want white ColorShader", typ, s)
		}
	}
}

func TestShapeDraw(t *testing.T) {
	surface, err := render.NewSoftwareContext().NewSurface(8, 8, false)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	s := MakeShape(rectPath(2, 2, 4, 4), render.Color{R: 1, A: 1})
	s.Prepare()
	s.Draw(surface.Canvas())

	tex, err := surface.Texture()
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	pix := tex.Pixels()
	at := func(x, y int) []byte { i := (y*8 + x) * 4; return pix[i : i+4] }
	if p := at(3, 3); p[0] != 255 || p[3] != 255 || p[1] != 0 {
		t.Errorf("inside pixel = %v, want opaque red", p)
	}
	if p := at(0, 0); p[3] != 0 {
		t.Errorf("outside pixel = %v, want transparent", p)
	}
}

func TestGradientTypeString(t *testing.T) {
	tests := []struct {
		typ  GradientType
		want string
	}{
		{GradientLinear, "Linear"},
		{GradientRadial, "Radial"},
		{GradientType(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("GradientType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
