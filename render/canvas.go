// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/gogpu/textatlas/glyph"
	"github.com/gogpu/textatlas/internal/stroke"
)

// pixelCanvas rasterizes paths into an image with x/image/vector.
//
// Fills and strokes are rasterized as separate coverage passes and
// composited with Porter-Duff source-over.
type pixelCanvas struct {
	dst    draw.Image
	bounds image.Rectangle
	matrix Matrix
	z      vector.Rasterizer

	// onDraw is called after every draw that touched the image.
	onDraw func()
}

func newPixelCanvas(dst draw.Image, onDraw func()) *pixelCanvas {
	return &pixelCanvas{
		dst:    dst,
		bounds: dst.Bounds(),
		matrix: Identity(),
		onDraw: onDraw,
	}
}

func (c *pixelCanvas) Matrix() Matrix {
	return c.matrix
}

func (c *pixelCanvas) SetMatrix(m Matrix) {
	c.matrix = m
}

func (c *pixelCanvas) Concat(m Matrix) {
	c.matrix = c.matrix.Multiply(m)
}

func (c *pixelCanvas) DrawGlyphs(ids []glyph.GlyphID, positions []Point, font glyph.Font, paint Paint) {
	n := min(len(ids), len(positions))
	for i := 0; i < n; i++ {
		if font.HasColor() && c.drawColorGlyph(ids[i], positions[i], font, paint) {
			continue
		}
		outline, err := font.Outline(ids[i])
		if err != nil || outline.IsEmpty() {
			continue
		}
		c.DrawPath(PathFromOutline(outline, positions[i].X, positions[i].Y), paint)
	}
}

// drawColorGlyph draws the color rendition of gid and reports whether the
// glyph had one. Foreground layers take paint; the others take their
// palette color.
func (c *pixelCanvas) drawColorGlyph(gid glyph.GlyphID, pos Point, font glyph.Font, paint Paint) bool {
	cg, ok, err := font.ColorGlyph(gid)
	if err != nil || !ok {
		return false
	}
	if cg.Bitmap != nil {
		c.drawBitmap(cg.Bitmap, pos)
		return true
	}
	for _, layer := range cg.Layers {
		if layer.Outline.IsEmpty() {
			continue
		}
		lp := paint
		if !layer.Foreground {
			lp.Shader = nil
			lp.Color = colorFromNRGBA(layer.Color)
		}
		c.DrawPath(PathFromOutline(layer.Outline, pos.X, pos.Y), lp)
	}
	return true
}

// drawBitmap scales a bitmap glyph into its rectangle at pos under the
// current matrix.
func (c *pixelCanvas) drawBitmap(bm *glyph.ColorBitmap, pos Point) {
	sb := bm.Image.Bounds()
	if sb.Empty() || bm.Rect.Empty() {
		return
	}
	m := c.matrix.
		Multiply(Translate(float64(pos.X+bm.Rect.X), float64(pos.Y+bm.Rect.Y))).
		Multiply(Scale(float64(bm.Rect.W)/float64(sb.Dx()), float64(bm.Rect.H)/float64(sb.Dy()))).
		Multiply(Translate(-float64(sb.Min.X), -float64(sb.Min.Y)))
	s2d := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
	xdraw.CatmullRom.Transform(c.dst, s2d, bm.Image, sb, xdraw.Over, nil)
	if c.onDraw != nil {
		c.onDraw()
	}
}

func colorFromNRGBA(c color.NRGBA) Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

func (c *pixelCanvas) DrawPath(path *Path, paint Paint) {
	if path == nil || path.IsEmpty() {
		return
	}
	device := path.Transform(c.matrix)
	src := c.source(paint)
	if src == nil {
		return
	}

	if paint.Fill {
		c.fillElements(device.elems(), src)
	}
	if paint.Stroke && paint.StrokeWidth > 0 {
		exp := stroke.NewExpander(stroke.Stroke{
			Width:      float64(paint.StrokeWidth) * c.matrix.MaxScale(),
			Join:       strokeJoin(paint.Join),
			MiterLimit: float64(paint.MiterLimit),
		})
		c.fillPolygons(exp.Expand(device.elems()), src)
	}
}

// source returns the image composited through the coverage mask, or nil
// when the paint draws nothing.
func (c *pixelCanvas) source(paint Paint) image.Image {
	if paint.Shader == nil {
		if paint.Color.A <= 0 {
			return nil
		}
		return image.NewUniform(paint.Color.RGBA8())
	}
	inv, ok := c.matrix.Invert()
	if !ok {
		return nil
	}
	return &shaderImage{paint: paint, inverse: inv}
}

func strokeJoin(j LineJoin) stroke.LineJoin {
	switch j {
	case JoinRound:
		return stroke.LineJoinRound
	case JoinBevel:
		return stroke.LineJoinBevel
	default:
		return stroke.LineJoinMiter
	}
}

func (c *pixelCanvas) fillElements(elements []stroke.PathElement, src image.Image) {
	r, ok := c.clip(elementBounds(elements))
	if !ok {
		return
	}
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	pt := func(p stroke.Point) (float32, float32) {
		return float32(p.X - ox), float32(p.Y - oy)
	}

	c.z.Reset(r.Dx(), r.Dy())
	open := false
	for _, el := range elements {
		switch e := el.(type) {
		case stroke.MoveTo:
			if open {
				c.z.ClosePath()
			}
			c.z.MoveTo(pt(e.Point))
			open = true
		case stroke.LineTo:
			c.z.LineTo(pt(e.Point))
		case stroke.QuadTo:
			cx, cy := pt(e.Control)
			x, y := pt(e.Point)
			c.z.QuadTo(cx, cy, x, y)
		case stroke.CubicTo:
			c1x, c1y := pt(e.Control1)
			c2x, c2y := pt(e.Control2)
			x, y := pt(e.Point)
			c.z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case stroke.Close:
			if open {
				c.z.ClosePath()
				open = false
			}
		}
	}
	if open {
		c.z.ClosePath()
	}
	c.composite(r, src)
}

func (c *pixelCanvas) fillPolygons(polys []stroke.Polygon, src image.Image) {
	if len(polys) == 0 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
			maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
		}
	}
	r, ok := c.clip(minX, minY, maxX, maxY)
	if !ok {
		return
	}
	ox, oy := float32(r.Min.X), float32(r.Min.Y)

	// Every polygon winds the same way, so accumulated coverage is their union.
	c.z.Reset(r.Dx(), r.Dy())
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		c.z.MoveTo(float32(poly[0].X)-ox, float32(poly[0].Y)-oy)
		for _, p := range poly[1:] {
			c.z.LineTo(float32(p.X)-ox, float32(p.Y)-oy)
		}
		c.z.ClosePath()
	}
	c.composite(r, src)
}

func (c *pixelCanvas) composite(r image.Rectangle, src image.Image) {
	c.z.DrawOp = draw.Over
	c.z.Draw(c.dst, r, src, r.Min)
	if c.onDraw != nil {
		c.onDraw()
	}
}

// clip returns the pixel rectangle covering the given device bounds,
// clipped to the canvas.
func (c *pixelCanvas) clip(minX, minY, maxX, maxY float64) (image.Rectangle, bool) {
	if math.IsInf(minX, 0) || math.IsNaN(minX) || math.IsNaN(maxX) {
		return image.Rectangle{}, false
	}
	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.bounds)
	return r, !r.Empty()
}

// elementBounds returns the bounds of every point of the elements,
// control points included.
func elementBounds(elements []stroke.PathElement) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	add := func(p stroke.Point) {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	for _, el := range elements {
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
	return minX, minY, maxX, maxY
}

// shaderImage evaluates a paint shader at pixel centers mapped back into
// local coordinates.
type shaderImage struct {
	paint   Paint
	inverse Matrix
}

func (s *shaderImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (s *shaderImage) Bounds() image.Rectangle {
	return image.Rect(math.MinInt32, math.MinInt32, math.MaxInt32, math.MaxInt32)
}

func (s *shaderImage) At(x, y int) color.Color {
	lx, ly := s.inverse.Apply(float64(x)+0.5, float64(y)+0.5)
	return s.paint.colorAt(lx, ly).RGBA8()
}
