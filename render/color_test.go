// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textatlas/glyph"
	"github.com/gogpu/textatlas/internal/fonttest"
)

func TestDrawGlyphsColorLayers(t *testing.T) {
	base, err := glyph.ParseTypeface(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseTypeface: %v", err)
	}
	h := uint16(base.GlyphIndex('H'))
	data, err := fonttest.WithCOLR(goregular.TTF, map[uint16][]fonttest.Layer{
		h: {{GlyphID: h, PaletteIndex: 0}},
	}, []color.NRGBA{{G: 0xFF, A: 0xFF}})
	if err != nil {
		t.Fatalf("WithCOLR: %v", err)
	}
	tf, err := glyph.ParseTypeface(data)
	if err != nil {
		t.Fatalf("ParseTypeface(COLR): %v", err)
	}

	s, err := NewSoftwareContext().NewSurface(40, 40, false)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	font := glyph.Font{Typeface: tf, Size: 32}
	s.Canvas().DrawGlyphs([]glyph.GlyphID{glyph.GlyphID(h)}, []Point{{X: 2, Y: 34}}, font, NewPaint())

	tex, err := s.Texture()
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	pix := tex.Pixels()
	green, other := 0, 0
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] == 0xFF {
			if pix[i] == 0 && pix[i+1] == 0xFF && pix[i+2] == 0 {
				green++
			} else {
				other++
			}
		}
	}
	if green == 0 {
		t.Error("no pixel took the palette color")
	}
	if other != 0 {
		t.Errorf("%d opaque pixels are not the palette color", other)
	}
}

func TestDrawBitmapScalesIntoRect(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	c := newPixelCanvas(dst, nil)
	c.SetMatrix(Scale(2, 2))

	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.RGBA{B: 0xFF, A: 0xFF}), image.Point{}, draw.Src)
	c.drawBitmap(&glyph.ColorBitmap{Image: src, Rect: glyph.XYWH(0, -4, 4, 4)}, Point{X: 1, Y: 5})

	// Glyph space (1,1)-(5,5) lands on device (2,2)-(10,10).
	if got := dst.RGBAAt(6, 6); got.B != 0xFF || got.A != 0xFF {
		t.Errorf("inside pixel = %v, want opaque blue", got)
	}
	for _, p := range []image.Point{{0, 0}, {1, 6}, {12, 6}, {6, 12}} {
		if got := dst.RGBAAt(p.X, p.Y); got.A != 0 {
			t.Errorf("pixel %v = %v, want untouched", p, got)
		}
	}
}
