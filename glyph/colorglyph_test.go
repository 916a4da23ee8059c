package glyph

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textatlas/internal/fonttest"
)

var testPalette = []color.NRGBA{
	{R: 0xFF, A: 0xFF},
	{B: 0xFF, A: 0x80},
}

// colrTypeface returns Go Regular with color layers: A is red with a
// foreground period on top, B is translucent blue and i is painted as a
// red W.
func colrTypeface(t *testing.T) *Typeface {
	t.Helper()
	base := mustTypeface(t, goregular.TTF)
	gid := func(r rune) uint16 { return uint16(base.GlyphIndex(r)) }
	data, err := fonttest.WithCOLR(goregular.TTF, map[uint16][]fonttest.Layer{
		gid('A'): {{GlyphID: gid('A'), PaletteIndex: 0}, {GlyphID: gid('.'), PaletteIndex: fonttest.Foreground}},
		gid('B'): {{GlyphID: gid('B'), PaletteIndex: 1}},
		gid('i'): {{GlyphID: gid('W'), PaletteIndex: 0}},
	}, testPalette)
	if err != nil {
		t.Fatalf("WithCOLR: %v", err)
	}
	return mustTypeface(t, data)
}

func TestColorGlyphLayers(t *testing.T) {
	tf := colrTypeface(t)
	if !tf.ColorTables().COLR || !tf.HasColor() {
		t.Fatalf("ColorTables() = %+v, want COLR", tf.ColorTables())
	}

	g, ok, err := tf.ColorGlyph(tf.GlyphIndex('A'), 32)
	if err != nil || !ok {
		t.Fatalf("ColorGlyph(A) = %v, %v", ok, err)
	}
	if len(g.Layers) != 2 || g.Bitmap != nil {
		t.Fatalf("ColorGlyph(A) = %d layers, bitmap %v; want 2 layers", len(g.Layers), g.Bitmap)
	}
	if l := g.Layers[0]; l.Foreground || l.Color != testPalette[0] || l.Outline.IsEmpty() {
		t.Errorf("layer 0 = fg %v color %v empty %v; want red outline", l.Foreground, l.Color, l.Outline.IsEmpty())
	}
	if !g.Layers[1].Foreground {
		t.Error("layer 1 should take the foreground color")
	}

	g, ok, err = tf.ColorGlyph(tf.GlyphIndex('B'), 32)
	if err != nil || !ok || len(g.Layers) != 1 {
		t.Fatalf("ColorGlyph(B) = %+v, %v, %v", g, ok, err)
	}
	if g.Layers[0].Color != testPalette[1] {
		t.Errorf("B color = %v, want %v", g.Layers[0].Color, testPalette[1])
	}

	if _, ok, err := tf.ColorGlyph(tf.GlyphIndex('C'), 32); ok || err != nil {
		t.Errorf("ColorGlyph(C) = %v, %v; want no color data", ok, err)
	}
	if _, _, err := tf.ColorGlyph(tf.GlyphIndex('A'), 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("size 0: got %v, want ErrInvalidSize", err)
	}
}

func TestColorGlyphMonochrome(t *testing.T) {
	tf := mustTypeface(t, goregular.TTF)
	if _, ok, err := tf.ColorGlyph(tf.GlyphIndex('A'), 16); ok || err != nil {
		t.Errorf("ColorGlyph on Go Regular = %v, %v; want no color data", ok, err)
	}
	if _, _, err := (Font{}).ColorGlyph(1); !errors.Is(err, ErrNilTypeface) {
		t.Errorf("nil typeface: got %v, want ErrNilTypeface", err)
	}
}

func TestColorGlyphBoundsCoverLayers(t *testing.T) {
	tf := colrTypeface(t)
	mono := mustTypeface(t, goregular.TTF)

	w, err := mono.Bounds(mono.GlyphIndex('W'), 32)
	if err != nil {
		t.Fatalf("Bounds(W): %v", err)
	}
	i, err := tf.Bounds(tf.GlyphIndex('i'), 32)
	if err != nil {
		t.Fatalf("Bounds(i): %v", err)
	}
	if !i.ContainsRect(w) {
		t.Errorf("color i bounds %+v do not cover its W layer %+v", i, w)
	}
}

func TestDecodeBitmap(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.NRGBA{G: 0xFF, A: 0xFF})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	img, err := decodeBitmap(font.GlyphBitmap{Data: buf.Bytes(), Format: font.PNG, Width: 3, Height: 2})
	if err != nil {
		t.Fatalf("decodeBitmap(PNG): %v", err)
	}
	if _, g, _, _ := img.At(1, 1).RGBA(); g != 0xFFFF {
		t.Errorf("PNG pixel (1,1) green = %#x, want 0xffff", g)
	}

	// 3x2 bits 101 011, packed without row padding.
	img, err = decodeBitmap(font.GlyphBitmap{Data: []byte{0b10101100}, Format: font.BlackAndWhite, Width: 3, Height: 2})
	if err != nil {
		t.Fatalf("decodeBitmap(BlackAndWhite): %v", err)
	}
	want := [2][3]bool{{true, false, true}, {false, true, true}}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if (a != 0) != want[y][x] {
				t.Errorf("bit (%d,%d) = %v, want %v", x, y, a != 0, want[y][x])
			}
		}
	}

	tests := []struct {
		name string
		data font.GlyphBitmap
	}{
		{"unknown format", font.GlyphBitmap{Data: []byte{0}, Width: 1, Height: 1}},
		{"short bits", font.GlyphBitmap{Data: []byte{0}, Format: font.BlackAndWhite, Width: 3, Height: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeBitmap(tt.data); !errors.Is(err, errUnsupportedBitmap) {
				t.Errorf("got %v, want errUnsupportedBitmap", err)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	got := XYWH(0, 0, 2, 2).Union(XYWH(-1, 1, 2, 4))
	if want := XYWH(-1, 0, 3, 5); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}
