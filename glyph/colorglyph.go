package glyph

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
	"golang.org/x/image/tiff"
)

// foregroundPaletteIndex marks COLR layers painted with the text color.
const foregroundPaletteIndex = 0xFFFF

// errUnsupportedBitmap is returned for bitmap glyph formats with no decoder.
var errUnsupportedBitmap = errors.New("glyph: unsupported bitmap format")

// colorState holds the go-text face color lookups go through. The face
// is not safe for concurrent use; mu guards it.
type colorState struct {
	once sync.Once
	mu   sync.Mutex
	face *font.Face
	err  error
}

// ColorLayer is one outline of a layered color glyph and the color it is
// filled with.
type ColorLayer struct {
	Outline Outline

	// Color is the non-premultiplied palette color. Unused when
	// Foreground is set.
	Color color.NRGBA

	// Foreground marks layers drawn with the text color.
	Foreground bool
}

// ColorBitmap is an embedded glyph image and the rectangle it covers in
// glyph space, in pixels, Y down, origin on the baseline.
type ColorBitmap struct {
	Image image.Image
	Rect  Rect
}

// ColorGlyph is the color rendition of a glyph: palette-colored layers
// from COLR/CPAL, or an embedded CBDT/sbix bitmap. At most one is set.
type ColorGlyph struct {
	Layers []ColorLayer
	Bitmap *ColorBitmap
}

// Bounds returns the union of the layer outlines or the bitmap rectangle.
func (g ColorGlyph) Bounds() Rect {
	if g.Bitmap != nil {
		return g.Bitmap.Rect
	}
	var r Rect
	for i, l := range g.Layers {
		b := l.Outline.Bounds()
		if i == 0 {
			r = b
			continue
		}
		r = r.Union(b)
	}
	return r
}

// ColorGlyph returns the color rendition of gid at size. ok is false when
// the typeface carries no color data for gid; such glyphs are drawn from
// their outlines. SVG glyphs are not rendered in color.
func (t *Typeface) ColorGlyph(gid GlyphID, size float32) (g ColorGlyph, ok bool, err error) {
	if size <= 0 {
		return ColorGlyph{}, false, ErrInvalidSize
	}
	if !t.color.COLR && !t.color.Bitmaps() {
		return ColorGlyph{}, false, nil
	}
	face, err := t.colorFace()
	if err != nil {
		return ColorGlyph{}, false, err
	}

	t.colors.mu.Lock()
	defer t.colors.mu.Unlock()
	ppem := uint16(max(1, min(size+0.5, 0xFFFF)))
	face.SetPpem(ppem, ppem)

	if t.color.COLR {
		if data, found := face.GlyphDataColor(uint16(gid)); found {
			layers, err := t.colorLayers(face, data.Paint, size)
			if err != nil {
				return ColorGlyph{}, false, err
			}
			if len(layers) > 0 {
				return ColorGlyph{Layers: layers}, true, nil
			}
		}
	}
	if t.color.Bitmaps() {
		if data, found := face.GlyphDataBitmap(uint16(gid)); found {
			img, err := decodeBitmap(data)
			if err != nil {
				return ColorGlyph{}, false, &FontError{Op: "decode bitmap", Err: err}
			}
			return ColorGlyph{Bitmap: &ColorBitmap{
				Image: img,
				Rect:  bitmapRect(face, gid, size, data),
			}}, true, nil
		}
	}
	return ColorGlyph{}, false, nil
}

// colorFace returns the go-text face used for color lookups, parsing the
// font on first use.
func (t *Typeface) colorFace() (*font.Face, error) {
	t.colors.once.Do(func() {
		face, err := font.ParseTTF(bytes.NewReader(t.data))
		if err != nil {
			t.colors.err = &FontError{Op: "parse color tables", Err: err}
			return
		}
		t.colors.face = face
	})
	return t.colors.face, t.colors.err
}

// colorLayers flattens a COLR paint into solid layers. Gradients are
// approximated by their first color stop; transforms and composites are
// not supported and yield no layers.
func (t *Typeface) colorLayers(face *font.Face, paint tables.PaintTable, size float32) ([]ColorLayer, error) {
	switch p := paint.(type) {
	case tables.PaintColrLayersResolved:
		out := make([]ColorLayer, 0, len(p))
		for _, l := range p {
			layer, err := t.layer(GlyphID(l.GlyphID), size)
			if err != nil {
				return nil, err
			}
			layer.Color, layer.Foreground = paletteColor(face, l.PaletteIndex, 1)
			out = append(out, layer)
		}
		return out, nil
	case tables.PaintColrLayers:
		if face.COLR == nil {
			return nil, nil
		}
		children, err := face.COLR.LayerList.Resolve(p)
		if err != nil {
			return nil, &FontError{Op: "resolve color layers", Err: err}
		}
		var out []ColorLayer
		for _, child := range children {
			layers, err := t.colorLayers(face, child, size)
			if err != nil {
				return nil, err
			}
			out = append(out, layers...)
		}
		return out, nil
	case tables.PaintGlyph:
		layer, err := t.layer(GlyphID(p.GlyphID), size)
		if err != nil {
			return nil, err
		}
		layer.Color, layer.Foreground = fillColor(face, p.Paint)
		return []ColorLayer{layer}, nil
	}
	return nil, nil
}

func (t *Typeface) layer(gid GlyphID, size float32) (ColorLayer, error) {
	outline, err := t.Outline(gid, size)
	if err != nil && !errors.Is(err, ErrNoOutline) {
		return ColorLayer{}, err
	}
	return ColorLayer{Outline: outline}, nil
}

// fillColor returns the color a PaintGlyph fills its outline with.
func fillColor(face *font.Face, paint tables.PaintTable) (color.NRGBA, bool) {
	switch p := paint.(type) {
	case tables.PaintSolid:
		return paletteColor(face, p.PaletteIndex, float32(p.Alpha)/(1<<14))
	case tables.PaintVarSolid:
		return paletteColor(face, p.PaletteIndex, float32(p.Alpha)/(1<<14))
	case tables.PaintLinearGradient:
		return firstStop(face, p.ColorLine)
	case tables.PaintRadialGradient:
		return firstStop(face, p.ColorLine)
	case tables.PaintSweepGradient:
		return firstStop(face, p.ColorLine)
	}
	return color.NRGBA{}, true
}

func firstStop(face *font.Face, line tables.ColorLine) (color.NRGBA, bool) {
	if len(line.ColorStops) == 0 {
		return color.NRGBA{}, true
	}
	s := line.ColorStops[0]
	return paletteColor(face, s.PaletteIndex, float32(s.Alpha)/(1<<14))
}

// paletteColor looks up index in the default palette. The second result
// is true when the layer takes the text color instead.
func paletteColor(face *font.Face, index uint16, alpha float32) (color.NRGBA, bool) {
	if index == foregroundPaletteIndex || len(face.CPAL) == 0 || int(index) >= len(face.CPAL[0]) {
		return color.NRGBA{}, true
	}
	rec := face.CPAL[0][index]
	a := float32(rec.Alpha) * max(0, min(alpha, 1))
	return color.NRGBA{R: rec.Red, G: rec.Green, B: rec.Blue, A: uint8(a + 0.5)}, false
}

// bitmapRect places a bitmap glyph from its strike metrics. Without
// metrics the bitmap is scaled to the em height and sits on the ascender.
func bitmapRect(face *font.Face, gid GlyphID, size float32, data font.GlyphBitmap) Rect {
	scale := size / float32(face.Upem())
	if ext, ok := face.GlyphExtents(font.GID(gid)); ok && ext.Width != 0 && ext.Height != 0 {
		r := Rect{
			X: ext.XBearing * scale,
			Y: -ext.YBearing * scale,
			W: ext.Width * scale,
			H: -ext.Height * scale,
		}
		if r.H < 0 {
			r.Y, r.H = r.Y+r.H, -r.H
		}
		return r
	}
	h := size
	w := size
	if data.Height > 0 {
		w = size * float32(data.Width) / float32(data.Height)
	}
	top := -0.8 * size
	if ext, ok := face.FontHExtents(); ok {
		top = -ext.Ascender * scale
	}
	return Rect{X: 0, Y: top, W: w, H: h}
}

// decodeBitmap decodes the raw data of an embedded bitmap glyph.
func decodeBitmap(data font.GlyphBitmap) (image.Image, error) {
	switch data.Format {
	case font.PNG:
		return png.Decode(bytes.NewReader(data.Data))
	case font.JPG:
		return jpeg.Decode(bytes.NewReader(data.Data))
	case font.TIFF:
		return tiff.Decode(bytes.NewReader(data.Data))
	case font.BlackAndWhite:
		return unpackBits(data.Data, data.Width, data.Height)
	}
	return nil, fmt.Errorf("%w: %d", errUnsupportedBitmap, data.Format)
}

// unpackBits expands a bit-packed one bit per pixel image, rows not padded.
func unpackBits(bits []byte, w, h int) (*image.Alpha, error) {
	if w <= 0 || h <= 0 || len(bits)*8 < w*h {
		return nil, fmt.Errorf("%w: %dx%d bitmap in %d bytes", errUnsupportedBitmap, w, h, len(bits))
	}
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		if bits[i/8]&(0x80>>(i%8)) != 0 {
			img.Pix[i/w*img.Stride+i%w] = 0xFF
		}
	}
	return img, nil
}
