package glyph

import (
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// typefaceIDs hands out process-unique typeface IDs. Zero is never used.
var typefaceIDs atomic.Uint32

// Typeface is a parsed font file.
//
// A Typeface is immutable after parsing and safe for concurrent use: the
// sfnt scratch buffer and the color lookup face are guarded by mutexes.
type Typeface struct {
	id    uint32
	data  []byte
	font  *sfnt.Font
	color ColorTables

	mu  sync.Mutex
	buf sfnt.Buffer

	colors colorState
}

// ParseTypeface parses TrueType or OpenType font data.
// The data slice is retained and must not be modified afterwards.
func ParseTypeface(data []byte) (*Typeface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, &FontError{Op: "parse", Err: err}
	}
	return &Typeface{
		id:    typefaceIDs.Add(1),
		data:  data,
		font:  f,
		color: scanColorTables(data),
	}, nil
}

// ID returns the unique identity of the typeface within this process.
func (t *Typeface) ID() uint32 {
	return t.id
}

// HasColor reports whether the typeface carries color glyph tables.
func (t *Typeface) HasColor() bool {
	return t.color.Any()
}

// ColorTables returns which color tables the typeface carries.
func (t *Typeface) ColorTables() ColorTables {
	return t.color
}

// Data returns the raw font data.
func (t *Typeface) Data() []byte {
	return t.data
}

// Name returns the family name, or "" when the font has none.
func (t *Typeface) Name() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	name, err := t.font.Name(&t.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// NumGlyphs returns the number of glyphs in the typeface.
func (t *Typeface) NumGlyphs() int {
	return t.font.NumGlyphs()
}

// UnitsPerEm returns the design units per em.
func (t *Typeface) UnitsPerEm() int {
	return int(t.font.UnitsPerEm())
}

// GlyphIndex returns the glyph for r, or 0 (.notdef) when the typeface
// does not map r.
func (t *Typeface) GlyphIndex(r rune) GlyphID {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx, err := t.font.GlyphIndex(&t.buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// Bounds returns the ink bounds of a glyph at the given size, in pixels,
// with the Y axis pointing down and the origin on the baseline.
// The bounds are rounded out to whole pixels. For color glyphs they cover
// every color layer or the embedded bitmap.
func (t *Typeface) Bounds(gid GlyphID, size float32) (Rect, error) {
	if size <= 0 {
		return Rect{}, ErrInvalidSize
	}
	bounds, err := t.outlineBounds(gid, size)
	if err != nil {
		return Rect{}, err
	}
	if !t.HasColor() {
		return bounds, nil
	}
	cg, ok, err := t.ColorGlyph(gid, size)
	if err != nil || !ok {
		return bounds, nil
	}
	cb := cg.Bounds()
	if cb.Empty() {
		return bounds, nil
	}
	if bounds.Empty() {
		return cb.RoundOut(), nil
	}
	return bounds.Union(cb).RoundOut(), nil
}

func (t *Typeface) outlineBounds(gid GlyphID, size float32) (Rect, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	b, _, err := t.font.GlyphBounds(&t.buf, sfnt.GlyphIndex(gid), toFixed(size), font.HintingNone)
	if err != nil {
		return Rect{}, &FontError{Op: "bounds", Err: err}
	}
	minX := int(b.Min.X) >> 6
	minY := int(b.Min.Y) >> 6
	maxX := int(b.Max.X+63) >> 6
	maxY := int(b.Max.Y+63) >> 6
	return XYWH(float32(minX), float32(minY), float32(maxX-minX), float32(maxY-minY)), nil
}

// Outline loads the vector outline of a glyph at the given size.
// Color glyphs that only exist as bitmaps return ErrNoOutline.
func (t *Typeface) Outline(gid GlyphID, size float32) (Outline, error) {
	if size <= 0 {
		return Outline{}, ErrInvalidSize
	}
	t.mu.Lock()
	segments, err := t.font.LoadGlyph(&t.buf, sfnt.GlyphIndex(gid), toFixed(size), nil)
	if err != nil {
		t.mu.Unlock()
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return Outline{}, ErrNoOutline
		}
		return Outline{}, &FontError{Op: "load glyph", Err: err}
	}
	// segments aliases the buffer; convert before unlocking.
	out := outlineFromSFNT(segments)
	t.mu.Unlock()
	return out, nil
}

// toFixed converts a pixel size to 26.6 fixed point.
func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
