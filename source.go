package textatlas

import (
	"sync/atomic"

	"github.com/gogpu/textatlas/glyph"
)

var nextSourceID atomic.Uint64

// TextGlyphs is a GlyphSource built from glyph handles.
//
// Handles are deduplicated by atlas key and split by typeface: glyphs of
// color typefaces go to ColorGlyphs, all others to MaskGlyphs. Every
// TextGlyphs has a process-unique ID.
type TextGlyphs struct {
	id       uint64
	mask     []*glyph.Handle
	color    []*glyph.Handle
	maxScale float32
}

// NewTextGlyphs creates a source from handles in packing order. A
// non-positive maxScale is treated as 1.
func NewTextGlyphs(handles []*glyph.Handle, maxScale float32) *TextGlyphs {
	if !(maxScale > 0) {
		maxScale = 1
	}
	g := &TextGlyphs{
		id:       nextSourceID.Add(1),
		maxScale: maxScale,
	}
	seen := make(map[glyph.Key]struct{}, len(handles))
	for _, h := range handles {
		if h == nil {
			continue
		}
		key := glyph.AtlasKey(h, h.Style)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if h.Font.HasColor() {
			g.color = append(g.color, h)
		} else {
			g.mask = append(g.mask, h)
		}
	}
	return g
}

// ShapeText shapes text with s and returns a source of its distinct
// glyphs.
func ShapeText(s *glyph.Shaper, text string, font glyph.Font, style glyph.TextStyle, strokeWidth, maxScale float32) (*TextGlyphs, error) {
	handles, err := s.Handles(text, font, style, strokeWidth)
	if err != nil {
		return nil, err
	}
	return NewTextGlyphs(handles, maxScale), nil
}

// ID implements GlyphSource.
func (g *TextGlyphs) ID() uint64 { return g.id }

// MaskGlyphs implements GlyphSource.
func (g *TextGlyphs) MaskGlyphs() []*glyph.Handle { return g.mask }

// ColorGlyphs implements GlyphSource.
func (g *TextGlyphs) ColorGlyphs() []*glyph.Handle { return g.color }

// MaxScale implements GlyphSource.
func (g *TextGlyphs) MaxScale() float32 { return g.maxScale }

var _ GlyphSource = (*TextGlyphs)(nil)
