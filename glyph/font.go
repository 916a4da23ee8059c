package glyph

// Font is a typeface at a nominal size in pixels.
type Font struct {
	Typeface *Typeface
	Size     float32
}

// HasColor reports whether the font's typeface is color-capable.
func (f Font) HasColor() bool {
	return f.Typeface != nil && f.Typeface.HasColor()
}

// TypefaceID returns the typeface identity, or 0 for a font without typeface.
func (f Font) TypefaceID() uint32 {
	if f.Typeface == nil {
		return 0
	}
	return f.Typeface.ID()
}

// Outline loads the outline of gid at the font size.
func (f Font) Outline(gid GlyphID) (Outline, error) {
	if f.Typeface == nil {
		return Outline{}, ErrNilTypeface
	}
	return f.Typeface.Outline(gid, f.Size)
}

// ColorGlyph loads the color rendition of gid at the font size. ok is
// false for glyphs without color data.
func (f Font) ColorGlyph(gid GlyphID) (ColorGlyph, bool, error) {
	if f.Typeface == nil {
		return ColorGlyph{}, false, ErrNilTypeface
	}
	return f.Typeface.ColorGlyph(gid, f.Size)
}
