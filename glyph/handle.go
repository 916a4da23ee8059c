package glyph

import "fmt"

// Handle is one glyph of a font under a render style.
//
// Handles are created once per glyph and style by the text layer and passed
// to atlas builds by pointer. A Handle must not be modified after it has
// been packed into an atlas.
type Handle struct {
	// Font is the font the glyph is drawn with.
	Font Font

	// GlyphID is the glyph index in Font.Typeface.
	GlyphID GlyphID

	// Style is the render style.
	Style TextStyle

	// StrokeWidth is the stroke width in pixels at Font.Size.
	// Only meaningful when Style strokes.
	StrokeWidth float32

	// Bounds is the ink bounds in local glyph space, Y down, origin on
	// the baseline, rounded out to whole pixels.
	Bounds Rect
}

// NewHandle creates a handle and computes its ink bounds from the typeface.
func NewHandle(font Font, gid GlyphID, style TextStyle, strokeWidth float32) (*Handle, error) {
	if font.Typeface == nil {
		return nil, ErrNilTypeface
	}
	bounds, err := font.Typeface.Bounds(gid, font.Size)
	if err != nil {
		return nil, err
	}
	return &Handle{
		Font:        font,
		GlyphID:     gid,
		Style:       style,
		StrokeWidth: strokeWidth,
		Bounds:      bounds,
	}, nil
}

// String returns a short description for logs.
func (h *Handle) String() string {
	return fmt.Sprintf("Glyph(tf=%d gid=%d %s sw=%g size=%g)",
		h.Font.TypefaceID(), h.GlyphID, h.Style, h.StrokeWidth, h.Font.Size)
}
