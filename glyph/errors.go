package glyph

import "errors"

// Sentinel errors for glyph package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("glyph: empty font data")

	// ErrNilTypeface is returned when a font has no typeface.
	ErrNilTypeface = errors.New("glyph: font has no typeface")

	// ErrInvalidSize is returned when a font size is not positive.
	ErrInvalidSize = errors.New("glyph: font size must be positive")

	// ErrNoOutline is returned when a glyph has no vector outline,
	// for example a bitmap-only color glyph.
	ErrNoOutline = errors.New("glyph: glyph has no outline")
)

// FontError wraps a failure reported by the font parser.
type FontError struct {
	Op  string
	Err error
}

func (e *FontError) Error() string {
	return "glyph: " + e.Op + ": " + e.Err.Error()
}

func (e *FontError) Unwrap() error {
	return e.Err
}
