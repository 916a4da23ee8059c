package glyph

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// TextStyle is the render style of a glyph.
type TextStyle uint8

const (
	// StyleFill fills the glyph outline.
	StyleFill TextStyle = iota

	// StyleStroke strokes the glyph outline.
	StyleStroke

	// StyleStrokeAndFill fills the outline and strokes it.
	StyleStrokeAndFill
)

// String returns the string representation of the style.
func (s TextStyle) String() string {
	switch s {
	case StyleFill:
		return "Fill"
	case StyleStroke:
		return "Stroke"
	case StyleStrokeAndFill:
		return "StrokeAndFill"
	default:
		return unknownStr
	}
}

// HasFill reports whether the style fills the outline.
func (s TextStyle) HasFill() bool {
	return s == StyleFill || s == StyleStrokeAndFill
}

// HasStroke reports whether the style strokes the outline.
func (s TextStyle) HasStroke() bool {
	return s == StyleStroke || s == StyleStrokeAndFill
}
