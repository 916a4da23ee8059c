// Package glyph describes the glyphs that are packed into text atlases.
//
// The model separates three levels of identity:
//
//   - Typeface: a parsed font file with a process-unique ID and a
//     color-capability flag derived from its color tables
//   - Font: a typeface at a nominal size
//   - Handle: one glyph of a font under a render style (Fill, Stroke or
//     StrokeAndFill) and stroke width, with precomputed ink bounds
//
// Handles are grouped into atlas runs by their style key and located in an
// atlas by their atlas key. Both keys are byte strings produced by a
// KeyWriter, so equality is structural.
//
// # Example usage
//
//	tf, err := glyph.ParseTypeface(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	font := glyph.Font{Typeface: tf, Size: 24}
//	h, err := glyph.NewHandle(font, tf.GlyphIndex('A'), glyph.StyleFill, 0)
//
// Outlines are loaded with golang.org/x/image/font/sfnt. Strings can be
// turned into glyph IDs with a Shaper, which uses go-text/typesetting.
package glyph
