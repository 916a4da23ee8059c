package glyph

import (
	"encoding/binary"
	"math"
)

// Key is a byte key built by a KeyWriter. Keys compare structurally and
// can be used as map keys.
type Key string

// KeyWriter appends fixed-width values to a key.
// The zero value is ready to use.
type KeyWriter struct {
	buf []byte
}

// WriteUint32 appends v in little-endian order.
func (w *KeyWriter) WriteUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// WriteFloat32 appends the IEEE-754 bits of v.
func (w *KeyWriter) WriteFloat32(v float32) {
	w.WriteUint32(math.Float32bits(v))
}

// Key returns the key written so far.
func (w *KeyWriter) Key() Key {
	return Key(w.buf)
}

// writeStyle writes the style discriminant, stroke width and typeface ID.
func writeStyle(w *KeyWriter, h *Handle, style TextStyle) {
	w.WriteUint32(uint32(style))
	w.WriteFloat32(h.StrokeWidth)
	w.WriteUint32(h.Font.TypefaceID())
}

// StyleKey returns the key shared by all glyphs that can be drawn with
// the same paint and font state as h.
func StyleKey(h *Handle) Key {
	var w KeyWriter
	writeStyle(&w, h, h.Style)
	return w.Key()
}

// AtlasKey returns the key locating h under style in an atlas: the style
// key for style followed by the glyph index.
func AtlasKey(h *Handle, style TextStyle) Key {
	var w KeyWriter
	writeStyle(&w, h, style)
	w.WriteUint32(uint32(h.GlyphID))
	return w.Key()
}
