// Package fonttest builds color fonts for tests out of monochrome ones.
package fonttest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image/color"
	"sort"

	"github.com/go-text/typesetting/font/opentype"
)

// Foreground is the palette index of layers drawn with the text color.
const Foreground = 0xFFFF

// Layer is one layer of a COLR version 0 glyph.
type Layer struct {
	GlyphID      uint16
	PaletteIndex uint16
}

// WithCOLR returns base with COLR version 0 and CPAL tables added. glyphs
// maps base glyph IDs to their layers; palette is the single palette the
// layers index into.
func WithCOLR(base []byte, glyphs map[uint16][]Layer, palette []color.NRGBA) ([]byte, error) {
	ld, err := opentype.NewLoader(bytes.NewReader(base))
	if err != nil {
		return nil, fmt.Errorf("fonttest: load base font: %w", err)
	}
	tables := make([]opentype.Table, 0, len(ld.Tables())+2)
	for _, tag := range ld.Tables() {
		raw, err := ld.RawTable(tag)
		if err != nil {
			return nil, fmt.Errorf("fonttest: read %s: %w", tag, err)
		}
		tables = append(tables, opentype.Table{Tag: tag, Content: raw})
	}
	tables = append(tables,
		opentype.Table{Tag: opentype.MustNewTag("COLR"), Content: colr(glyphs)},
		opentype.Table{Tag: opentype.MustNewTag("CPAL"), Content: cpal(palette)},
	)
	sort.Slice(tables, func(i, j int) bool { return tables[i].Tag < tables[j].Tag })
	return write(tables), nil
}

// colr encodes a version 0 COLR table.
func colr(glyphs map[uint16][]Layer) []byte {
	ids := make([]uint16, 0, len(glyphs))
	for id := range glyphs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	const headerSize = 14
	layerOffset := headerSize + 6*len(ids)
	var layers []Layer
	out := make([]byte, layerOffset)
	be := binary.BigEndian
	be.PutUint16(out[2:], uint16(len(ids)))
	be.PutUint32(out[4:], headerSize)
	be.PutUint32(out[8:], uint32(layerOffset))
	for i, id := range ids {
		rec := out[headerSize+6*i:]
		be.PutUint16(rec[0:], id)
		be.PutUint16(rec[2:], uint16(len(layers)))
		be.PutUint16(rec[4:], uint16(len(glyphs[id])))
		layers = append(layers, glyphs[id]...)
	}
	be.PutUint16(out[12:], uint16(len(layers)))
	for _, l := range layers {
		out = be.AppendUint16(out, l.GlyphID)
		out = be.AppendUint16(out, l.PaletteIndex)
	}
	return out
}

// cpal encodes a version 0 CPAL table with one palette.
func cpal(palette []color.NRGBA) []byte {
	const headerSize = 12 + 2
	out := make([]byte, headerSize, headerSize+4*len(palette))
	be := binary.BigEndian
	be.PutUint16(out[2:], uint16(len(palette)))
	be.PutUint16(out[4:], 1)
	be.PutUint16(out[6:], uint16(len(palette)))
	be.PutUint32(out[8:], headerSize)
	for _, c := range palette {
		out = append(out, c.B, c.G, c.R, c.A)
	}
	return out
}

// write lays out an sfnt file. Unlike opentype.WriteTTF it starts every
// table on a four byte boundary, which x/image/font/sfnt requires.
func write(tables []opentype.Table) []byte {
	be := binary.BigEndian
	n := len(tables)
	searchRange, entrySelector := 16, 0
	for searchRange*2 <= n*16 {
		searchRange *= 2
		entrySelector++
	}
	out := make([]byte, 12+16*n)
	be.PutUint32(out[0:], 0x00010000)
	be.PutUint16(out[4:], uint16(n))
	be.PutUint16(out[6:], uint16(searchRange))
	be.PutUint16(out[8:], uint16(entrySelector))
	be.PutUint16(out[10:], uint16(n*16-searchRange))
	for i, t := range tables {
		rec := out[12+16*i:]
		be.PutUint32(rec[0:], uint32(t.Tag))
		be.PutUint32(rec[4:], checksum(t.Content))
		be.PutUint32(rec[8:], uint32(len(out)))
		be.PutUint32(rec[12:], uint32(len(t.Content)))
		out = append(out, t.Content...)
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
	}
	return out
}

func checksum(b []byte) uint32 {
	var sum uint32
	for i := 0; i < len(b); i += 4 {
		var word [4]byte
		copy(word[:], b[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}
