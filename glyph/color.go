package glyph

import (
	"bytes"

	"github.com/go-text/typesetting/font/opentype"
)

// Color glyph table tags.
var (
	tagCBDT = opentype.MustNewTag("CBDT")
	tagSbix = opentype.MustNewTag("sbix")
	tagCOLR = opentype.MustNewTag("COLR")
	tagSVG  = opentype.MustNewTag("SVG ")
)

// ColorTables records which color glyph tables a font carries.
type ColorTables struct {
	// CBDT is true if the font has CBDT/CBLC tables (Google format).
	CBDT bool

	// Sbix is true if the font has an sbix table (Apple format).
	Sbix bool

	// COLR is true if the font has COLR/CPAL tables (Microsoft format).
	COLR bool

	// SVG is true if the font has an SVG table.
	SVG bool
}

// Any returns true if any color table is present.
func (c ColorTables) Any() bool {
	return c.CBDT || c.Sbix || c.COLR || c.SVG
}

// Bitmaps returns true if the font embeds bitmap glyphs.
func (c ColorTables) Bitmaps() bool {
	return c.CBDT || c.Sbix
}

// String returns the preferred color format, or "" for monochrome fonts.
// Priority: CBDT > sbix > COLR > SVG.
func (c ColorTables) String() string {
	switch {
	case c.CBDT:
		return "CBDT"
	case c.Sbix:
		return "sbix"
	case c.COLR:
		return "COLR"
	case c.SVG:
		return "SVG"
	}
	return ""
}

// scanColorTables reports the color tables of an OpenType font, or of the
// first font of a collection. Malformed data yields an empty result;
// sfnt.Parse rejects it anyway.
func scanColorTables(data []byte) ColorTables {
	loaders, err := opentype.NewLoaders(bytes.NewReader(data))
	if err != nil || len(loaders) == 0 {
		return ColorTables{}
	}
	ld := loaders[0]
	return ColorTables{
		CBDT: ld.HasTable(tagCBDT),
		Sbix: ld.HasTable(tagSbix),
		COLR: ld.HasTable(tagCOLR),
		SVG:  ld.HasTable(tagSVG),
	}
}
