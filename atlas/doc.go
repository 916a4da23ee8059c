// Package atlas packs rasterized glyphs into texture pages.
//
// Build takes an ordered list of glyph handles and lays them out with a
// greedy shelf-growing packer. Glyphs that share a style key (render style,
// stroke width and typeface) are drawn together as one run per page. When a
// glyph would grow the page beyond the maximum texture size, the page is
// closed at its previous extent and the glyph starts a new page.
//
// Every page is rasterized exactly once through a render.Context. The
// resulting Atlas answers glyph and style lookups with a Locator: the page
// index and the glyph cell in final pixel coordinates.
//
//	a, err := atlas.Build(ctx, handles, 2, ctx.Capabilities().MaxTextureSize)
//	if err != nil {
//	    return err
//	}
//	defer a.Release()
//	loc, ok := a.Locator(h, glyph.StyleFill)
//
// All glyphs of one typeface are expected to share a font size: a run is
// drawn with the font of its first glyph.
package atlas
