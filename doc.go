// Package textatlas renders text glyphs into GPU texture atlases.
//
// # Overview
//
// A text atlas packs the rasterized images of every glyph a piece of text
// needs into as few fixed-size texture pages as possible, rasterizes each
// page once, and then answers "where is this glyph in this style?" in
// constant time. Glyphs can be filled, stroked, or both, and come from mono
// or color typefaces: mono glyphs go to an alpha-only mask atlas, color
// glyphs to an RGBA color atlas. Both atlases share one page index space.
//
// # Quick Start
//
//	tf, _ := glyph.ParseTypeface(goregular.TTF)
//	font := glyph.Font{Typeface: tf, Size: 24}
//
//	source, err := textatlas.ShapeText(glyph.NewShaper(), "Hello", font, glyph.StyleFill, 0, 1)
//	if err != nil {
//	    return err
//	}
//	ctx := render.NewSoftwareContext()
//	ta, err := textatlas.Build(source, textatlas.Provider(ctx), 2)
//	if err != nil {
//	    return err
//	}
//	defer ta.Release()
//
//	for _, h := range source.MaskGlyphs() {
//	    loc, _ := ta.Locator(h, h.Style)
//	    tex := ta.Texture(loc.PageIndex)
//	    quad, _ := render.TextureQuad(loc.Rect, tex, dst)
//	    ...
//	}
//
// # Packages
//
//   - glyph: typefaces, fonts, glyph handles, style and atlas keys, shaping
//   - atlas: page layout, rasterization and lookup of one atlas
//   - render: drawing contexts, surfaces, textures and the atlas shader
//   - graphics: vector shapes drawn through a render.Canvas
//   - cache: RenderCache, which keeps atlases alive across frames
//
// # Logging
//
// textatlas is silent by default. SetLogger enables structured logging
// through log/slog for this package and its sub-packages.
package textatlas
