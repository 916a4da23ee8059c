package atlas

import (
	"fmt"
	"math"
	"slices"
	"sync/atomic"

	"github.com/gogpu/textatlas/glyph"
	"github.com/gogpu/textatlas/render"
)

// MaxGlyphSize is the largest final pixel size of the first glyph an
// atlas accepts.
const MaxGlyphSize = 256

// Locator is where a glyph lives in an atlas.
type Locator struct {
	// PageIndex is the index of the page texture.
	PageIndex int

	// Rect is the glyph cell in final pixel coordinates of the page.
	Rect glyph.Rect
}

// PageInfo describes one atlas page.
type PageInfo struct {
	Width, Height int

	// Runs is the number of style runs drawn into the page.
	Runs int

	// Glyphs is the number of glyphs on the page.
	Glyphs int
}

// Atlas is a set of textures holding rasterized glyphs and the lookup
// from glyph and style to texture region.
//
// An Atlas is immutable after Build and safe for concurrent queries.
type Atlas struct {
	label    string
	color    bool
	scale    float32
	pages    []PageInfo
	textures []render.Texture
	locators map[glyph.Key]Locator
	released atomic.Bool
}

// Build lays out glyphs into pages no larger than maxTextureSize final
// pixels and rasterizes every page once with ctx.
//
// scale maps glyph space to final pixels. Glyphs are packed in input
// order and nil handles are skipped. Build fails with ErrNoGlyphs for an
// empty glyph list, and with a *GlyphSizeError when the first glyph would
// be larger than MaxGlyphSize final pixels. When a surface or texture
// cannot be created, the textures made so far are released and no atlas
// is returned.
func Build(ctx render.Context, glyphs []*glyph.Handle, scale float32, maxTextureSize int, opts ...Option) (*Atlas, error) {
	glyphs = slices.DeleteFunc(slices.Clone(glyphs), func(h *glyph.Handle) bool { return h == nil })
	if len(glyphs) == 0 {
		return nil, ErrNoGlyphs
	}
	if ctx == nil {
		return nil, &ConfigError{Field: "ctx", Reason: "must not be nil"}
	}
	if !(scale > 0) || math.IsInf(float64(scale), 0) {
		return nil, &ConfigError{Field: "scale", Reason: "must be positive and finite"}
	}
	if maxTextureSize <= 0 {
		return nil, &ConfigError{Field: "maxTextureSize", Reason: "must be positive"}
	}
	if size := glyphs[0].Font.Size; size*scale > MaxGlyphSize {
		return nil, &GlyphSizeError{Size: size, Scale: scale}
	}
	o := buildOptions(opts)
	log := slogger().With("atlas", o.label)

	b := newBuilder(scale, maxTextureSize)
	for _, h := range glyphs {
		b.add(h)
	}
	pages, locators := b.finish()

	a := &Atlas{
		label:    o.label,
		color:    o.color,
		scale:    scale,
		pages:    make([]PageInfo, 0, len(pages)),
		textures: make([]render.Texture, 0, len(pages)),
		locators: locators,
	}
	for i := range pages {
		tex, err := drawPage(ctx, &pages[i], scale, !o.color)
		if err != nil {
			a.Release()
			return nil, fmt.Errorf("atlas: page %d: %w", i, err)
		}
		pg := &pages[i]
		a.pages = append(a.pages, PageInfo{Width: pg.width, Height: pg.height, Runs: len(pg.runs), Glyphs: pg.glyphs})
		a.textures = append(a.textures, tex)
		log.Debug("atlas: page built",
			"page", i,
			"width", pg.width, "height", pg.height,
			"runs", len(pg.runs), "glyphs", pg.glyphs)
	}

	log.Debug("atlas: built",
		"pages", len(a.pages),
		"glyphs", len(locators),
		"scale", scale,
		"memory", a.MemoryUsage())
	return a, nil
}

// drawPage rasterizes one page and captures its texture.
func drawPage(ctx render.Context, pg *page, scale float32, alphaOnly bool) (render.Texture, error) {
	surface, err := ctx.NewSurface(pg.width, pg.height, alphaOnly)
	if err != nil {
		return nil, err
	}
	canvas := surface.Canvas()
	total := canvas.Matrix()
	s := float64(scale)
	for _, r := range pg.runs {
		canvas.SetMatrix(total)
		canvas.Concat(render.Scale(s, s))
		canvas.DrawGlyphs(r.ids, r.positions, r.font, r.paint)
	}
	canvas.SetMatrix(total)
	return surface.Texture()
}

// Locator returns where the glyph of h is stored for style.
func (a *Atlas) Locator(h *glyph.Handle, style glyph.TextStyle) (Locator, bool) {
	if h == nil {
		return Locator{}, false
	}
	loc, ok := a.locators[glyph.AtlasKey(h, style)]
	return loc, ok
}

// Len returns the number of glyphs in the atlas.
func (a *Atlas) Len() int {
	return len(a.locators)
}

// PageCount returns the number of pages.
func (a *Atlas) PageCount() int {
	return len(a.pages)
}

// Page returns the description of page i.
func (a *Atlas) Page(i int) (PageInfo, bool) {
	if i < 0 || i >= len(a.pages) {
		return PageInfo{}, false
	}
	return a.pages[i], true
}

// Texture returns the texture of page i, or nil when out of range.
func (a *Atlas) Texture(i int) render.Texture {
	if i < 0 || i >= len(a.textures) {
		return nil
	}
	return a.textures[i]
}

// MemoryUsage returns the sum of the page texture footprints in bytes.
func (a *Atlas) MemoryUsage() int64 {
	var total int64
	for _, t := range a.textures {
		total += t.MemoryUsage()
	}
	return total
}

// Scale returns the scale the atlas was built at.
func (a *Atlas) Scale() float32 {
	return a.scale
}

// IsColor reports whether the pages are color textures.
func (a *Atlas) IsColor() bool {
	return a.color
}

// Label returns the atlas name used in logs.
func (a *Atlas) Label() string {
	return a.label
}

// Release releases every page texture. Locators stay valid but the
// textures must not be sampled afterwards. Release is idempotent.
func (a *Atlas) Release() {
	if !a.released.CompareAndSwap(false, true) {
		return
	}
	for _, t := range a.textures {
		t.Release()
	}
}
