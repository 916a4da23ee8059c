package textatlas

import (
	"fmt"

	"github.com/gogpu/textatlas/atlas"
	"github.com/gogpu/textatlas/glyph"
	"github.com/gogpu/textatlas/render"
)

// GlyphSource supplies the glyphs of a piece of text for one atlas.
type GlyphSource interface {
	// ID identifies the source for caching.
	ID() uint64

	// MaskGlyphs returns glyphs of non-color typefaces in packing order.
	MaskGlyphs() []*glyph.Handle

	// ColorGlyphs returns glyphs of color typefaces in packing order.
	ColorGlyphs() []*glyph.Handle

	// MaxScale is the largest scale the text is drawn at, relative to
	// the font size.
	MaxScale() float32
}

// ContextProvider gives access to the render context atlases are drawn
// with. cache.RenderCache implements it.
type ContextProvider interface {
	Context() render.Context
}

// Provider returns a ContextProvider for a fixed context.
func Provider(ctx render.Context) ContextProvider {
	return staticProvider{ctx}
}

type staticProvider struct{ ctx render.Context }

func (p staticProvider) Context() render.Context { return p.ctx }

// TextAtlas holds the mask atlas and the optional color atlas of a glyph
// source and locates glyphs across both with one page index space: mask
// pages come first, color pages follow.
//
// A TextAtlas is immutable after Build and safe for concurrent queries.
type TextAtlas struct {
	sourceID    uint64
	scale       float32
	deviceScale float32
	mask        *atlas.Atlas
	color       *atlas.Atlas
}

// Build rasterizes the glyphs of source at scale times the source's
// MaxScale.
//
// The mask atlas is required: when it cannot be built, Build returns the
// error. The color atlas is optional and its absence is only logged.
func Build(source GlyphSource, provider ContextProvider, scale float32, opts ...Option) (*TextAtlas, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	var ctx render.Context
	if provider != nil {
		ctx = provider.Context()
	}
	if ctx == nil {
		return nil, ErrNilContext
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	deviceScale := scale * source.MaxScale()
	maxSize := o.pageLimit(ctx.Capabilities().MaxTextureSize)

	mask, err := atlas.Build(ctx, source.MaskGlyphs(), deviceScale, maxSize, atlas.WithLabel("mask"))
	if err != nil {
		return nil, fmt.Errorf("textatlas: mask atlas for source %d: %w", source.ID(), err)
	}
	color, err := atlas.Build(ctx, source.ColorGlyphs(), deviceScale, maxSize, atlas.WithColor(true))
	if err != nil {
		Logger().Debug("textatlas: no color atlas",
			"source", source.ID(),
			"err", err)
		color = nil
	}

	t := &TextAtlas{
		sourceID:    source.ID(),
		scale:       scale,
		deviceScale: deviceScale,
		mask:        mask,
		color:       color,
	}
	Logger().Debug("textatlas: built",
		"source", t.sourceID,
		"scale", scale,
		"deviceScale", deviceScale,
		"pages", t.PageCount(),
		"memory", t.MemoryUsage())
	return t, nil
}

// Locator returns where the glyph of h is stored for style. Glyphs of
// color typefaces are looked up in the color atlas only, with page indices
// following the mask pages.
func (t *TextAtlas) Locator(h *glyph.Handle, style glyph.TextStyle) (atlas.Locator, bool) {
	if h == nil {
		return atlas.Locator{}, false
	}
	if h.Font.HasColor() {
		if t.color == nil {
			return atlas.Locator{}, false
		}
		loc, ok := t.color.Locator(h, style)
		if ok {
			loc.PageIndex += t.mask.PageCount()
		}
		return loc, ok
	}
	return t.mask.Locator(h, style)
}

// Texture returns the page texture for a unified page index, or nil when
// the index is out of range.
func (t *TextAtlas) Texture(pageIndex int) render.Texture {
	if pageIndex < 0 {
		return nil
	}
	n := t.mask.PageCount()
	if pageIndex < n {
		return t.mask.Texture(pageIndex)
	}
	if t.color == nil {
		return nil
	}
	return t.color.Texture(pageIndex - n)
}

// PageCount returns the number of pages of both atlases.
func (t *TextAtlas) PageCount() int {
	n := t.mask.PageCount()
	if t.color != nil {
		n += t.color.PageCount()
	}
	return n
}

// MemoryUsage returns the texture footprint of both atlases in bytes.
func (t *TextAtlas) MemoryUsage() int64 {
	m := t.mask.MemoryUsage()
	if t.color != nil {
		m += t.color.MemoryUsage()
	}
	return m
}

// Scale returns the scale passed to Build.
func (t *TextAtlas) Scale() float32 {
	return t.scale
}

// DeviceScale returns the scale glyphs were rasterized at.
func (t *TextAtlas) DeviceScale() float32 {
	return t.deviceScale
}

// SourceID returns the ID of the glyph source.
func (t *TextAtlas) SourceID() uint64 {
	return t.sourceID
}

// MaskAtlas returns the mask atlas.
func (t *TextAtlas) MaskAtlas() *atlas.Atlas {
	return t.mask
}

// ColorAtlas returns the color atlas, or nil when the source has no color
// glyphs.
func (t *TextAtlas) ColorAtlas() *atlas.Atlas {
	return t.color
}

// Release releases the textures of both atlases. It is safe to call more
// than once.
func (t *TextAtlas) Release() {
	t.mask.Release()
	if t.color != nil {
		t.color.Release()
	}
}
