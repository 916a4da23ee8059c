package atlas

import (
	"math"

	"github.com/gogpu/textatlas/glyph"
	"github.com/gogpu/textatlas/internal/pack"
	"github.com/gogpu/textatlas/render"
)

// run is a batch of glyphs sharing one font and paint on a page.
type run struct {
	font      glyph.Font
	paint     render.Paint
	ids       []glyph.GlyphID
	positions []render.Point
}

// page is the layout of one atlas texture in final pixels.
type page struct {
	width, height int
	runs          []run
	glyphs        int
}

// builder lays out glyphs into pages. Pages are appended once closed
// and never touched again.
type builder struct {
	scale       float32
	maxPageSize int
	packer      *pack.Packer

	// current page
	runIndex map[glyph.Key]int
	runs     []run
	glyphs   int

	pages    []page
	locators map[glyph.Key]Locator
}

func newBuilder(scale float32, maxTextureSize int) *builder {
	return &builder{
		scale:       scale,
		maxPageSize: int(math.Floor(float64(maxTextureSize) / float64(scale))),
		packer:      pack.New(scale),
		runIndex:    make(map[glyph.Key]int),
		locators:    make(map[glyph.Key]Locator),
	}
}

// strokeOutset returns the extra space a glyph needs on every side for
// its stroke.
func strokeOutset(h *glyph.Handle) int {
	if !h.Style.HasStroke() {
		return 0
	}
	return int(math.Ceil(float64(h.StrokeWidth)))
}

// runPaint returns the paint a run of glyphs in h's style is drawn with.
func runPaint(h *glyph.Handle) render.Paint {
	p := render.NewPaint()
	switch h.Style {
	case glyph.StyleFill:
		p.Fill, p.Stroke = true, false
	case glyph.StyleStroke:
		p.Fill, p.Stroke = false, true
	case glyph.StyleStrokeAndFill:
		p.Fill, p.Stroke = true, true
	}
	if p.Stroke {
		p.StrokeWidth = h.StrokeWidth
	}
	return p
}

// add packs one glyph into the current page, closing the page first when
// the glyph does not fit.
func (b *builder) add(h *glyph.Handle) {
	key := glyph.AtlasKey(h, h.Style)
	if _, ok := b.locators[key]; ok {
		return
	}

	s := strokeOutset(h)
	w := int(h.Bounds.W) + 2*s
	hh := int(h.Bounds.H) + 2*s
	originX := h.Bounds.X - float32(s)
	originY := h.Bounds.Y - float32(s)

	prevW, prevH := b.packer.Width(), b.packer.Height()
	pt := b.packer.Add(w, hh)
	if b.overflows() && b.glyphs > 0 {
		b.closePage(prevW, prevH)
		pt = b.packer.Add(w, hh)
	}
	if b.overflows() {
		slogger().Warn("atlas: glyph exceeds page size",
			"glyph", h.String(),
			"width", w, "height", hh,
			"maxPageSize", b.maxPageSize)
	}

	styleKey := glyph.StyleKey(h)
	idx, ok := b.runIndex[styleKey]
	if !ok {
		idx = len(b.runs)
		b.runIndex[styleKey] = idx
		b.runs = append(b.runs, run{font: h.Font, paint: runPaint(h)})
	}
	r := &b.runs[idx]
	r.ids = append(r.ids, h.GlyphID)
	r.positions = append(r.positions, render.Point{
		X: float32(pt.X) - originX,
		Y: float32(pt.Y) - originY,
	})
	b.glyphs++

	b.locators[key] = Locator{
		PageIndex: len(b.pages),
		Rect:      glyph.XYWH(float32(pt.X), float32(pt.Y), float32(w), float32(hh)).Scale(b.scale),
	}
}

func (b *builder) overflows() bool {
	return b.packer.Width() > b.maxPageSize || b.packer.Height() > b.maxPageSize
}

// closePage freezes the current page with the given packer extent and
// starts an empty one.
func (b *builder) closePage(width, height int) {
	b.pages = append(b.pages, page{
		width:  int(math.Ceil(float64(width) * float64(b.scale))),
		height: int(math.Ceil(float64(height) * float64(b.scale))),
		runs:   b.runs,
		glyphs: b.glyphs,
	})
	b.runs = nil
	b.glyphs = 0
	clear(b.runIndex)
	b.packer.Reset()
}

// finish closes the page in progress and returns the layout.
func (b *builder) finish() ([]page, map[glyph.Key]Locator) {
	b.closePage(b.packer.Width(), b.packer.Height())
	return b.pages, b.locators
}
