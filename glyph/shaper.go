package glyph

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Shaper turns strings into glyph IDs using HarfBuzz shaping from
// go-text/typesetting, so ligatures and contextual forms end up in the
// atlas as the glyphs that will actually be drawn.
//
// Shaper is safe for concurrent use. Parsed go-text fonts are cached per
// typeface; font.Face and HarfbuzzShaper are not concurrent-safe and are
// created or pooled per call.
type Shaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[uint32]*font.Font
}

// NewShaper creates a new Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[uint32]*font.Font),
	}
}

// GlyphIDs shapes s with f and returns the glyph IDs in visual order.
// The input is normalized to NFC first.
func (s *Shaper) GlyphIDs(text string, f Font) ([]GlyphID, error) {
	if text == "" {
		return nil, nil
	}
	if f.Typeface == nil {
		return nil, ErrNilTypeface
	}
	goTextFont, err := s.getOrCreateFont(f.Typeface)
	if err != nil {
		return nil, err
	}
	runes := []rune(norm.NFC.String(text))

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(goTextFont),
		Size:      fixed.Int26_6(f.Size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	ids := make([]GlyphID, len(output.Glyphs))
	for i, g := range output.Glyphs {
		ids[i] = GlyphID(uint16(g.GlyphID)) //nolint:gosec // glyph indices are 16-bit in OpenType
	}
	return ids, nil
}

// Handles shapes text and returns one handle per distinct glyph, in first
// occurrence order.
func (s *Shaper) Handles(text string, f Font, style TextStyle, strokeWidth float32) ([]*Handle, error) {
	ids, err := s.GlyphIDs(text, f)
	if err != nil {
		return nil, err
	}
	seen := make(map[GlyphID]struct{}, len(ids))
	handles := make([]*Handle, 0, len(ids))
	for _, gid := range ids {
		if _, ok := seen[gid]; ok {
			continue
		}
		seen[gid] = struct{}{}
		h, err := NewHandle(f, gid, style, strokeWidth)
		if err != nil {
			return nil, err
		}
		if h.Bounds.Empty() {
			// Whitespace has nothing to pack.
			continue
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// getOrCreateFont returns the cached go-text font for tf, parsing it on
// first use.
func (s *Shaper) getOrCreateFont(tf *Typeface) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[tf.ID()]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[tf.ID()]; ok {
		return f, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(tf.Data()))
	if err != nil {
		return nil, &FontError{Op: "shape", Err: err}
	}
	s.fontCache[tf.ID()] = face.Font
	return face.Font, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
