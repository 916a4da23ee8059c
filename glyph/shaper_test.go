package glyph

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestShaperGlyphIDs(t *testing.T) {
	tf := mustTypeface(t, goregular.TTF)
	font := Font{Typeface: tf, Size: 24}
	s := NewShaper()

	ids, err := s.GlyphIDs("Hey", font)
	if err != nil {
		t.Fatalf("GlyphIDs: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("got %d glyphs, want 3", len(ids))
	}
	if ids[0] != tf.GlyphIndex('H') {
		t.Errorf("first glyph = %d, want %d", ids[0], tf.GlyphIndex('H'))
	}

	empty, err := s.GlyphIDs("", font)
	if err != nil || len(empty) != 0 {
		t.Errorf("empty text: ids=%v err=%v", empty, err)
	}
}

func TestShaperHandlesDeduplicates(t *testing.T) {
	tf := mustTypeface(t, goregular.TTF)
	font := Font{Typeface: tf, Size: 24}
	s := NewShaper()

	handles, err := s.Handles("aa b a", font, StyleFill, 0)
	if err != nil {
		t.Fatalf("Handles: %v", err)
	}
	// 'a' and 'b'; the space has no ink.
	if len(handles) != 2 {
		t.Fatalf("got %d handles, want 2", len(handles))
	}
	if handles[0].GlyphID != tf.GlyphIndex('a') || handles[1].GlyphID != tf.GlyphIndex('b') {
		t.Errorf("unexpected order: %v, %v", handles[0], handles[1])
	}
}
