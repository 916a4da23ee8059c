package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/textatlas/glyph"
	"github.com/gogpu/textatlas/render"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    glyph.TextStyle
		wantErr bool
	}{
		{"fill", glyph.StyleFill, false},
		{"stroke", glyph.StyleStroke, false},
		{"strokefill", glyph.StyleStrokeAndFill, false},
		{"outline", 0, true},
	}
	for _, tt := range tests {
		got, err := parseStyle(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseStyle(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestWritePage(t *testing.T) {
	ctx := render.NewSoftwareContext()
	for _, alphaOnly := range []bool{true, false} {
		s, err := ctx.NewSurface(6, 4, alphaOnly)
		if err != nil {
			t.Fatalf("NewSurface: %v", err)
		}
		tex, err := s.Texture()
		if err != nil {
			t.Fatalf("Texture: %v", err)
		}
		name := filepath.Join(t.TempDir(), "page.png")
		if err := writePage(name, tex); err != nil {
			t.Fatalf("writePage(alphaOnly=%v): %v", alphaOnly, err)
		}

		f, err := os.Open(name)
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("png.Decode: %v", err)
		}
		if img.Bounds() != image.Rect(0, 0, 6, 4) {
			t.Errorf("decoded bounds = %v", img.Bounds())
		}

		tex.Release()
		if err := writePage(name, tex); err == nil {
			t.Error("writePage of a released texture should fail")
		}
	}
}

func TestWriteShadow(t *testing.T) {
	s, err := render.NewSoftwareContext().NewSurface(8, 8, true)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	tex, err := s.Texture()
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	shadow := render.DropShadow{Color: render.Black, Opacity: 1, Distance: 2, Angle: 90, Size: 1, Spread: 0.5}
	name := filepath.Join(t.TempDir(), "page-shadow.png")
	if err := writeShadow(name, shadow, tex, 1); err != nil {
		t.Fatalf("writeShadow: %v", err)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(f)
	_ = f.Close()
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	want := shadow.Bounds(8, 8, 1)
	if img.Bounds().Dx() != want.Dx() || img.Bounds().Dy() != want.Dy() {
		t.Errorf("decoded size = %v, want %v", img.Bounds().Size(), want.Size())
	}

	tex.Release()
	if err := writeShadow(name, shadow, tex, 1); err == nil {
		t.Error("writeShadow of a released texture should fail")
	}
}

func TestLoadFont(t *testing.T) {
	f, err := loadFont("", 12)
	if err != nil {
		t.Fatalf("loadFont: %v", err)
	}
	if f.Size != 12 || f.Typeface == nil {
		t.Errorf("loadFont = %+v", f)
	}
	if _, err := loadFont(filepath.Join(t.TempDir(), "missing.ttf"), 12); err == nil {
		t.Error("missing font file should fail")
	}
}
