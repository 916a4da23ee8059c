package filter

import (
	"image"
	"image/color"
	"testing"
)

func TestSpread(t *testing.T) {
	got := Spread(dot(15), 3)

	tests := []struct {
		name string
		x, y int
		want func(uint8) bool
	}{
		{"center", 7, 7, func(a uint8) bool { return a == 0xFF }},
		{"inside radius", 9, 7, func(a uint8) bool { return a == 0xFF }},
		{"on radius", 10, 7, func(a uint8) bool { return a >= 0x7F }},
		{"diagonal inside", 8, 8, func(a uint8) bool { return a == 0xFF }},
		{"beyond radius", 12, 7, func(a uint8) bool { return a == 0 }},
		{"corner", 10, 10, func(a uint8) bool { return a == 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if a := got.AlphaAt(tt.x, tt.y).A; !tt.want(a) {
				t.Errorf("alpha at (%d,%d) = %d", tt.x, tt.y, a)
			}
		})
	}
}

func TestSpreadZeroCopies(t *testing.T) {
	src := dot(5)
	got := Spread(src, 0)
	if got == src {
		t.Fatal("Spread should not return its input")
	}
	for i := range src.Pix {
		if got.Pix[i] != src.Pix[i] {
			t.Fatalf("zero spread changed pixel %d", i)
		}
	}
}

func TestSpreadKeepsOrigin(t *testing.T) {
	src := image.NewAlpha(image.Rect(-4, -4, 4, 4))
	src.SetAlpha(0, 0, color.Alpha{A: 0xFF})
	got := Spread(src, 1.5)
	if got.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), src.Bounds())
	}
	if got.AlphaAt(1, 0).A != 0xFF || got.AlphaAt(3, 0).A != 0 {
		t.Errorf("spread around the origin = %d/%d, want 255/0", got.AlphaAt(1, 0).A, got.AlphaAt(3, 0).A)
	}
}
