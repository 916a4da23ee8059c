// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestColorRGBA8(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.RGBA
	}{
		{"black", Black, color.RGBA{0, 0, 0, 255}},
		{"white", White, color.RGBA{255, 255, 255, 255}},
		{"transparent", Transparent, color.RGBA{}},
		{"half red", Color{R: 1, A: 0.5}, color.RGBA{128, 0, 0, 128}},
		{"clamped", Color{R: 2, G: -1, B: 0.5, A: 1}, color.RGBA{255, 0, 128, 255}},
		{"nan", Color{R: float32(math.NaN()), A: 1}, color.RGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.RGBA8(); got != tt.want {
				t.Errorf("RGBA8() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewPaint(t *testing.T) {
	p := NewPaint()
	if !p.Fill || p.Stroke {
		t.Errorf("NewPaint() Fill=%v Stroke=%v, want fill only", p.Fill, p.Stroke)
	}
	if p.Alpha() != 1 {
		t.Errorf("NewPaint().Alpha() = %v, want 1", p.Alpha())
	}
}

func TestPaintColorAtModulatesShader(t *testing.T) {
	p := Paint{Color: Color{A: 0.5}, Shader: NewColorShader(Color{R: 1, A: 1})}
	got := p.colorAt(0, 0)
	if got.R != 1 || got.A != 0.5 {
		t.Errorf("colorAt = %+v, want red at half alpha", got)
	}
}

func TestGradientErrors(t *testing.T) {
	colors := []Color{Black, White}

	if _, err := NewLinearGradient(Point{X: 1, Y: 1}, Point{X: 1, Y: 1}, colors, nil); !errors.Is(err, ErrInvalidGradient) {
		t.Errorf("degenerate linear gradient error = %v, want ErrInvalidGradient", err)
	}
	if _, err := NewLinearGradient(Point{}, Point{X: 1}, nil, nil); !errors.Is(err, ErrInvalidGradient) {
		t.Errorf("colorless linear gradient error = %v, want ErrInvalidGradient", err)
	}
	if _, err := NewLinearGradient(Point{}, Point{X: 1}, colors, []float32{0}); !errors.Is(err, ErrInvalidGradient) {
		t.Errorf("mismatched positions error = %v, want ErrInvalidGradient", err)
	}
	if _, err := NewRadialGradient(Point{}, 0, colors, nil); !errors.Is(err, ErrInvalidGradient) {
		t.Errorf("zero radius error = %v, want ErrInvalidGradient", err)
	}
}

func TestLinearGradientColorAt(t *testing.T) {
	g, err := NewLinearGradient(Point{X: 0}, Point{X: 10}, []Color{Black, White}, nil)
	if err != nil {
		t.Fatalf("NewLinearGradient: %v", err)
	}
	if !g.IsOpaque() {
		t.Error("gradient of opaque colors should be opaque")
	}

	tests := []struct {
		x    float64
		want float32
	}{
		{-5, 0},
		{0, 0},
		{5, 0.5},
		{10, 1},
		{20, 1},
	}
	for _, tt := range tests {
		if got := g.ColorAt(tt.x, 3).R; math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("ColorAt(%v).R = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestRadialGradient(t *testing.T) {
	g, err := NewRadialGradient(Point{X: 5, Y: 5}, 10, []Color{White, Transparent}, []float32{0, 1})
	if err != nil {
		t.Fatalf("NewRadialGradient: %v", err)
	}
	if g.IsOpaque() {
		t.Error("gradient with a transparent stop should not be opaque")
	}
	if got := g.ColorAt(5, 5); got != White {
		t.Errorf("center color = %+v, want white", got)
	}
	if got := g.ColorAt(5, 15).A; got != 0 {
		t.Errorf("edge alpha = %v, want 0", got)
	}
}
