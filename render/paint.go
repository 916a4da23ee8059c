// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image/color"
	"math"
	"sort"
)

// ErrInvalidGradient is returned when gradient parameters describe no gradient.
var ErrInvalidGradient = errors.New("render: invalid gradient")

// Color is a non-premultiplied RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	Black       = Color{R: 0, G: 0, B: 0, A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Transparent = Color{}
)

// IsOpaque reports whether the color has full alpha.
func (c Color) IsOpaque() bool {
	return c.A >= 1
}

// RGBA8 returns the premultiplied 8-bit color.
func (c Color) RGBA8() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: to8(clamp01(c.R) * a),
		G: to8(clamp01(c.G) * a),
		B: to8(clamp01(c.B) * a),
		A: to8(a),
	}
}

func (c Color) lerp(o Color, t float32) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

func clamp01(v float32) float32 {
	switch {
	case v < 0 || math.IsNaN(float64(v)):
		return 0
	case v > 1:
		return 1
	}
	return v
}

func to8(v float32) uint8 {
	return uint8(v*255 + 0.5)
}

// LineJoin specifies the shape of stroke joins.
type LineJoin int

const (
	// JoinMiter specifies a sharp (mitered) join.
	JoinMiter LineJoin = iota
	// JoinRound specifies a rounded join.
	JoinRound
	// JoinBevel specifies a beveled join.
	JoinBevel
)

// Paint holds the style a canvas draws with. Fill and Stroke are
// independent; a paint with both set fills then strokes.
type Paint struct {
	Fill   bool
	Stroke bool

	// StrokeWidth is the stroke width in local units.
	StrokeWidth float32
	Join        LineJoin
	MiterLimit  float32

	// Color is the paint color. With a Shader set, only its alpha is used
	// and it modulates the shader.
	Color  Color
	Shader Shader
}

// NewPaint returns an opaque black fill paint.
func NewPaint() Paint {
	return Paint{
		Fill:       true,
		Color:      Black,
		Join:       JoinMiter,
		MiterLimit: 4,
	}
}

// Alpha returns the paint alpha.
func (p Paint) Alpha() float32 {
	return p.Color.A
}

// colorAt returns the paint color at a point in local coordinates.
func (p Paint) colorAt(x, y float64) Color {
	if p.Shader == nil {
		return p.Color
	}
	c := p.Shader.ColorAt(x, y)
	c.A *= p.Color.A
	return c
}

// Shader computes a color for every point in local coordinates.
type Shader interface {
	ColorAt(x, y float64) Color

	// IsOpaque reports whether every color the shader produces is opaque.
	IsOpaque() bool
}

// ColorShader is a shader producing a single color.
type ColorShader struct {
	Color Color
}

// NewColorShader returns a shader producing c everywhere.
func NewColorShader(c Color) *ColorShader {
	return &ColorShader{Color: c}
}

// ColorAt implements Shader.
func (s *ColorShader) ColorAt(_, _ float64) Color {
	return s.Color
}

// IsOpaque implements Shader.
func (s *ColorShader) IsOpaque() bool {
	return s.Color.IsOpaque()
}

// ColorStop is a color at a position along a gradient.
type ColorStop struct {
	Offset float32
	Color  Color
}

// gradientStops pairs colors with positions. Missing positions are spread
// evenly over [0, 1].
func gradientStops(colors []Color, positions []float32) ([]ColorStop, error) {
	if len(colors) == 0 {
		return nil, ErrInvalidGradient
	}
	if len(positions) != 0 && len(positions) != len(colors) {
		return nil, ErrInvalidGradient
	}
	stops := make([]ColorStop, len(colors))
	for i, c := range colors {
		var off float32
		switch {
		case len(positions) != 0:
			off = clamp01(positions[i])
		case len(colors) > 1:
			off = float32(i) / float32(len(colors)-1)
		}
		stops[i] = ColorStop{Offset: off, Color: c}
	}
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset })
	return stops, nil
}

// stopsOpaque reports whether every stop color is opaque.
func stopsOpaque(stops []ColorStop) bool {
	for _, s := range stops {
		if !s.Color.IsOpaque() {
			return false
		}
	}
	return true
}

// colorAtOffset interpolates the stops at t, padding beyond both ends.
func colorAtOffset(stops []ColorStop, t float64) Color {
	t32 := clamp01(float32(t))
	idx := sort.Search(len(stops), func(i int) bool { return stops[i].Offset >= t32 })
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}
	s0, s1 := stops[idx-1], stops[idx]
	if s1.Offset == s0.Offset {
		return s1.Color
	}
	return s0.Color.lerp(s1.Color, (t32-s0.Offset)/(s1.Offset-s0.Offset))
}

// LinearGradient is a color transition along the line from Start to End.
type LinearGradient struct {
	Start, End Point
	Stops      []ColorStop
	opaque     bool
}

// NewLinearGradient creates a linear gradient. positions may be nil for
// evenly spaced colors. It fails when no colors are given, when positions
// and colors differ in length, or when start and end coincide.
func NewLinearGradient(start, end Point, colors []Color, positions []float32) (*LinearGradient, error) {
	if start == end {
		return nil, ErrInvalidGradient
	}
	stops, err := gradientStops(colors, positions)
	if err != nil {
		return nil, err
	}
	return &LinearGradient{Start: start, End: end, Stops: stops, opaque: stopsOpaque(stops)}, nil
}

// ColorAt implements Shader.
func (g *LinearGradient) ColorAt(x, y float64) Color {
	dx := float64(g.End.X - g.Start.X)
	dy := float64(g.End.Y - g.Start.Y)
	px := x - float64(g.Start.X)
	py := y - float64(g.Start.Y)
	return colorAtOffset(g.Stops, (px*dx+py*dy)/(dx*dx+dy*dy))
}

// IsOpaque implements Shader.
func (g *LinearGradient) IsOpaque() bool {
	return g.opaque
}

// RadialGradient is a color transition from Center outwards to Radius.
type RadialGradient struct {
	Center Point
	Radius float32
	Stops  []ColorStop
	opaque bool
}

// NewRadialGradient creates a radial gradient. It fails when no colors are
// given, when positions and colors differ in length, or when radius is not
// positive.
func NewRadialGradient(center Point, radius float32, colors []Color, positions []float32) (*RadialGradient, error) {
	if !(radius > 0) {
		return nil, ErrInvalidGradient
	}
	stops, err := gradientStops(colors, positions)
	if err != nil {
		return nil, err
	}
	return &RadialGradient{Center: center, Radius: radius, Stops: stops, opaque: stopsOpaque(stops)}, nil
}

// ColorAt implements Shader.
func (g *RadialGradient) ColorAt(x, y float64) Color {
	d := math.Hypot(x-float64(g.Center.X), y-float64(g.Center.Y))
	return colorAtOffset(g.Stops, d/float64(g.Radius))
}

// IsOpaque implements Shader.
func (g *RadialGradient) IsOpaque() bool {
	return g.opaque
}
