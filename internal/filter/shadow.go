package filter

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// fullSpread is the spread at which the shadow becomes a solid stroke.
const fullSpread = 1.0

// partialSpreadFactor scales spreads below fullSpread.
const partialSpreadFactor = 0.8

// Mode is the rendering path a drop shadow takes for its spread.
type Mode int

const (
	// ModeBlur blurs the content silhouette; spread is zero.
	ModeBlur Mode = iota

	// ModeSpreadBlur spreads the silhouette into a solid stroke, then
	// blurs it.
	ModeSpreadBlur

	// ModeSolid draws the spread silhouette without blur; spread is one.
	ModeSolid
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeBlur:
		return "blur"
	case ModeSpreadBlur:
		return "spread+blur"
	case ModeSolid:
		return "solid"
	}
	return "unknown"
}

// DropShadow is a drop shadow layer style.
type DropShadow struct {
	// Color is the shadow color. Its alpha multiplies Opacity.
	Color color.NRGBA

	// Opacity is the shadow opacity in [0, 1].
	Opacity float64

	// Angle is the light angle in degrees. The shadow falls on the
	// opposite side: 90 lights from above and casts downwards.
	Angle float64

	// Distance is how far the shadow is cast, in pixels.
	Distance float64

	// Size is the extent of the shadow edge, in pixels.
	Size float64

	// Spread is the share of Size drawn solid, in [0, 1].
	Spread float64
}

// Params are the raster parameters of a drop shadow at a given scale.
type Params struct {
	Mode Mode

	// SpreadSize is the dilation radius of the solid stroke.
	SpreadSize float64

	// BlurSize is the blur extent. The Gaussian standard deviation is a
	// third of it, so the falloff ends BlurSize pixels out.
	BlurSize float64

	// OffsetX and OffsetY move the shadow away from the content.
	OffsetX, OffsetY float64
}

// Params derives the raster parameters at scale.
func (s DropShadow) Params(scale float64) Params {
	spread := math.Max(0, math.Min(s.Spread, fullSpread))
	var p Params
	switch {
	case spread == 0:
		p.Mode = ModeBlur
	case spread == fullSpread:
		p.Mode = ModeSolid
	default:
		p.Mode = ModeSpreadBlur
		spread *= partialSpreadFactor
	}
	size := math.Max(0, s.Size)
	p.SpreadSize = size * spread * scale
	p.BlurSize = size * (1 - spread) * 2 * scale
	if s.Distance > 0 {
		rad := (s.Angle - 180) * math.Pi / 180
		p.OffsetX = math.Cos(rad) * s.Distance * scale
		p.OffsetY = -math.Sin(rad) * s.Distance * scale
	}
	return p
}

// sigma returns the Gaussian standard deviation of the blur.
func (p Params) sigma() float64 {
	return p.BlurSize / 3
}

// Offset returns the shadow offset rounded to whole pixels.
func (p Params) Offset() image.Point {
	return image.Pt(int(math.Round(p.OffsetX)), int(math.Round(p.OffsetY)))
}

// Pad returns how far spread and blur grow the content on every side.
func (p Params) Pad() int {
	return int(math.Ceil(p.SpreadSize)) + ExpandBlur(p.sigma())
}

// ExpandBounds returns the bounds of the shadow of content in r.
func (s DropShadow) ExpandBounds(r image.Rectangle, scale float64) image.Rectangle {
	p := s.Params(scale)
	return r.Inset(-p.Pad()).Add(p.Offset())
}

// Apply renders the shadow of src alone, without src over it. The result
// is premultiplied and its bounds are ExpandBounds(src.Bounds(), scale),
// in src's coordinate space.
func (s DropShadow) Apply(src image.Image, scale float64) *image.RGBA {
	p := s.Params(scale)
	sb := src.Bounds()
	padded := sb.Inset(-p.Pad())

	// Step 1: silhouette.
	alpha := image.NewAlpha(padded)
	draw.Draw(alpha, sb, src, sb.Min, draw.Src)

	// Step 2: solid spread.
	if p.Mode != ModeBlur && p.SpreadSize > 0 {
		alpha = Spread(alpha, p.SpreadSize)
	}

	// Step 3: blur.
	if p.Mode != ModeSolid && p.BlurSize > 0 {
		alpha = BlurAlpha(alpha, p.sigma(), p.sigma())
	}

	// Step 4: colorize and offset.
	dr := padded.Add(p.Offset())
	dst := image.NewRGBA(dr)
	a := float64(s.Color.A) / 255 * math.Max(0, math.Min(s.Opacity, 1))
	fill := image.NewUniform(color.NRGBA{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: uint8(a*255 + 0.5)})
	draw.DrawMask(dst, dr, fill, image.Point{}, alpha, padded.Min, draw.Src)
	return dst
}
