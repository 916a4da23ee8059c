// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/textatlas/internal/filter"
)

// ErrNoPixels is returned when a texture has no CPU pixels to read back.
var ErrNoPixels = errors.New("render: texture has no CPU pixels")

// ShadowMode is the rendering path a drop shadow takes for its spread.
type ShadowMode = filter.Mode

// Drop shadow modes.
const (
	ShadowBlur       = filter.ModeBlur
	ShadowSpreadBlur = filter.ModeSpreadBlur
	ShadowSolid      = filter.ModeSolid
)

// DropShadow is the drop shadow layer style: the silhouette of rendered
// content, spread into a solid stroke, blurred, cast along Angle by
// Distance and painted in Color at Opacity.
//
// Spread selects the mode: 0 blurs the silhouette, 1 draws it solid
// without blur, values in between spread then blur.
type DropShadow struct {
	Color Color

	// Opacity in [0, 1]; it multiplies Color.A.
	Opacity float32

	// Angle is the light angle in degrees; 90 casts the shadow downwards.
	Angle float32

	// Distance is how far the shadow is cast, in pixels.
	Distance float32

	// Size is the extent of the shadow edge, in pixels.
	Size float32

	// Spread is the share of Size drawn solid, in [0, 1].
	Spread float32
}

func (d DropShadow) toFilter() filter.DropShadow {
	return filter.DropShadow{
		Color:    colorNRGBA(d.Color),
		Opacity:  float64(d.Opacity),
		Angle:    float64(d.Angle),
		Distance: float64(d.Distance),
		Size:     float64(d.Size),
		Spread:   float64(d.Spread),
	}
}

// Mode returns the rendering path the shadow takes at scale.
func (d DropShadow) Mode(scale float32) ShadowMode {
	return d.toFilter().Params(float64(scale)).Mode
}

// Bounds returns the rectangle the shadow of a w x h texture covers at
// scale, in texture pixels. It extends past the texture on every side
// the shadow spreads, blurs or is cast to.
func (d DropShadow) Bounds(w, h int, scale float32) image.Rectangle {
	return d.toFilter().ExpandBounds(image.Rect(0, 0, w, h), float64(scale))
}

// Render draws the shadow of tex's content, without the content itself.
// Coverage textures cast the shadow of their coverage, color textures of
// their alpha. The result is premultiplied RGBA with Bounds(w, h, scale).
func (d DropShadow) Render(tex Texture, scale float32) (*image.RGBA, error) {
	src, err := textureImage(tex)
	if err != nil {
		return nil, err
	}
	return d.toFilter().Apply(src, float64(scale)), nil
}

// textureImage wraps the CPU pixels of tex without copying.
func textureImage(tex Texture) (image.Image, error) {
	if tex == nil {
		return nil, ErrNoPixels
	}
	pix := tex.Pixels()
	if pix == nil {
		return nil, ErrNoPixels
	}
	r := image.Rect(0, 0, tex.Width(), tex.Height())
	switch tex.Format() {
	case gputypes.TextureFormatR8Unorm:
		return &image.Alpha{Pix: pix, Stride: tex.Width(), Rect: r}, nil
	case gputypes.TextureFormatRGBA8Unorm:
		return &image.RGBA{Pix: pix, Stride: 4 * tex.Width(), Rect: r}, nil
	}
	return nil, fmt.Errorf("render: no image view for %v texture", tex.Format())
}

func colorNRGBA(c Color) color.NRGBA {
	return color.NRGBA{R: to8(clamp01(c.R)), G: to8(clamp01(c.G)), B: to8(clamp01(c.B)), A: to8(clamp01(c.A))}
}
