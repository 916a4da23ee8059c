// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/draw"
	"sync/atomic"

	"github.com/gogpu/gputypes"
)

// uploadFunc copies RGBA8 premultiplied pixels into a device texture.
type uploadFunc func(width, height int, data []byte) (any, error)

// RasterContext is a Context that rasterizes on the CPU. Textures of a
// context created with NewDeviceContext are also uploaded to the device.
//
// A RasterContext is safe for concurrent use; the surfaces it creates
// are not.
type RasterContext struct {
	caps   DeviceCapabilities
	handle DeviceHandle
	upload uploadFunc
}

// ContextOption configures a software context.
type ContextOption func(*contextOptions)

type contextOptions struct {
	caps DeviceCapabilities
}

func defaultContextOptions() contextOptions {
	return contextOptions{caps: DefaultCapabilities()}
}

// WithMaxTextureSize overrides the maximum texture dimension.
// Non-positive values are ignored.
func WithMaxTextureSize(n int) ContextOption {
	return func(o *contextOptions) {
		if n > 0 {
			o.caps.MaxTextureSize = n
		}
	}
}

// WithCapabilities replaces the context capabilities.
func WithCapabilities(caps DeviceCapabilities) ContextOption {
	return func(o *contextOptions) {
		o.caps = caps
	}
}

// NewSoftwareContext creates a context whose textures live in CPU memory.
func NewSoftwareContext(opts ...ContextOption) *RasterContext {
	o := defaultContextOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.caps.MaxTextureSize <= 0 {
		o.caps.MaxTextureSize = DefaultMaxTextureSize
	}
	return &RasterContext{caps: o.caps, handle: NullDeviceHandle{}}
}

// Capabilities returns the context limits.
func (c *RasterContext) Capabilities() DeviceCapabilities {
	return c.caps
}

// DeviceHandle returns the device the context uploads to.
// A software context returns NullDeviceHandle.
func (c *RasterContext) DeviceHandle() DeviceHandle {
	return c.handle
}

// NewSurface creates a cleared surface.
func (c *RasterContext) NewSurface(width, height int, alphaOnly bool) (Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, &SurfaceError{Width: width, Height: height, Err: ErrInvalidSurfaceSize}
	}
	if width > c.caps.MaxTextureSize || height > c.caps.MaxTextureSize {
		return nil, &SurfaceError{Width: width, Height: height, Max: c.caps.MaxTextureSize, Err: ErrSurfaceTooLarge}
	}

	s := &rasterSurface{ctx: c, width: width, height: height}
	bounds := image.Rect(0, 0, width, height)
	var img draw.Image
	if alphaOnly {
		s.alpha = image.NewAlpha(bounds)
		img = s.alpha
	} else {
		s.rgba = image.NewRGBA(bounds)
		img = s.rgba
	}
	s.canvas = newPixelCanvas(img, s.invalidate)
	return s, nil
}

// rasterSurface is a Surface backed by an *image.Alpha or *image.RGBA.
type rasterSurface struct {
	ctx           *RasterContext
	width, height int
	alpha         *image.Alpha
	rgba          *image.RGBA
	canvas        *pixelCanvas
	texture       Texture
}

func (s *rasterSurface) Width() int     { return s.width }
func (s *rasterSurface) Height() int    { return s.height }
func (s *rasterSurface) Canvas() Canvas { return s.canvas }

func (s *rasterSurface) invalidate() {
	s.texture = nil
}

func (s *rasterSurface) Texture() (Texture, error) {
	if s.texture != nil {
		return s.texture, nil
	}

	tex := &cpuTexture{width: s.width, height: s.height}
	if s.alpha != nil {
		tex.format = gputypes.TextureFormatR8Unorm
		tex.pixels = append([]byte(nil), s.alpha.Pix...)
	} else {
		tex.format = gputypes.TextureFormatRGBA8Unorm
		tex.pixels = append([]byte(nil), s.rgba.Pix...)
	}

	if s.ctx.upload != nil {
		data := tex.pixels
		if s.alpha != nil {
			data = expandAlpha(data)
		}
		handle, err := s.ctx.upload(s.width, s.height, data)
		if err != nil {
			return nil, fmt.Errorf("render: upload %dx%d texture: %w", s.width, s.height, err)
		}
		if pt, ok := handle.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		tex.handle = handle
	}

	s.texture = tex
	return tex, nil
}

// expandAlpha converts coverage to premultiplied white RGBA.
func expandAlpha(a []byte) []byte {
	out := make([]byte, len(a)*4)
	for i, v := range a {
		out[i*4+0] = v
		out[i*4+1] = v
		out[i*4+2] = v
		out[i*4+3] = v
	}
	return out
}

// bytesPerPixel returns the size of one texel of the formats textures use.
func bytesPerPixel(f gputypes.TextureFormat) int {
	switch f {
	case gputypes.TextureFormatR8Unorm:
		return 1
	case gputypes.TextureFormatRGBA8Unorm:
		return 4
	default:
		return 0
	}
}

// cpuTexture holds a copy of surface pixels and, when uploaded, the
// device texture created from them.
type cpuTexture struct {
	width, height int
	format        gputypes.TextureFormat
	pixels        []byte
	handle        any
	released      atomic.Bool
}

func (t *cpuTexture) Width() int                     { return t.width }
func (t *cpuTexture) Height() int                    { return t.height }
func (t *cpuTexture) Format() gputypes.TextureFormat { return t.format }

// MemoryUsage returns the footprint of the texture. It does not change
// after Release.
func (t *cpuTexture) MemoryUsage() int64 {
	return int64(t.width) * int64(t.height) * int64(bytesPerPixel(t.format))
}

func (t *cpuTexture) Pixels() []byte {
	if t.released.Load() {
		return nil
	}
	return t.pixels
}

func (t *cpuTexture) Handle() any {
	if t.released.Load() {
		return nil
	}
	return t.handle
}

func (t *cpuTexture) Release() {
	if !t.released.CompareAndSwap(false, true) {
		return
	}
	if d, ok := t.handle.(interface{ Destroy() }); ok {
		d.Destroy()
	}
}

var (
	_ Context = (*RasterContext)(nil)
	_ Texture = (*cpuTexture)(nil)
)
