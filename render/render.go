// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/textatlas/glyph"
)

var (
	// ErrInvalidSurfaceSize is returned when a surface dimension is not positive.
	ErrInvalidSurfaceSize = errors.New("render: invalid surface size")

	// ErrSurfaceTooLarge is returned when a surface exceeds the context's
	// maximum texture size.
	ErrSurfaceTooLarge = errors.New("render: surface exceeds max texture size")

	// ErrNilUploader is returned by NewDeviceContext without a texture creator.
	ErrNilUploader = errors.New("render: nil texture creator")
)

// SurfaceError describes a surface that could not be created.
type SurfaceError struct {
	Width, Height int
	Max           int
	Err           error
}

func (e *SurfaceError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("%v: %dx%d (max %d)", e.Err, e.Width, e.Height, e.Max)
	}
	return fmt.Sprintf("%v: %dx%d", e.Err, e.Width, e.Height)
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

// Point is a position in canvas space.
type Point = glyph.Point

// Context creates offscreen surfaces.
type Context interface {
	// Capabilities returns the limits of the context.
	Capabilities() DeviceCapabilities

	// NewSurface creates a cleared surface. An alpha-only surface stores
	// coverage only; otherwise it stores premultiplied RGBA.
	NewSurface(width, height int, alphaOnly bool) (Surface, error)
}

// Surface is an offscreen drawing target.
type Surface interface {
	Width() int
	Height() int

	// Canvas returns the canvas drawing into the surface.
	Canvas() Canvas

	// Texture captures the surface content. Repeated calls return the same
	// texture until the surface is drawn to again.
	Texture() (Texture, error)
}

// Canvas draws into a surface under a current matrix.
type Canvas interface {
	// Matrix returns the current matrix.
	Matrix() Matrix

	// SetMatrix replaces the current matrix.
	SetMatrix(m Matrix)

	// Concat pre-multiplies the current matrix by m, so m applies first.
	Concat(m Matrix)

	// DrawGlyphs draws glyphs of font with their origins at the parallel
	// positions. Color glyphs are drawn with their palette layers or
	// embedded bitmaps; other glyphs are filled or stroked from their
	// outlines with paint. Glyphs with neither are skipped.
	DrawGlyphs(ids []glyph.GlyphID, positions []Point, font glyph.Font, paint Paint)

	// DrawPath draws a path.
	DrawPath(path *Path, paint Paint)
}

// Texture is the captured content of a surface.
type Texture interface {
	Width() int
	Height() int

	// Format returns the pixel format.
	Format() gputypes.TextureFormat

	// MemoryUsage returns the texture footprint in bytes.
	MemoryUsage() int64

	// Pixels returns the CPU copy of the texture, tightly packed rows.
	// It returns nil after Release.
	Pixels() []byte

	// Handle returns the device texture, or nil for CPU textures.
	Handle() any

	// Release frees the texture. It is safe to call more than once.
	Release()
}
