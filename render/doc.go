// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render is the drawing layer that text atlases are rasterized with.
//
// It defines the small surface of a GPU 2D context that atlas construction
// needs: offscreen surfaces of a given size and alpha mode, a canvas that
// draws batches of glyphs and paths under an affine matrix, and textures
// captured from those surfaces.
//
// # Contexts
//
//   - NewSoftwareContext: CPU surfaces rasterized with golang.org/x/image/vector.
//     Textures keep their pixels in memory (R8 for alpha-only surfaces,
//     premultiplied RGBA8 otherwise).
//   - NewDeviceContext: the same rasterizer, with every captured texture
//     uploaded to the host's GPU through a gpucontext.TextureCreator.
//
// The host application owns the GPU device. render RECEIVES it through a
// DeviceHandle and never creates one.
//
// # Sampling atlases
//
// AtlasQuad turns an atlas locator into a textured quad, and
// AtlasShaderSPIRV provides the WGSL sampling shader compiled to SPIR-V.
//
//	ctx := render.NewSoftwareContext(render.WithMaxTextureSize(2048))
//	surface, err := ctx.NewSurface(256, 256, true)
//	if err != nil {
//	    return err
//	}
//	canvas := surface.Canvas()
//	canvas.Concat(render.Scale(2, 2))
//	canvas.DrawGlyphs(ids, positions, font, render.NewPaint())
//	tex, err := surface.Texture()
package render
