// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gpucontext"

// NewDeviceContext creates a context that rasterizes on the CPU and
// uploads every captured texture through creator.
//
// Alpha-only surfaces are uploaded as premultiplied white RGBA so that a
// single sampling pipeline serves mask and color pages. A zero
// caps.MaxTextureSize falls back to DefaultMaxTextureSize.
func NewDeviceContext(handle DeviceHandle, creator gpucontext.TextureCreator, caps DeviceCapabilities) (*RasterContext, error) {
	if creator == nil {
		return nil, ErrNilUploader
	}
	return newDeviceContext(handle, func(w, h int, data []byte) (any, error) {
		return creator.NewTextureFromRGBA(w, h, data)
	}, caps), nil
}

func newDeviceContext(handle DeviceHandle, upload uploadFunc, caps DeviceCapabilities) *RasterContext {
	if caps.MaxTextureSize <= 0 {
		caps.MaxTextureSize = DefaultMaxTextureSize
	}
	if handle == nil {
		handle = NullDeviceHandle{}
	}
	return &RasterContext{caps: caps, handle: handle, upload: upload}
}
