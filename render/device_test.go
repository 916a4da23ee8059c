// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

func TestNullDeviceHandle(t *testing.T) {
	var h DeviceHandle = NullDeviceHandle{}

	if h.Device() != nil || h.Queue() != nil || h.Adapter() != nil {
		t.Error("null device should return nil device, queue and adapter")
	}
	if got := h.SurfaceFormat(); got != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat() = %v, want undefined", got)
	}
	info := h.AdapterInfo()
	if info.Type != gpucontext.AdapterTypeUnknown || info.Name != "" {
		t.Errorf("AdapterInfo() = %+v, want unknown adapter", info)
	}
}

func TestDeviceContextHandle(t *testing.T) {
	ctx := newDeviceContext(nil, nil, DeviceCapabilities{})
	if _, ok := ctx.DeviceHandle().(NullDeviceHandle); !ok {
		t.Errorf("nil handle should fall back to NullDeviceHandle, got %T", ctx.DeviceHandle())
	}
	if ctx.Capabilities().MaxTextureSize != DefaultMaxTextureSize {
		t.Errorf("MaxTextureSize = %d, want default", ctx.Capabilities().MaxTextureSize)
	}
}
