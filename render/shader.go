// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/atlas.wgsl
var atlasShaderSource string

var atlasSPIRV struct {
	once sync.Once
	code []uint32
	err  error
}

// AtlasShaderSource returns the WGSL source of the atlas sampling shader.
func AtlasShaderSource() string {
	return atlasShaderSource
}

// AtlasShaderSPIRV returns the atlas shader compiled to SPIR-V.
// The shader is compiled once per process.
func AtlasShaderSPIRV() ([]uint32, error) {
	atlasSPIRV.once.Do(func() {
		atlasSPIRV.code, atlasSPIRV.err = compileSPIRV(atlasShaderSource)
	})
	return atlasSPIRV.code, atlasSPIRV.err
}

// CreateAtlasShaderModule creates a shader module for the atlas shader.
func CreateAtlasShaderModule(device hal.Device) (hal.ShaderModule, error) {
	code, err := AtlasShaderSPIRV()
	if err != nil {
		return nil, err
	}
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "textatlas_atlas",
		Source: hal.ShaderSource{
			SPIRV: code,
		},
	})
}

// compileSPIRV compiles WGSL to little-endian SPIR-V words.
func compileSPIRV(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("render: compile atlas shader: %w", err)
	}
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}
