// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/textatlas/glyph"
)

// quadVertexStride is the size of one encoded QuadVertex in bytes.
const quadVertexStride = 16

// maxQuads is the largest quad count addressable with uint16 indices.
const maxQuads = 65536 / 4

// Quad is a textured rectangle sampling an atlas page.
type Quad struct {
	// Destination corners in target space.
	X0, Y0, X1, Y1 float32

	// Texture coordinates in [0, 1].
	U0, V0, U1, V1 float32
}

// QuadVertex is one corner of a Quad. It matches VertexInput in the
// atlas shader.
type QuadVertex struct {
	X, Y float32
	U, V float32
}

// AtlasQuad returns the quad drawing the atlas rectangle src of a page
// with the given size into dst. It returns false for an empty page.
func AtlasQuad(src glyph.Rect, pageWidth, pageHeight int, dst glyph.Rect) (Quad, bool) {
	if pageWidth <= 0 || pageHeight <= 0 {
		return Quad{}, false
	}
	iw, ih := 1/float32(pageWidth), 1/float32(pageHeight)
	return Quad{
		X0: dst.X, Y0: dst.Y, X1: dst.Right(), Y1: dst.Bottom(),
		U0: src.X * iw, V0: src.Y * ih, U1: src.Right() * iw, V1: src.Bottom() * ih,
	}, true
}

// TextureQuad is AtlasQuad for a page texture.
func TextureQuad(src glyph.Rect, tex Texture, dst glyph.Rect) (Quad, bool) {
	if tex == nil {
		return Quad{}, false
	}
	return AtlasQuad(src, tex.Width(), tex.Height(), dst)
}

// QuadVertices converts quads to four vertices each, in the order
// top-left, top-right, bottom-right, bottom-left.
func QuadVertices(quads []Quad) []QuadVertex {
	vertices := make([]QuadVertex, len(quads)*4)
	for i, q := range quads {
		base := i * 4
		vertices[base+0] = QuadVertex{X: q.X0, Y: q.Y0, U: q.U0, V: q.V0}
		vertices[base+1] = QuadVertex{X: q.X1, Y: q.Y0, U: q.U1, V: q.V0}
		vertices[base+2] = QuadVertex{X: q.X1, Y: q.Y1, U: q.U1, V: q.V1}
		vertices[base+3] = QuadVertex{X: q.X0, Y: q.Y1, U: q.U0, V: q.V1}
	}
	return vertices
}

// QuadIndices returns two triangles per quad: 0,1,2 and 2,3,0.
// Quads beyond the uint16 index range are ignored.
func QuadIndices(numQuads int) []uint16 {
	numQuads = min(numQuads, maxQuads)
	indices := make([]uint16, numQuads*6)
	for i := 0; i < numQuads; i++ {
		base := i * 6
		vertex := uint16(i * 4) //nolint:gosec // bounded by maxQuads
		indices[base+0] = vertex + 0
		indices[base+1] = vertex + 1
		indices[base+2] = vertex + 2
		indices[base+3] = vertex + 2
		indices[base+4] = vertex + 3
		indices[base+5] = vertex + 0
	}
	return indices
}

// QuadVertexData encodes quads as little-endian vertex buffer bytes.
func QuadVertexData(quads []Quad) []byte {
	if len(quads) == 0 {
		return nil
	}
	vertices := QuadVertices(quads)
	data := make([]byte, len(vertices)*quadVertexStride)
	for i, v := range vertices {
		buf := data[i*quadVertexStride:]
		binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.U))
		binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.V))
	}
	return data
}

// QuadIndexData encodes QuadIndices as little-endian index buffer bytes.
func QuadIndexData(numQuads int) []byte {
	indices := QuadIndices(numQuads)
	data := make([]byte, len(indices)*2)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(data[i*2:], idx)
	}
	return data
}
