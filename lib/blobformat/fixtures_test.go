// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobformat

import (
	"bytes"
	"encoding/binary"
	"math"
)

// layout assembles a buffer field by field, independently of the
// package's own encoder, so tests pin the byte layout rather than
// round-tripping through code under test.
type layout struct {
	buffer bytes.Buffer
}

func (l *layout) u16(v uint16) *layout {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	l.buffer.Write(b[:])
	return l
}

func (l *layout) u32(values ...uint32) *layout {
	for _, v := range values {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		l.buffer.Write(b[:])
	}
	return l
}

func (l *layout) f32(values ...float32) *layout {
	for _, v := range values {
		l.u32(math.Float32bits(v))
	}
	return l
}

func (l *layout) f64(values ...float64) *layout {
	for _, v := range values {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		l.buffer.Write(b[:])
	}
	return l
}

func (l *layout) str(s string) *layout {
	l.u32(uint32(len(s)))
	l.buffer.WriteString(s)
	return l
}

func (l *layout) reserved(words int) *layout {
	for i := 0; i < words; i++ {
		l.u32(0)
	}
	return l
}

func (l *layout) bytes() []byte {
	return bytes.Clone(l.buffer.Bytes())
}

// quadV01 is a hand-built 0.1 buffer: one piece "front" made of a unit
// quad (4 vertices, 2 triangles) bounded by two curves that together
// close the loop.
func quadV01() []byte {
	return quadV01Layout(quadOptions{}).bytes()
}

// quadOptions varies the hand-built 0.1 quad.
type quadOptions struct {
	// has2DFlag is written verbatim as the 2D coordinate flag.
	has2DFlag uint32
	// with2D writes a 2D vertex block regardless of the flag.
	with2D bool
	// reservedFill is written into every reserved word.
	reservedFill uint32
	// faceCount overrides the declared face count when non-zero.
	faceCount uint32
}

func quadV01Layout(options quadOptions) *layout {
	faceCount := uint32(2)
	if options.faceCount != 0 {
		faceCount = options.faceCount
	}

	l := &layout{}
	l.u16(0).u16(1)
	l.str("shirt")
	l.u32(0) // texture channels
	l.u32(options.has2DFlag)
	l.u32(options.reservedFill, options.reservedFill)
	l.u32(4, faceCount, 1, 2) // vertices, faces, pieces, curves
	l.u32(options.reservedFill, options.reservedFill)
	l.f32(0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0)
	if options.with2D {
		l.f32(0, 0, 0.5, 0, 0.5, 0.5, 0, 0.5)
	}
	l.u32(0, 1, 2, 0, 2, 3)
	l.str("front")
	l.str("hem").u32(0).u32(3).u32(0, 1, 2)
	l.str("collar").u32(0).u32(3).u32(2, 3, 0)
	return l
}

// quadMesh is the shared fields of the quad fixture with 2D coordinates
// and one texture channel.
func quadMesh() Mesh {
	return Mesh{
		Name:                "shirt",
		TextureChannelCount: 1,
		Has2D:               true,
		VertexCount:         4,
		FaceCount:           2,
		PieceCount:          1,
		CurveCount:          2,
		Vertices3D:          [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Vertices2D:          [][2]float32{{0, 0}, {0.5, 0}, {0.5, 0.5}, {0, 0.5}},
		TextureChannels:     [][][2]float32{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
		Faces:               [][3]uint32{{0, 1, 2}, {0, 2, 3}},
		Curves: []Curve{
			{Name: "hem", PieceIndex: 0, Vertices: []uint32{0, 1, 2}},
			{Name: "collar", PieceIndex: 0, Vertices: []uint32{2, 3, 0}},
		},
	}
}

// twoPanelRev03 is a valid current-revision value with every optional
// feature populated: two pieces on disjoint patches, 2D coordinates,
// two texture channels, and geometry data of both kinds.
func twoPanelRev03() *Rev03 {
	return &Rev03{
		Mesh: Mesh{
			Name:                "two-panel",
			TextureChannelCount: 2,
			Has2D:               true,
			VertexCount:         6,
			FaceCount:           2,
			PieceCount:          2,
			CurveCount:          2,
			Vertices3D: [][3]float32{
				{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
				{5, 5, 5}, {6, 5, 5}, {5, 6, float32(math.Copysign(0, -1))},
			},
			Vertices2D: [][2]float32{{0, 0}, {1, 0}, {0, 1}, {2, 2}, {3, 2}, {2, 3}},
			TextureChannels: [][][2]float32{
				{{0, 0}, {1, 0}, {0, 1}, {0, 0}, {1, 0}, {0, 1}},
				{{0.25, 0.25}, {0.75, 0.25}, {0.25, 0.75}, {0.1, 0.1}, {0.2, 0.1}, {0.1, 0.2}},
			},
			Faces: [][3]uint32{{0, 1, 2}, {3, 4, 5}},
			Curves: []Curve{
				{Name: "front-edge", PieceIndex: 0, Vertices: []uint32{0, 1}},
				{Name: "back-edge", PieceIndex: 1, Vertices: []uint32{3}},
			},
		},
		Pieces: []Piece{
			{Name: "front", Vertices: []uint32{0, 1, 2}},
			{Name: "back", Vertices: []uint32{3, 4, 5}},
		},
		GeomData: map[string]GeomChannel{
			"thickness": {FaceCentric: true, Values: []float64{0.5, 0.75}},
			"rest-uv":   {FaceCentric: false, Values: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		},
	}
}
