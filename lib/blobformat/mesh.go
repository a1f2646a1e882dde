// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobformat

import (
	"fmt"
	"slices"
)

// Mesh holds the fields every format revision shares. Revisions embed
// it and add their own piece representation (and, from 0.3, geometry
// data channels).
//
// The declared counts are stored separately from the slices because
// that is what the wire format carries; SelfCheck verifies they agree.
type Mesh struct {
	Name string

	TextureChannelCount uint32
	Has2D               bool

	VertexCount uint32
	FaceCount   uint32
	PieceCount  uint32
	CurveCount  uint32

	Vertices3D      [][3]float32
	Vertices2D      [][2]float32
	TextureChannels [][][2]float32
	Faces           [][3]uint32
	Curves          []Curve
}

// Curve is a named ordered vertex sequence attached to one piece.
type Curve struct {
	Name       string
	PieceIndex uint32
	Vertices   []uint32
}

// Reserved word counts. The layout leaves two words after the flags,
// two after the element counts, and eight ahead of each block a later
// revision appended.
const (
	reservedAfterFlags    = 2
	reservedAfterCounts   = 2
	reservedBeforeAppends = 8
)

// decodeMesh reads the layout shared by every revision, from the name
// through the curve list. Piece names sit between faces and curves, so
// they are returned for the caller to place in its own representation.
func decodeMesh(r *fieldReader) (Mesh, []string, error) {
	var m Mesh
	var err error

	if m.Name, err = r.string("name"); err != nil {
		return m, nil, err
	}
	if m.TextureChannelCount, err = r.uint32("texture channel count"); err != nil {
		return m, nil, err
	}
	if m.Has2D, err = r.flag("2D coordinate flag"); err != nil {
		return m, nil, err
	}
	if err := r.skipReserved(reservedAfterFlags, "reserved words after flags"); err != nil {
		return m, nil, err
	}

	if m.VertexCount, err = r.uint32("vertex count"); err != nil {
		return m, nil, err
	}
	if m.FaceCount, err = r.uint32("face count"); err != nil {
		return m, nil, err
	}
	if m.PieceCount, err = r.uint32("piece count"); err != nil {
		return m, nil, err
	}
	if m.CurveCount, err = r.uint32("curve count"); err != nil {
		return m, nil, err
	}
	if err := r.skipReserved(reservedAfterCounts, "reserved words after counts"); err != nil {
		return m, nil, err
	}

	if err := r.need(m.VertexCount, vec3Size, "3D vertices"); err != nil {
		return m, nil, err
	}
	m.Vertices3D = make([][3]float32, m.VertexCount)
	for i := range m.Vertices3D {
		if m.Vertices3D[i], err = r.vec3("3D vertices"); err != nil {
			return m, nil, err
		}
	}

	if m.Has2D {
		if err := r.need(m.VertexCount, vec2Size, "2D vertices"); err != nil {
			return m, nil, err
		}
		m.Vertices2D = make([][2]float32, m.VertexCount)
		for i := range m.Vertices2D {
			if m.Vertices2D[i], err = r.vec2("2D vertices"); err != nil {
				return m, nil, err
			}
		}
	}

	if m.TextureChannelCount > 0 {
		// Channels of an empty mesh carry no bytes, so the payload check
		// below cannot bound their count. Allow at most one channel per
		// unread byte.
		if m.VertexCount == 0 {
			if err := r.need(m.TextureChannelCount, 1, "texture channel count"); err != nil {
				return m, nil, err
			}
		}
		total := uint64(m.TextureChannelCount) * uint64(m.VertexCount) * vec2Size
		if err := r.needBytes(total, "texture channels"); err != nil {
			return m, nil, err
		}
		m.TextureChannels = make([][][2]float32, m.TextureChannelCount)
		for c := range m.TextureChannels {
			field := fmt.Sprintf("texture channel %d", c)
			channel := make([][2]float32, m.VertexCount)
			for v := range channel {
				if channel[v], err = r.vec2(field); err != nil {
					return m, nil, err
				}
			}
			m.TextureChannels[c] = channel
		}
	}

	if err := r.need(m.FaceCount, triangleSize, "faces"); err != nil {
		return m, nil, err
	}
	m.Faces = make([][3]uint32, m.FaceCount)
	for i := range m.Faces {
		if m.Faces[i], err = r.triangle("faces"); err != nil {
			return m, nil, err
		}
	}

	// Every piece name and curve carries at least a uint32 length.
	if err := r.need(m.PieceCount, uint32Size, "piece names"); err != nil {
		return m, nil, err
	}
	pieceNames := make([]string, m.PieceCount)
	for i := range pieceNames {
		if pieceNames[i], err = r.string(fmt.Sprintf("piece %d name", i)); err != nil {
			return m, nil, err
		}
	}

	if err := r.need(m.CurveCount, 3*uint32Size, "curves"); err != nil {
		return m, nil, err
	}
	m.Curves = make([]Curve, m.CurveCount)
	for i := range m.Curves {
		curve := &m.Curves[i]
		if curve.Name, err = r.string(fmt.Sprintf("curve %d name", i)); err != nil {
			return m, nil, err
		}
		if curve.PieceIndex, err = r.uint32(fmt.Sprintf("curve %d piece index", i)); err != nil {
			return m, nil, err
		}
		if curve.Vertices, err = r.indices(fmt.Sprintf("curve %d vertices", i)); err != nil {
			return m, nil, err
		}
	}

	return m, pieceNames, nil
}

// encodeMesh writes the shared layout. Callers have already run
// SelfCheck, so every slice matches its declared count.
func encodeMesh(w *fieldWriter, m *Mesh, pieceNames []string) {
	w.string(m.Name)
	w.uint32(m.TextureChannelCount)
	w.flag(m.Has2D)
	w.reserved(reservedAfterFlags)

	w.uint32(m.VertexCount)
	w.uint32(m.FaceCount)
	w.uint32(m.PieceCount)
	w.uint32(m.CurveCount)
	w.reserved(reservedAfterCounts)

	for _, v := range m.Vertices3D {
		w.vec3(v)
	}
	if m.Has2D {
		for _, v := range m.Vertices2D {
			w.vec2(v)
		}
	}
	for _, channel := range m.TextureChannels {
		for _, v := range channel {
			w.vec2(v)
		}
	}
	for _, face := range m.Faces {
		w.triangle(face)
	}
	for _, name := range pieceNames {
		w.string(name)
	}
	for _, curve := range m.Curves {
		w.string(curve.Name)
		w.uint32(curve.PieceIndex)
		w.indices(curve.Vertices)
	}
}

// meshSize is the encoded size of the shared layout.
func meshSize(m *Mesh, pieceNames []string) int {
	size := stringSize(m.Name)
	size += 2*uint32Size + reservedAfterFlags*reservedWordSize
	size += 4*uint32Size + reservedAfterCounts*reservedWordSize
	size += len(m.Vertices3D) * vec3Size
	if m.Has2D {
		size += len(m.Vertices2D) * vec2Size
	}
	for _, channel := range m.TextureChannels {
		size += len(channel) * vec2Size
	}
	size += len(m.Faces) * triangleSize
	for _, name := range pieceNames {
		size += stringSize(name)
	}
	for _, curve := range m.Curves {
		size += stringSize(curve.Name) + uint32Size + indicesSize(curve.Vertices)
	}
	return size
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() Mesh {
	out := *m
	out.Vertices3D = slices.Clone(m.Vertices3D)
	out.Vertices2D = slices.Clone(m.Vertices2D)
	if m.TextureChannels != nil {
		out.TextureChannels = make([][][2]float32, len(m.TextureChannels))
		for i, channel := range m.TextureChannels {
			out.TextureChannels[i] = slices.Clone(channel)
		}
	}
	out.Faces = slices.Clone(m.Faces)
	if m.Curves != nil {
		out.Curves = make([]Curve, len(m.Curves))
		for i, curve := range m.Curves {
			out.Curves[i] = Curve{
				Name:       curve.Name,
				PieceIndex: curve.PieceIndex,
				Vertices:   slices.Clone(curve.Vertices),
			}
		}
	}
	return out
}
