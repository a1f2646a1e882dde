// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blob

import (
	"errors"
	"fmt"
	"slices"
)

// Name returns the blob's display name.
func (b *Blob) Name() string { return b.rev.Name }

// NumVertices returns the declared vertex count.
func (b *Blob) NumVertices() uint32 { return b.rev.VertexCount }

// NumFaces returns the declared face count.
func (b *Blob) NumFaces() uint32 { return b.rev.FaceCount }

// NumPieces returns the declared piece count.
func (b *Blob) NumPieces() uint32 { return b.rev.PieceCount }

// NumCurves returns the declared curve count.
func (b *Blob) NumCurves() uint32 { return b.rev.CurveCount }

// NumTexChannels returns the declared texture channel count.
func (b *Blob) NumTexChannels() uint32 { return b.rev.TextureChannelCount }

// Has2DCoordinates reports whether the blob carries 2D pattern
// coordinates.
func (b *Blob) Has2DCoordinates() bool { return b.rev.Has2D }

// Vertices3D returns a copy of the 3D vertex positions.
func (b *Blob) Vertices3D() [][3]float32 { return slices.Clone(b.rev.Vertices3D) }

// Vertices2D returns a copy of the 2D pattern coordinates, or nil when
// the blob has none.
func (b *Blob) Vertices2D() [][2]float32 { return slices.Clone(b.rev.Vertices2D) }

// Faces returns a copy of the triangle list.
func (b *Blob) Faces() [][3]uint32 { return slices.Clone(b.rev.Faces) }

// TexChannel returns a copy of texture channel i.
func (b *Blob) TexChannel(i int) ([][2]float32, error) {
	if err := checkIndex("texture channel", i, len(b.rev.TextureChannels)); err != nil {
		return nil, err
	}
	return slices.Clone(b.rev.TextureChannels[i]), nil
}

// Piece returns a copy of piece i.
func (b *Blob) Piece(i int) (Piece, error) {
	if err := checkIndex("piece", i, len(b.rev.Pieces)); err != nil {
		return Piece{}, err
	}
	piece := b.rev.Pieces[i]
	return Piece{Name: piece.Name, Vertices: slices.Clone(piece.Vertices)}, nil
}

// Curve returns a copy of curve i.
func (b *Blob) Curve(i int) (Curve, error) {
	if err := checkIndex("curve", i, len(b.rev.Curves)); err != nil {
		return Curve{}, err
	}
	curve := b.rev.Curves[i]
	return Curve{Name: curve.Name, PieceIndex: curve.PieceIndex, Vertices: slices.Clone(curve.Vertices)}, nil
}

// GeomDataNames returns the geometry data channel names in ascending
// order.
func (b *Blob) GeomDataNames() []string { return b.rev.GeomDataNames() }

// GeomData returns a copy of the named geometry data channel. The
// second result is false when no channel has that name.
func (b *Blob) GeomData(name string) (GeomChannel, bool) {
	channel, ok := b.rev.GeomData[name]
	if !ok {
		return GeomChannel{}, false
	}
	return GeomChannel{FaceCentric: channel.FaceCentric, Values: slices.Clone(channel.Values)}, true
}

// SetName sets the display name.
func (b *Blob) SetName(name string) { b.rev.Name = name }

// Set3DVertices replaces the 3D vertex positions and sets the vertex
// count to their number.
func (b *Blob) Set3DVertices(vertices [][3]float32) {
	b.rev.Vertices3D = slices.Clone(vertices)
	b.rev.VertexCount = uint32(len(vertices))
}

// Set2DVertices replaces the 2D pattern coordinates. A non-empty slice
// marks the blob as carrying 2D coordinates and an empty one clears
// the mark. The vertex count is left alone: it belongs to the 3D
// positions, and SelfCheck reports a 2D slice that disagrees with it.
func (b *Blob) Set2DVertices(vertices [][2]float32) {
	if len(vertices) == 0 {
		b.rev.Vertices2D = nil
		b.rev.Has2D = false
		return
	}
	b.rev.Vertices2D = slices.Clone(vertices)
	b.rev.Has2D = true
}

// SetNumTexChannels resizes the texture channel list to n. Channels
// added by growing start empty; fill them with SetTexChannel.
func (b *Blob) SetNumTexChannels(n uint32) {
	b.rev.TextureChannels = resize(b.rev.TextureChannels, n)
	b.rev.TextureChannelCount = n
}

// SetTexChannel replaces texture channel i.
func (b *Blob) SetTexChannel(i int, coords [][2]float32) error {
	if err := checkIndex("texture channel", i, len(b.rev.TextureChannels)); err != nil {
		return err
	}
	b.rev.TextureChannels[i] = slices.Clone(coords)
	return nil
}

// SetFaces replaces the triangle list and sets the face count.
func (b *Blob) SetFaces(faces [][3]uint32) {
	b.rev.Faces = slices.Clone(faces)
	b.rev.FaceCount = uint32(len(faces))
}

// SetNumPieces resizes the piece list to n. Pieces added by growing are
// unnamed and empty.
func (b *Blob) SetNumPieces(n uint32) {
	b.rev.Pieces = resize(b.rev.Pieces, n)
	b.rev.PieceCount = n
}

// SetPiece replaces piece i.
func (b *Blob) SetPiece(i int, piece Piece) error {
	if err := checkIndex("piece", i, len(b.rev.Pieces)); err != nil {
		return err
	}
	b.rev.Pieces[i] = Piece{Name: piece.Name, Vertices: slices.Clone(piece.Vertices)}
	return nil
}

// SetNumCurves resizes the curve list to n. Curves added by growing are
// unnamed, attached to piece 0, and have no vertices until set.
func (b *Blob) SetNumCurves(n uint32) {
	b.rev.Curves = resize(b.rev.Curves, n)
	b.rev.CurveCount = n
}

// SetCurve replaces curve i.
func (b *Blob) SetCurve(i int, curve Curve) error {
	if err := checkIndex("curve", i, len(b.rev.Curves)); err != nil {
		return err
	}
	b.rev.Curves[i] = Curve{Name: curve.Name, PieceIndex: curve.PieceIndex, Vertices: slices.Clone(curve.Vertices)}
	return nil
}

// SetGeomData adds or replaces the named geometry data channel.
func (b *Blob) SetGeomData(name string, channel GeomChannel) error {
	if name == "" {
		return errors.New("geometry data channel name is empty")
	}
	b.rev.GeomData[name] = GeomChannel{FaceCentric: channel.FaceCentric, Values: slices.Clone(channel.Values)}
	return nil
}

// RemoveGeomData deletes the named geometry data channel and reports
// whether it existed.
func (b *Blob) RemoveGeomData(name string) bool {
	if _, ok := b.rev.GeomData[name]; !ok {
		return false
	}
	delete(b.rev.GeomData, name)
	return true
}

// checkIndex returns an error matching ErrIndexOutOfRange unless
// 0 <= i < length.
func checkIndex(kind string, i, length int) error {
	if i < 0 || i >= length {
		return fmt.Errorf("%s index %d (have %d): %w", kind, i, length, ErrIndexOutOfRange)
	}
	return nil
}

// resize truncates s to n elements or extends it with zero values.
func resize[T any](s []T, n uint32) []T {
	if int(n) <= len(s) {
		return slices.Clip(s[:n])
	}
	return append(s, make([]T, int(n)-len(s))...)
}
