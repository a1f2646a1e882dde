// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"

	"github.com/bureau-foundation/geoblob/lib/blob"
	"github.com/bureau-foundation/geoblob/lib/codec"
	"github.com/bureau-foundation/geoblob/lib/version"
)

// Manifest summarizes one encoded blob without its geometry: what it
// contains, which revision it was read from, and the digest of the
// bytes it was built from. The json tags name the fields for both the
// CBOR encoding and the CLI's --json output.
type Manifest struct {
	Name          string       `json:"name"`
	FormatVersion blob.Version `json:"format_version"`
	OriginVersion blob.Version `json:"origin_version"`

	Vertices         uint32 `json:"vertices"`
	Faces            uint32 `json:"faces"`
	TextureChannels  uint32 `json:"texture_channels"`
	Has2DCoordinates bool   `json:"has_2d_coordinates"`

	Pieces   []PieceSummary `json:"pieces"`
	Curves   []CurveSummary `json:"curves"`
	GeomData []GeomSummary  `json:"geom_data"`

	EncodedSize uint64 `json:"encoded_size"`
	Digest      string `json:"digest"`

	// Writer is the geoblob version that produced the manifest.
	Writer string `json:"writer"`
}

// PieceSummary is a piece's name and how many vertices belong to it.
type PieceSummary struct {
	Name     string `json:"name"`
	Vertices int    `json:"vertices"`
}

// CurveSummary is a curve's name, owning piece, and length in vertices.
type CurveSummary struct {
	Name     string `json:"name"`
	Piece    uint32 `json:"piece"`
	Vertices int    `json:"vertices"`
}

// GeomSummary is a geometry data channel's name, kind, and size.
type GeomSummary struct {
	Name        string `json:"name"`
	FaceCentric bool   `json:"face_centric"`
	Values      int    `json:"values"`
}

// Build summarizes b. encoded is the byte form b was loaded from or
// saved to; it provides the size and digest. Channels are listed in
// name order so identical blobs produce identical manifests.
func Build(b *blob.Blob, encoded []byte) (*Manifest, error) {
	m := &Manifest{
		Name:             b.Name(),
		FormatVersion:    b.FormatVersion(),
		OriginVersion:    b.OriginFormatVersion(),
		Vertices:         b.NumVertices(),
		Faces:            b.NumFaces(),
		TextureChannels:  b.NumTexChannels(),
		Has2DCoordinates: b.Has2DCoordinates(),
		Pieces:           make([]PieceSummary, 0, b.NumPieces()),
		Curves:           make([]CurveSummary, 0, b.NumCurves()),
		EncodedSize:      uint64(len(encoded)),
		Digest:           blob.FormatHash(blob.Digest(encoded)),
		Writer:           version.Short(),
	}

	for i := 0; i < int(b.NumPieces()); i++ {
		piece, err := b.Piece(i)
		if err != nil {
			return nil, fmt.Errorf("summarizing piece %d: %w", i, err)
		}
		m.Pieces = append(m.Pieces, PieceSummary{Name: piece.Name, Vertices: len(piece.Vertices)})
	}
	for i := 0; i < int(b.NumCurves()); i++ {
		curve, err := b.Curve(i)
		if err != nil {
			return nil, fmt.Errorf("summarizing curve %d: %w", i, err)
		}
		m.Curves = append(m.Curves, CurveSummary{Name: curve.Name, Piece: curve.PieceIndex, Vertices: len(curve.Vertices)})
	}
	names := b.GeomDataNames()
	m.GeomData = make([]GeomSummary, 0, len(names))
	for _, name := range names {
		channel, _ := b.GeomData(name)
		m.GeomData = append(m.GeomData, GeomSummary{Name: name, FaceCentric: channel.FaceCentric, Values: len(channel.Values)})
	}

	return m, nil
}

// Marshal encodes m as deterministic CBOR.
func Marshal(m *Manifest) ([]byte, error) {
	data, err := codec.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a manifest written by Marshal.
func Unmarshal(data []byte) (*Manifest, error) {
	var m Manifest
	if err := codec.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return &m, nil
}

// Verify reports whether encoded is the blob m was built from, by size
// and digest.
func (m *Manifest) Verify(encoded []byte) error {
	if uint64(len(encoded)) != m.EncodedSize {
		return fmt.Errorf("manifest for %q records %d bytes, blob has %d", m.Name, m.EncodedSize, len(encoded))
	}
	if digest := blob.FormatHash(blob.Digest(encoded)); digest != m.Digest {
		return fmt.Errorf("manifest for %q records digest %s, blob has %s", m.Name, m.Digest, digest)
	}
	return nil
}
