// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobformat

import (
	"fmt"
	"slices"
	"sort"
)

// Rev03 is format revision 0.3, the current revision. It keeps the 0.2
// layout unchanged and appends, after eight more reserved words, the
// named geometry data channels:
//
//	channel count            u32
//	per channel, ascending by name:
//	  name                   u32 length + bytes
//	  face-centric flag      u32 (0 or 1)
//	  value count            u32
//	  values                 value count × f64
//
// It upconverts from Rev02; a converted blob has no geometry data.
type Rev03 struct {
	Mesh
	Pieces   []Piece
	GeomData map[string]GeomChannel
}

// GeomChannel is one named per-face or per-vertex data channel.
// Values holds a whole multiple of the element count: one or more
// doubles per face when FaceCentric, per vertex otherwise.
type GeomChannel struct {
	FaceCentric bool
	Values      []float64
}

// Version returns V03.
func (*Rev03) Version() Version { return V03 }

// SelfCheck verifies the 0.3 invariants: the 0.2 set, then the
// geometry data channels.
func (r *Rev03) SelfCheck() error {
	if err := checkWithPieces(V03, &r.Mesh, r.Pieces); err != nil {
		return err
	}
	for _, name := range r.GeomDataNames() {
		channel := r.GeomData[name]
		if name == "" {
			return violation(V03, ViolationGeomDataName, "geometry data channel has an empty name")
		}
		if len(channel.Values) == 0 {
			continue
		}
		elements, kind := r.VertexCount, "vertex"
		if channel.FaceCentric {
			elements, kind = r.FaceCount, "face"
		}
		if elements == 0 || uint64(len(channel.Values))%uint64(elements) != 0 {
			return violation(V03, ViolationGeomDataLength,
				"geometry data channel %q has %d values, not a multiple of the %s count %d",
				name, len(channel.Values), kind, elements)
		}
	}
	return nil
}

// GeomDataNames returns the channel names in ascending order, which is
// also their on-disk order.
func (r *Rev03) GeomDataNames() []string {
	names := make([]string, 0, len(r.GeomData))
	for name := range r.GeomData {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of r.
func (r *Rev03) Clone() *Rev03 {
	out := &Rev03{Mesh: r.Mesh.Clone(), Pieces: clonePieces(r.Pieces)}
	if r.GeomData != nil {
		out.GeomData = make(map[string]GeomChannel, len(r.GeomData))
		for name, channel := range r.GeomData {
			out.GeomData[name] = GeomChannel{FaceCentric: channel.FaceCentric, Values: slices.Clone(channel.Values)}
		}
	}
	return out
}

func (r *Rev03) encodedSize() int {
	size := meshSize(&r.Mesh, namesOf(r.Pieces)) + pieceAppendixSize(r.Pieces)
	size += reservedBeforeAppends*reservedWordSize + uint32Size
	for name, channel := range r.GeomData {
		size += stringSize(name) + 2*uint32Size + len(channel.Values)*float64Size
	}
	return size
}

func (r *Rev03) encodeBody(w *fieldWriter) {
	encodeMesh(w, &r.Mesh, namesOf(r.Pieces))
	encodePieceAppendix(w, r.Pieces)

	w.reserved(reservedBeforeAppends)
	names := r.GeomDataNames()
	w.uint32(uint32(len(names)))
	for _, name := range names {
		channel := r.GeomData[name]
		w.string(name)
		w.flag(channel.FaceCentric)
		w.uint32(uint32(len(channel.Values)))
		for _, value := range channel.Values {
			w.float64(value)
		}
	}
}

func decodeRev03(r *fieldReader) (Revision, error) {
	mesh, pieceNames, err := decodeMesh(r)
	if err != nil {
		return nil, err
	}
	pieces, err := decodePieceAppendix(r, pieceNames)
	if err != nil {
		return nil, err
	}

	if err := r.skipReserved(reservedBeforeAppends, "reserved words before geometry data"); err != nil {
		return nil, err
	}
	count, err := r.uint32("geometry data channel count")
	if err != nil {
		return nil, err
	}
	// Each channel carries at least a name length, a flag, and a value count.
	if err := r.need(count, 3*uint32Size, "geometry data channels"); err != nil {
		return nil, err
	}
	geomData := make(map[string]GeomChannel, count)
	for i := uint32(0); i < count; i++ {
		name, err := r.string(fmt.Sprintf("geometry data channel %d name", i))
		if err != nil {
			return nil, err
		}
		if _, exists := geomData[name]; exists {
			return nil, violation(V03, ViolationGeomDataName, "geometry data channel %q is stored more than once", name)
		}
		faceCentric, err := r.flag(fmt.Sprintf("geometry data channel %q face-centric flag", name))
		if err != nil {
			return nil, err
		}
		valueCount, err := r.uint32(fmt.Sprintf("geometry data channel %q value count", name))
		if err != nil {
			return nil, err
		}
		field := fmt.Sprintf("geometry data channel %q values", name)
		if err := r.need(valueCount, float64Size, field); err != nil {
			return nil, err
		}
		values := make([]float64, valueCount)
		for v := range values {
			if values[v], err = r.float64(field); err != nil {
				return nil, err
			}
		}
		geomData[name] = GeomChannel{FaceCentric: faceCentric, Values: values}
	}

	return &Rev03{Mesh: mesh, Pieces: pieces, GeomData: geomData}, nil
}

// upconvertRev02 builds a Rev03 from a self-checked Rev02. Revision 0.2
// had no geometry data, so the result carries none.
func upconvertRev02(prior Revision) (Revision, error) {
	rev02, ok := prior.(*Rev02)
	if !ok {
		return nil, fmt.Errorf("upconverting to %s: expected a %s revision, got %s: %w", V03, V02, prior.Version(), ErrUnsupportedVersion)
	}
	return &Rev03{
		Mesh:     rev02.Mesh.Clone(),
		Pieces:   clonePieces(rev02.Pieces),
		GeomData: map[string]GeomChannel{},
	}, nil
}
