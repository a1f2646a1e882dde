// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobformat

import (
	"fmt"
	"slices"
)

// Rev02 is format revision 0.2. It keeps the 0.1 layout unchanged and
// appends, after eight reserved words, an explicit vertex set for every
// piece. It upconverts from Rev01.
type Rev02 struct {
	Mesh
	Pieces []Piece
}

// Version returns V02.
func (*Rev02) Version() Version { return V02 }

// SelfCheck verifies the 0.2 invariants.
func (r *Rev02) SelfCheck() error {
	return checkWithPieces(V02, &r.Mesh, r.Pieces)
}

func (r *Rev02) encodedSize() int {
	return meshSize(&r.Mesh, namesOf(r.Pieces)) + pieceAppendixSize(r.Pieces)
}

func (r *Rev02) encodeBody(w *fieldWriter) {
	encodeMesh(w, &r.Mesh, namesOf(r.Pieces))
	encodePieceAppendix(w, r.Pieces)
}

func decodeRev02(r *fieldReader) (Revision, error) {
	mesh, pieceNames, err := decodeMesh(r)
	if err != nil {
		return nil, err
	}
	pieces, err := decodePieceAppendix(r, pieceNames)
	if err != nil {
		return nil, err
	}
	return &Rev02{Mesh: mesh, Pieces: pieces}, nil
}

// upconvertRev01 builds a Rev02 from a self-checked Rev01 by
// reconstructing each piece's vertex membership from face adjacency.
func upconvertRev01(prior Revision) (Revision, error) {
	rev01, ok := prior.(*Rev01)
	if !ok {
		return nil, fmt.Errorf("upconverting to %s: expected a %s revision, got %s: %w", V02, V01, prior.Version(), ErrUnsupportedVersion)
	}
	membership, err := ReconstructMembership(&rev01.Mesh)
	if err != nil {
		return nil, err
	}
	pieces := make([]Piece, len(rev01.PieceNames))
	for i, name := range rev01.PieceNames {
		pieces[i] = Piece{Name: name, Vertices: membership[i]}
	}
	return &Rev02{Mesh: rev01.Mesh.Clone(), Pieces: pieces}, nil
}

// checkWithPieces is the self-check shared by revisions that store
// explicit piece membership.
func checkWithPieces(v Version, m *Mesh, pieces []Piece) error {
	if err := m.checkVertices(v); err != nil {
		return err
	}
	if err := m.checkFaces(v); err != nil {
		return err
	}
	if err := m.checkPieceCount(v, len(pieces)); err != nil {
		return err
	}
	if err := m.checkPieceVertices(v, pieces); err != nil {
		return err
	}
	return m.checkCurvesAndTextures(v)
}

// decodePieceAppendix reads the block 0.2 appends after the curves:
// reserved words, then a count-prefixed vertex list per piece.
func decodePieceAppendix(r *fieldReader, pieceNames []string) ([]Piece, error) {
	if err := r.skipReserved(reservedBeforeAppends, "reserved words before piece vertices"); err != nil {
		return nil, err
	}
	pieces := make([]Piece, len(pieceNames))
	for i, name := range pieceNames {
		vertices, err := r.indices(fmt.Sprintf("piece %d vertices", i))
		if err != nil {
			return nil, err
		}
		pieces[i] = Piece{Name: name, Vertices: vertices}
	}
	return pieces, nil
}

func encodePieceAppendix(w *fieldWriter, pieces []Piece) {
	w.reserved(reservedBeforeAppends)
	for _, piece := range pieces {
		w.indices(piece.Vertices)
	}
}

func pieceAppendixSize(pieces []Piece) int {
	size := reservedBeforeAppends * reservedWordSize
	for _, piece := range pieces {
		size += indicesSize(piece.Vertices)
	}
	return size
}

// clonePieces returns a deep copy of pieces, preserving nil.
func clonePieces(pieces []Piece) []Piece {
	if pieces == nil {
		return nil
	}
	out := make([]Piece, len(pieces))
	for i, piece := range pieces {
		out[i] = Piece{Name: piece.Name, Vertices: slices.Clone(piece.Vertices)}
	}
	return out
}
