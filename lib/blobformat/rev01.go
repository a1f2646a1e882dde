// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobformat

// Rev01 is format revision 0.1, the oldest on-disk layout. Pieces are
// stored by display name only; which vertices belong to a piece is not
// recorded and has to be reconstructed when upconverting.
type Rev01 struct {
	Mesh
	PieceNames []string
}

// Version returns V01.
func (*Rev01) Version() Version { return V01 }

// SelfCheck verifies the 0.1 invariants.
func (r *Rev01) SelfCheck() error {
	if err := r.checkVertices(V01); err != nil {
		return err
	}
	if err := r.checkFaces(V01); err != nil {
		return err
	}
	if err := r.checkPieceCount(V01, len(r.PieceNames)); err != nil {
		return err
	}
	return r.checkCurvesAndTextures(V01)
}

func (r *Rev01) encodedSize() int {
	return meshSize(&r.Mesh, r.PieceNames)
}

func (r *Rev01) encodeBody(w *fieldWriter) {
	encodeMesh(w, &r.Mesh, r.PieceNames)
}

func decodeRev01(r *fieldReader) (Revision, error) {
	mesh, pieceNames, err := decodeMesh(r)
	if err != nil {
		return nil, err
	}
	return &Rev01{Mesh: mesh, PieceNames: pieceNames}, nil
}
