// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobformat

// Revision is one decoded format revision. The set of implementations
// is closed: exactly *Rev01, *Rev02, and *Rev03. Code that needs
// revision-specific behaviour switches on the concrete type and treats
// any other value as a bug.
type Revision interface {
	// Version returns the header version this revision encodes as.
	Version() Version

	// SelfCheck verifies the structural invariants of the revision
	// and returns the first violation as a *ConsistencyError. It does
	// not modify the revision, so repeated calls return the same
	// result.
	SelfCheck() error

	// encodedSize is the exact body size in bytes (header excluded).
	encodedSize() int

	// encodeBody appends the body to w. The caller has run SelfCheck.
	encodeBody(w *fieldWriter)
}

// Piece is a named region of the mesh and the set of vertices that
// belong to it, ascending and without duplicates when produced by the
// membership reconstructor.
type Piece struct {
	Name     string
	Vertices []uint32
}

// MeshOf returns the shared fields of rev.
func MeshOf(rev Revision) *Mesh {
	switch r := rev.(type) {
	case *Rev01:
		return &r.Mesh
	case *Rev02:
		return &r.Mesh
	case *Rev03:
		return &r.Mesh
	default:
		panic("blobformat: unknown revision type")
	}
}

// PieceNames returns the display names of the pieces of rev in order.
// Revision 0.1 stores only names; later revisions carry them alongside
// vertex membership.
func PieceNames(rev Revision) []string {
	switch r := rev.(type) {
	case *Rev01:
		return append([]string(nil), r.PieceNames...)
	case *Rev02:
		return namesOf(r.Pieces)
	case *Rev03:
		return namesOf(r.Pieces)
	default:
		panic("blobformat: unknown revision type")
	}
}

// HasMembership reports whether rev stores explicit piece vertex sets.
func HasMembership(rev Revision) bool {
	switch rev.(type) {
	case *Rev01:
		return false
	case *Rev02, *Rev03:
		return true
	default:
		panic("blobformat: unknown revision type")
	}
}

func namesOf(pieces []Piece) []string {
	names := make([]string, len(pieces))
	for i, piece := range pieces {
		names[i] = piece.Name
	}
	return names
}
