// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package intent

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/geoblob/lib/blob"
)

// ErrMismatch is wrapped by every problem CrossCheck reports.
var ErrMismatch = errors.New("design intent does not match blob")

// Options controls how strictly CrossCheck compares.
type Options struct {
	// RequirePieceNames makes every blob piece resolve to a described
	// piece of the same name, and every curve of that blob piece to a
	// described boundary or internal curve. Without it only the piece
	// count and the seams are compared.
	RequirePieceNames bool
}

// CrossCheck reports every way description and b disagree. The piece
// counts must always match. Seams must name a blob piece and a curve
// attached to that piece. See Options for the name checks.
//
// All problems are returned together via errors.Join; each wraps
// ErrMismatch. b must have passed its self-check.
func CrossCheck(description *Description, b *blob.Blob, options Options) error {
	var errs []error
	mismatch := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMismatch, fmt.Sprintf(format, args...)))
	}

	if uint64(len(description.Pieces)) != uint64(b.NumPieces()) {
		mismatch("blob has %d pieces, design intent describes %d", b.NumPieces(), len(description.Pieces))
	}

	pieceIndex := make(map[string]int, b.NumPieces())
	curvesByPiece := make([]map[string]bool, b.NumPieces())
	for i := range curvesByPiece {
		piece, err := b.Piece(i)
		if err != nil {
			return err
		}
		if _, exists := pieceIndex[piece.Name]; !exists {
			pieceIndex[piece.Name] = i
		}
		curvesByPiece[i] = make(map[string]bool)
	}
	for i := 0; i < int(b.NumCurves()); i++ {
		curve, err := b.Curve(i)
		if err != nil {
			return err
		}
		if int(curve.PieceIndex) < len(curvesByPiece) {
			curvesByPiece[curve.PieceIndex][curve.Name] = true
		}
	}

	if options.RequirePieceNames {
		for i := 0; i < int(b.NumPieces()); i++ {
			piece, _ := b.Piece(i)
			described, ok := description.piece(piece.Name)
			if !ok {
				mismatch("blob piece %d %q is not described", i, piece.Name)
				continue
			}
			for curveIndex := 0; curveIndex < int(b.NumCurves()); curveIndex++ {
				curve, _ := b.Curve(curveIndex)
				if int(curve.PieceIndex) != i {
					continue
				}
				if !described.hasCurve(curve.Name) {
					mismatch("blob curve %d %q of piece %q is neither a boundary nor an internal curve of the description",
						curveIndex, curve.Name, piece.Name)
				}
			}
		}
	}

	for index, seam := range description.Sewing {
		for _, side := range []struct {
			label string
			side  SeamSide
		}{{"first", seam.First}, {"second", seam.Second}} {
			piece, ok := pieceIndex[side.side.Piece]
			if !ok {
				mismatch("sewing[%d].%s names piece %q, which the blob does not have", index, side.label, side.side.Piece)
				continue
			}
			if !curvesByPiece[piece][side.side.Curve] {
				mismatch("sewing[%d].%s names curve %q, which is not attached to blob piece %q",
					index, side.label, side.side.Curve, side.side.Piece)
			}
		}
	}

	return errors.Join(errs...)
}
