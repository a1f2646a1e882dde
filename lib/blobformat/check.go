// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobformat

// The structural validator is split into the stages every revision
// runs in the same order. Revisions call them around their own piece
// checks so that the first violated invariant is reported consistently
// across revisions:
//
//	vertices (3D, 2D) → faces → pieces (revision-specific) → curve
//	count → texture channels → curves
//
// Every stage is a pure read of the revision; none of them mutate it.

// checkVertices verifies the 3D and 2D vertex arrays against the
// declared vertex count and the 2D flag.
func (m *Mesh) checkVertices(v Version) error {
	if uint64(len(m.Vertices3D)) != uint64(m.VertexCount) {
		return violation(v, ViolationVertexCount,
			"3D vertices have length %d, declared vertex count is %d", len(m.Vertices3D), m.VertexCount)
	}
	if m.Has2D {
		if uint64(len(m.Vertices2D)) != uint64(m.VertexCount) {
			return violation(v, ViolationVertex2DCount,
				"2D vertices have length %d, declared vertex count is %d", len(m.Vertices2D), m.VertexCount)
		}
	} else if len(m.Vertices2D) != 0 {
		return violation(v, ViolationVertex2DUnflagged,
			"2D coordinates are not flagged but %d 2D vertices are present", len(m.Vertices2D))
	}
	return nil
}

// checkFaces verifies the face count and that every face index
// references a known vertex.
func (m *Mesh) checkFaces(v Version) error {
	if uint64(len(m.Faces)) != uint64(m.FaceCount) {
		return violation(v, ViolationFaceCount,
			"faces have length %d, declared face count is %d", len(m.Faces), m.FaceCount)
	}
	for f, face := range m.Faces {
		for corner, index := range face {
			if index >= m.VertexCount {
				return violation(v, ViolationFaceIndex,
					"face %d corner %d references vertex %d, vertex count is %d", f, corner, index, m.VertexCount)
			}
		}
	}
	return nil
}

// checkPieceCount verifies the number of pieces a revision holds
// against the declared piece count.
func (m *Mesh) checkPieceCount(v Version, actual int) error {
	if uint64(actual) != uint64(m.PieceCount) {
		return violation(v, ViolationPieceCount,
			"pieces have length %d, declared piece count is %d", actual, m.PieceCount)
	}
	return nil
}

// checkPieceVertices verifies that every piece vertex is in range and
// that no piece lists a vertex twice.
func (m *Mesh) checkPieceVertices(v Version, pieces []Piece) error {
	for p, piece := range pieces {
		seen := make(map[uint32]struct{}, len(piece.Vertices))
		for position, index := range piece.Vertices {
			if index >= m.VertexCount {
				return violation(v, ViolationPieceVertexIndex,
					"piece %d %q vertex at position %d is %d, vertex count is %d",
					p, piece.Name, position, index, m.VertexCount)
			}
			if _, duplicate := seen[index]; duplicate {
				return violation(v, ViolationPieceVertexDuplicate,
					"piece %d %q lists vertex %d more than once", p, piece.Name, index)
			}
			seen[index] = struct{}{}
		}
	}
	return nil
}

// checkCurvesAndTextures runs the stages after the piece checks: curve
// count, texture channels, then per-curve references.
func (m *Mesh) checkCurvesAndTextures(v Version) error {
	if uint64(len(m.Curves)) != uint64(m.CurveCount) {
		return violation(v, ViolationCurveCount,
			"curves have length %d, declared curve count is %d", len(m.Curves), m.CurveCount)
	}

	if uint64(len(m.TextureChannels)) != uint64(m.TextureChannelCount) {
		return violation(v, ViolationTextureChannelCount,
			"%d texture channels present, declared texture channel count is %d",
			len(m.TextureChannels), m.TextureChannelCount)
	}
	for c, channel := range m.TextureChannels {
		if uint64(len(channel)) != uint64(m.VertexCount) {
			return violation(v, ViolationTextureChannelLength,
				"texture channel %d has length %d, vertex count is %d", c, len(channel), m.VertexCount)
		}
	}

	for c, curve := range m.Curves {
		if curve.PieceIndex >= m.PieceCount {
			return violation(v, ViolationCurvePieceIndex,
				"curve %d %q is attached to piece %d, piece count is %d", c, curve.Name, curve.PieceIndex, m.PieceCount)
		}
		if len(curve.Vertices) == 0 {
			return violation(v, ViolationCurveEmpty, "curve %d %q has zero vertices", c, curve.Name)
		}
		for position, index := range curve.Vertices {
			if index >= m.VertexCount {
				return violation(v, ViolationCurveVertexIndex,
					"curve %d %q vertex at position %d is %d, vertex count is %d",
					c, curve.Name, position, index, m.VertexCount)
			}
		}
	}
	return nil
}
