// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobformat

import "slices"

// ReconstructMembership derives the vertex set of every piece of m from
// face adjacency, for meshes whose format never stored one. m must have
// passed its self-check: every face and curve index is in range and
// every curve has at least one vertex.
//
// A piece is a topologically closed patch bounded by its own curves.
// Its membership is seeded with the vertices of every curve attached to
// it and grown breadth-first: each dequeued vertex contributes every
// vertex of every face incident to it. The result for each piece is
// sorted ascending.
//
// A piece with no attached curve has no seed and fails with
// ViolationUnseedablePiece.
func ReconstructMembership(m *Mesh) ([][]uint32, error) {
	incident := make([][]uint32, m.VertexCount)
	for f, face := range m.Faces {
		for _, vertex := range face {
			incident[vertex] = append(incident[vertex], uint32(f))
		}
	}

	membership := make([][]uint32, m.PieceCount)
	member := make([]bool, m.VertexCount)
	for piece := uint32(0); piece < m.PieceCount; piece++ {
		clear(member)
		var queue []uint32

		for _, curve := range m.Curves {
			if curve.PieceIndex != piece {
				continue
			}
			for _, vertex := range curve.Vertices {
				if !member[vertex] {
					member[vertex] = true
					queue = append(queue, vertex)
				}
			}
		}
		if len(queue) == 0 {
			return nil, violation(V01, ViolationUnseedablePiece,
				"piece %d has no attached curves to seed its vertex membership", piece)
		}

		// queue doubles as the membership list: everything enqueued is
		// a member, and head walks it in insertion order.
		for head := 0; head < len(queue); head++ {
			for _, f := range incident[queue[head]] {
				for _, vertex := range m.Faces[f] {
					if !member[vertex] {
						member[vertex] = true
						queue = append(queue, vertex)
					}
				}
			}
		}

		slices.Sort(queue)
		membership[piece] = queue
	}
	return membership, nil
}
