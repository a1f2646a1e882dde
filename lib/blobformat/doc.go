// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package blobformat implements the on-disk revisions of the geometry
// blob: their binary layouts, the structural self-check each runs after
// every decode and before every encode, and the conversion chain that
// brings an old revision up to [Current].
//
// # Revisions
//
// Three revisions exist, each a struct type implementing [Revision]:
//
//   - [Rev01] (0.1): mesh, texture channels, faces, piece names, curves
//   - [Rev02] (0.2): 0.1 plus an explicit vertex set per piece
//   - [Rev03] (0.3): 0.2 plus named geometry data channels
//
// The layout only ever grows at the end. Each revision writes the
// previous revision's bytes unchanged, then eight reserved words, then
// its own block. All fields are little-endian; strings are a uint32
// length followed by that many bytes with no terminator.
//
// # Loading
//
// [Decode] reads the four-byte header, decodes the body with the
// matching revision, rejects trailing bytes, and self-checks. [Upconvert]
// walks the declared predecessor chain (see [Predecessor]) one step at
// a time. [DecodeCurrent] does both and reports the version that was
// actually on disk.
//
// Converting 0.1 to 0.2 has to recover which vertices belong to each
// piece. [ReconstructMembership] floods outward across shared faces
// from the vertices of the piece's curves.
//
// # Errors
//
// Failures are one of [*IOError] (the buffer ended early), a
// [*ConsistencyError] (an invariant does not hold; its [Violation] names
// which), or [*UnsupportedVersionError] (the header names an unknown
// revision, including anything newer than [Current]). Match them with
// errors.Is against [ErrIO], [ErrConsistency], and
// [ErrUnsupportedVersion].
//
// The package holds no mutable state. Concurrent calls are safe as long
// as each goroutine owns the buffer and revision it works on.
package blobformat
