// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package blob is the public face of the geometry blob codec: a [Blob]
// always held at the current format revision, with copying accessors
// and setters, and [Load]/[Save] over raw byte buffers.
//
// Load accepts every known revision. Older files are upconverted on the
// way in (revision 0.1 files have their piece membership reconstructed
// from face adjacency) and [Blob.OriginFormatVersion] remembers what was
// on disk. Save always writes the current revision. Both run the
// structural self-check, so a Blob obtained from Load and a buffer
// returned by Save are always consistent.
//
// Setters do not validate as they go: a blob under construction may be
// inconsistent (for example, 3D vertices set before the texture
// channels are resized to match). Call [Blob.SelfCheck] to find the
// first problem, or let Save report it.
//
// [Digest] content-addresses an encoded blob with a domain-keyed BLAKE3
// hash.
//
// Errors from Load and Save match one of [ErrIO], [ErrConsistency], or
// [ErrUnsupportedVersion]; see package blobformat for the concrete
// types.
package blob
