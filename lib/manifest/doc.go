// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest builds and encodes a compact summary of a geometry
// blob: counts, piece and curve names, geometry data channels, the
// format revision it was read from, and a BLAKE3 digest of its bytes.
//
// Manifests are CBOR encoded through package codec, so two identical
// blobs always produce byte-identical manifests. [Manifest.Verify]
// checks a manifest against blob bytes.
package manifest
