// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package intent reads the design-intent sidecar that accompanies a
// geometry blob and checks that the two agree.
//
// The blob carries the mesh: vertices, faces, named pieces, and named
// curves. The sidecar carries what the mesh means: the 2D design
// curves that outline each piece, its extrusion and fabric, and which
// curves are sewn together. Both refer to pieces and curves by name, so
// a sidecar written for a different revision of a garment fails in
// ways that are hard to see downstream. [CrossCheck] catches that up
// front.
//
// Sidecars are authored as JSONC (JSON with // and /* */ comments and
// trailing commas).
//
// The typical flow:
//
//  1. ReadFile or Parse: JSONC bytes → Description
//  2. Validate: structural checks on the description alone
//  3. CrossCheck: piece, curve, and seam names against a loaded blob
package intent
