// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Geoblob is the command-line tool for garment geometry blobs. It
// describes blobs at their current or stored format revision, checks
// them (optionally against a design-intent sidecar), upgrades legacy
// revisions, and writes deterministic CBOR manifests.
//
// Run "geoblob --help" for the command list.
package main
