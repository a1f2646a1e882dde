// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the shared CBOR encoding configuration.
//
// The geometry blob itself has a hand-specified binary layout (package
// blobformat). Everything geoblob writes about a blob, such as the
// manifest, is CBOR encoded through this package so that every writer
// produces identical bytes for identical data. The encoder uses Core
// Deterministic Encoding (RFC 8949 §4.2): sorted map keys, smallest
// integer encoding, no indefinite-length items.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// # Struct Tag Rules
//
//   - `cbor` tag: the type is only ever serialized as CBOR.
//   - `json` tag: the type is serialized as both JSON (CLI --json
//     output) and CBOR. fxamacker/cbor v2 reads `json` tags when `cbor`
//     tags are absent, so one tag controls naming for both.
//
// Never use both tags on the same field.
package codec
