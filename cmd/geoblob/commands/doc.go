// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the geoblob CLI command tree: inspect, check,
// upgrade, manifest, and version.
//
// Every command accepts --config and --log-level. Configuration is
// resolved per run from --config, then GEOBLOB_CONFIG, then built-in
// defaults (see lib/config). Blob files larger than
// limits.max_blob_bytes are refused before they are read. Loading a blob
// stored at an older format revision logs the upconversion at Info.
package commands
