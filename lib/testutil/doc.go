// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for geoblob packages.
//
// [WriteFile] and [ReadFile] move fixtures through the filesystem for
// code that takes paths (the CLI commands and config loading). Files
// live under t.TempDir() and are removed when the test completes.
//
// [UniqueID] generates monotonically increasing identifiers for test
// disambiguation. Use it instead of time.Now() when tests need unique
// names.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no geoblob-internal dependencies.
package testutil
