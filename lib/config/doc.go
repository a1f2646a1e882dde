// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the geoblob
// CLI.
//
// Configuration is loaded from a single file specified by either the
// GEOBLOB_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search. When neither is given the CLI runs with
// [Default].
//
// Variable expansion is performed on output.dir after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No environment
// variables override config values.
//
// Key exports:
//
//   - [Config] -- master struct with Log, Limits, Inspect, Intent, Output
//   - [Default] -- returns a Config with the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other geoblob packages.
package config
