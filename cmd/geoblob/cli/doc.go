// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the geoblob CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a parameter struct whose tagged
// fields become pflag flags ([FlagsFromParams]), and a Run function.
// Commands are assembled into a tree in cmd/geoblob/commands and
// dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3).
//
// Supporting pieces:
//
//   - [NewCommandLogger]: slog logger, text on a terminal, JSON otherwise.
//   - [JSONOutput]: embeddable --json flag with [JSONOutput.EmitJSON].
//   - [ToolError]: categorized errors (validation, not found, conflict,
//     internal) that still unwrap to the underlying cause.
//   - [ExitError]: a non-zero exit after the command wrote its own report.
package cli
