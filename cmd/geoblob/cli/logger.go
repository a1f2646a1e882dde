// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for CLI command operations
// at the given level. When stderr is a terminal, uses slog.TextHandler
// for human-readable output. When stderr is piped or redirected (CI,
// scripts, batch conversion jobs), uses slog.JSONHandler.
//
// Callers scope the logger with command-specific context via With():
//
//	logger := cli.NewCommandLogger(level).With(
//	    "command", "upgrade",
//	    "path", inputPath,
//	)
func NewCommandLogger(level slog.Level) *slog.Logger {
	return NewLogger(os.Stderr, level)
}

// NewLogger is [NewCommandLogger] writing to w. The text handler is
// chosen only when w is a terminal.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if IsTerminal(w) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

// IsTerminal reports whether w is a file descriptor attached to a
// terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
