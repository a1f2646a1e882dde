// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestToolError_Hint(t *testing.T) {
	err := Conflict("%s already exists", "shirt.blob")
	if err.Error() != "shirt.blob already exists" {
		t.Errorf("Error() = %q", err.Error())
	}

	chained := err.WithHint("Pass --force to overwrite it.")
	if chained != err {
		t.Error("WithHint should return the same pointer")
	}
	want := "shirt.blob already exists\n\nPass --force to overwrite it."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Category != CategoryConflict {
		t.Errorf("Category = %q, want %q", err.Category, CategoryConflict)
	}
}

func TestToolError_Unwrap(t *testing.T) {
	inner := NotFound("reading blob: %w", fs.ErrNotExist)
	wrapped := fmt.Errorf("inspect: %w", inner)

	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) {
		t.Fatal("errors.As should find ToolError in wrapped chain")
	}
	if toolErr.Category != CategoryNotFound {
		t.Errorf("Category = %q, want %q", toolErr.Category, CategoryNotFound)
	}
	if !errors.Is(wrapped, fs.ErrNotExist) {
		t.Error("errors.Is does not reach the cause through ToolError")
	}
}

func TestToolError_Constructors(t *testing.T) {
	tests := []struct {
		err  *ToolError
		want ErrorCategory
	}{
		{Validation("bad"), CategoryValidation},
		{NotFound("missing"), CategoryNotFound},
		{Conflict("exists"), CategoryConflict},
		{Internal("bug"), CategoryInternal},
	}
	for _, test := range tests {
		if test.err.Category != test.want {
			t.Errorf("%q: Category = %q, want %q", test.err, test.err.Category, test.want)
		}
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 2}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok {
		t.Fatal("ExitError does not expose ExitCode")
	}
	if coder.ExitCode() != 2 {
		t.Errorf("ExitCode() = %d, want 2", coder.ExitCode())
	}
}

func TestEmitJSON(t *testing.T) {
	var output JSONOutput
	var buffer bytes.Buffer

	done, err := output.EmitJSON(&buffer, map[string]int{"pieces": 2})
	if done || err != nil || buffer.Len() != 0 {
		t.Fatalf("EmitJSON without --json = (%v, %v), wrote %q", done, err, buffer.String())
	}

	output.OutputJSON = true
	var nilNames []string
	done, err = output.EmitJSON(&buffer, nilNames)
	if !done || err != nil {
		t.Fatalf("EmitJSON with --json = (%v, %v)", done, err)
	}
	if strings.TrimSpace(buffer.String()) != "[]" {
		t.Errorf("nil slice emitted as %q, want []", buffer.String())
	}
}

func TestNewLoggerJSONWhenNotTerminal(t *testing.T) {
	var buffer bytes.Buffer
	logger := NewLogger(&buffer, 0)
	logger.Info("upgraded", "origin_version", "0.1")
	if !strings.HasPrefix(buffer.String(), "{") || !strings.Contains(buffer.String(), `"origin_version":"0.1"`) {
		t.Errorf("log line = %q, want JSON", buffer.String())
	}

	buffer.Reset()
	logger.Debug("hidden")
	if buffer.Len() != 0 {
		t.Errorf("debug line written at info level: %q", buffer.String())
	}
}
