// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blob

import (
	"strings"
	"testing"

	"github.com/zeebo/blake3"
)

func TestDigestIsDomainSeparated(t *testing.T) {
	data := []byte("geometry")
	if Digest(data) == Hash(blake3.Sum256(data)) {
		t.Errorf("Digest equals the unkeyed BLAKE3 hash")
	}
	if Digest(data) != Digest([]byte("geometry")) {
		t.Errorf("Digest is not deterministic")
	}
	if Digest(data) == Digest([]byte("geometrz")) {
		t.Errorf("Digest of different inputs collided")
	}
}

func TestFormatParseHash(t *testing.T) {
	hash := Digest([]byte("round trip"))
	formatted := FormatHash(hash)
	if len(formatted) != 64 || strings.ToLower(formatted) != formatted {
		t.Errorf("FormatHash = %q, want 64 lowercase hex characters", formatted)
	}
	parsed, err := ParseHash(formatted)
	if err != nil {
		t.Fatalf("ParseHash: %v", err)
	}
	if parsed != hash {
		t.Errorf("ParseHash(FormatHash(h)) != h")
	}

	if _, err := ParseHash("abcd"); err == nil {
		t.Errorf("ParseHash accepted a short hash")
	}
	if _, err := ParseHash(strings.Repeat("zz", 32)); err == nil {
		t.Errorf("ParseHash accepted non-hex input")
	}
}
