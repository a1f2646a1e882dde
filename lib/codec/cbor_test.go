// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bureau-foundation/geoblob/lib/blobformat"
)

// sampleRecord uses cbor struct tags (the convention for CBOR-only
// types).
type sampleRecord struct {
	Name     string             `cbor:"name"`
	Comment  string             `cbor:"comment,omitempty"`
	Vertices uint32             `cbor:"vertices"`
	Format   blobformat.Version `cbor:"format"`
}

// sampleDualRecord uses json struct tags (types shared with JSON
// output, relying on fxamacker's fallback).
type sampleDualRecord struct {
	Pieces int    `json:"pieces"`
	Name   string `json:"name"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleRecord{
		Name:     "shirt",
		Comment:  "front and back",
		Vertices: 1024,
		Format:   blobformat.V03,
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded sampleRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	record := map[string]any{"vertices": 4, "name": "quad", "faces": 2}

	first, err := Marshal(record)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	for i := 0; i < 10; i++ {
		next, err := Marshal(record)
		if err != nil {
			t.Fatalf("Marshal %d: %v", i, err)
		}
		if !bytes.Equal(first, next) {
			t.Fatalf("deterministic encoding violated: %x != %x", first, next)
		}
	}
}

func TestVersionEncodesAsText(t *testing.T) {
	data, err := Marshal(sampleRecord{Name: "q", Format: blobformat.V01})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	notation, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(notation, `"format": "0.1"`) {
		t.Errorf("notation %q does not carry the version as text", notation)
	}
}

func TestJSONTagFallback(t *testing.T) {
	original := sampleDualRecord{Pieces: 3, Name: "dress"}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded sampleDualRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("json-tag roundtrip mismatch: got %+v, want %+v", decoded, original)
	}

	var generic map[string]any
	if err := Unmarshal(data, &generic); err != nil {
		t.Fatalf("Unmarshal into map: %v", err)
	}
	if generic["name"] != "dress" {
		t.Errorf("generic decode = %v, want name=dress", generic)
	}
}

func TestOmitemptyRespected(t *testing.T) {
	withComment := sampleRecord{Name: "a", Comment: "x", Vertices: 1}
	withoutComment := sampleRecord{Name: "a", Vertices: 1}

	dataWith, err := Marshal(withComment)
	if err != nil {
		t.Fatal(err)
	}
	dataWithout, err := Marshal(withoutComment)
	if err != nil {
		t.Fatal(err)
	}
	if len(dataWithout) >= len(dataWith) {
		t.Errorf("omitempty not effective: without=%d bytes, with=%d bytes",
			len(dataWithout), len(dataWith))
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var record sampleRecord
	if err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &record); err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestUnmarshalInvalidVersionText(t *testing.T) {
	data, err := Marshal(map[string]any{"name": "q", "format": "zero.three"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var record sampleRecord
	if err := Unmarshal(data, &record); err == nil {
		t.Error("Unmarshal accepted a malformed version string")
	}
}

func BenchmarkMarshal(b *testing.B) {
	record := sampleRecord{Name: "shirt", Vertices: 1024, Format: blobformat.V03}

	b.ReportAllocs()
	for b.Loop() {
		Marshal(record)
	}
}
