// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobformat

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching. Every decode, check, and
// conversion failure matches exactly one of them.
var (
	// ErrIO is matched by byte-level failures: truncated buffers,
	// declared payloads larger than the remaining bytes, short headers.
	ErrIO = errors.New("blob io error")

	// ErrConsistency is matched by structural invariant violations
	// found by a self-check, trailing bytes after a decoded body, and
	// piece membership that cannot be reconstructed.
	ErrConsistency = errors.New("blob consistency error")

	// ErrUnsupportedVersion is matched when a header names a format
	// revision this build does not know, including any revision newer
	// than Current.
	ErrUnsupportedVersion = errors.New("unsupported blob version")
)

// IOError reports a read that ran past the end of the buffer. Field is
// the logical field being decoded and Offset the byte position (from
// the start of the buffer, header included) where the read began.
type IOError struct {
	Field  string
	Offset int
	Err    error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s at offset %d: %v", e.Field, e.Offset, e.Err)
}

// Unwrap returns the underlying cause (normally io.ErrUnexpectedEOF).
func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// Violation names the structural condition a ConsistencyError reports.
// Tests and callers compare against these codes rather than message
// text.
type Violation string

const (
	ViolationVertexCount          Violation = "vertex-count"
	ViolationVertex2DCount        Violation = "vertex2d-count"
	ViolationVertex2DUnflagged    Violation = "vertex2d-unflagged"
	ViolationFaceCount            Violation = "face-count"
	ViolationFaceIndex            Violation = "face-index"
	ViolationPieceCount           Violation = "piece-count"
	ViolationPieceVertexIndex     Violation = "piece-vertex-index"
	ViolationPieceVertexDuplicate Violation = "piece-vertex-duplicate"
	ViolationCurveCount           Violation = "curve-count"
	ViolationTextureChannelCount  Violation = "texture-channel-count"
	ViolationTextureChannelLength Violation = "texture-channel-length"
	ViolationCurvePieceIndex      Violation = "curve-piece-index"
	ViolationCurveEmpty           Violation = "curve-empty"
	ViolationCurveVertexIndex     Violation = "curve-vertex-index"
	ViolationGeomDataName         Violation = "geom-data-name"
	ViolationGeomDataLength       Violation = "geom-data-length"
	ViolationUnseedablePiece      Violation = "unseedable-piece"
	ViolationTrailingBytes        Violation = "trailing-bytes"
)

// ConsistencyError reports the first violated structural invariant of
// a revision. Version is the revision the check ran against.
type ConsistencyError struct {
	Version   Version
	Violation Violation
	Message   string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("format %s self-check failed (%s): %s", e.Version, e.Violation, e.Message)
}

// Is reports whether target is ErrConsistency.
func (e *ConsistencyError) Is(target error) bool { return target == ErrConsistency }

// UnsupportedVersionError reports a header naming a revision that is
// not in the revision table.
type UnsupportedVersionError struct {
	Version Version
	Current Version
}

func (e *UnsupportedVersionError) Error() string {
	if e.Current.Less(e.Version) {
		return fmt.Sprintf("blob format %s is newer than this build supports (current %s)", e.Version, e.Current)
	}
	return fmt.Sprintf("blob format %s is not a known revision (current %s)", e.Version, e.Current)
}

// Is reports whether target is ErrUnsupportedVersion.
func (e *UnsupportedVersionError) Is(target error) bool { return target == ErrUnsupportedVersion }

// violation builds a ConsistencyError for version v.
func violation(v Version, kind Violation, format string, args ...any) *ConsistencyError {
	return &ConsistencyError{Version: v, Violation: kind, Message: fmt.Sprintf(format, args...)}
}
