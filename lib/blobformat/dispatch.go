// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobformat

import "fmt"

// ReadHeader returns the version stored in the first four bytes of
// data.
func ReadHeader(data []byte) (Version, error) {
	r := newFieldReader(data)
	major, err := r.uint16("header major version")
	if err != nil {
		return Version{}, err
	}
	minor, err := r.uint16("header minor version")
	if err != nil {
		return Version{}, err
	}
	return Version{Major: major, Minor: minor}, nil
}

// Decode decodes data as the revision its header names, without
// upconverting. The result has passed that revision's self-check.
//
// A header naming a revision not in the table fails with
// *UnsupportedVersionError. Bytes left over after the body fail with a
// ViolationTrailingBytes consistency error: the declared counts do not
// account for everything that was encoded.
func Decode(data []byte) (Revision, error) {
	version, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}
	entry, ok := lookupRevision(version)
	if !ok {
		return nil, &UnsupportedVersionError{Version: version, Current: Current}
	}

	r := newFieldReader(data)
	r.offset = headerSize
	rev, err := entry.decode(r)
	if err != nil {
		return nil, err
	}
	if r.remaining() != 0 {
		return nil, violation(version, ViolationTrailingBytes,
			"%d bytes remain after the body ends at offset %d of %d", r.remaining(), r.offset, len(data))
	}
	if err := rev.SelfCheck(); err != nil {
		return nil, err
	}
	return rev, nil
}

// Upconvert converts rev to the target revision by walking the declared
// predecessor chain back from target until it reaches rev's revision,
// then applying one conversion step per hop forward. Every step's
// result passes its own self-check before the next step sees it.
// Intermediate revisions are not returned.
//
// rev is returned unchanged when it already is the target revision.
func Upconvert(rev Revision, target Version) (Revision, error) {
	if rev.Version() == target {
		return rev, nil
	}
	entry, ok := lookupRevision(target)
	if !ok {
		return nil, &UnsupportedVersionError{Version: target, Current: Current}
	}
	if !entry.hasPredecessor {
		return nil, fmt.Errorf("no conversion path from %s to %s: %w", rev.Version(), target, ErrUnsupportedVersion)
	}

	prior, err := Upconvert(rev, entry.predecessor)
	if err != nil {
		return nil, err
	}
	next, err := entry.upconvert(prior)
	if err != nil {
		return nil, err
	}
	if err := next.SelfCheck(); err != nil {
		return nil, err
	}
	return next, nil
}

// DecodeCurrent decodes data and upconverts it to the current revision.
// The second result is the version read from the header, which callers
// keep as the blob's origin; conversion never alters it.
func DecodeCurrent(data []byte) (*Rev03, Version, error) {
	rev, err := Decode(data)
	if err != nil {
		return nil, Version{}, err
	}
	origin := rev.Version()
	current, err := Upconvert(rev, Current)
	if err != nil {
		return nil, Version{}, err
	}
	rev03, ok := current.(*Rev03)
	if !ok {
		return nil, Version{}, fmt.Errorf("upconverted blob is revision %s, want %s: %w", current.Version(), Current, ErrUnsupportedVersion)
	}
	return rev03, origin, nil
}

// Encode self-checks rev and encodes it with its own header. The
// returned buffer is exactly the encoded length.
func Encode(rev Revision) ([]byte, error) {
	if err := rev.SelfCheck(); err != nil {
		return nil, err
	}
	size := headerSize + rev.encodedSize()
	w := newFieldWriter(size)
	version := rev.Version()
	w.uint16(version.Major)
	w.uint16(version.Minor)
	rev.encodeBody(w)
	if len(w.data) != size {
		return nil, fmt.Errorf("encoding format %s: wrote %d bytes, expected %d: %w", version, len(w.data), size, ErrIO)
	}
	return w.data, nil
}
