// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobformat

import (
	"fmt"
	"strconv"
	"strings"
)

// Version identifies a format revision by its on-disk header fields.
type Version struct {
	Major uint16
	Minor uint16
}

// Known format revisions.
var (
	V01 = Version{Major: 0, Minor: 1}
	V02 = Version{Major: 0, Minor: 2}
	V03 = Version{Major: 0, Minor: 3}
)

// Current is the revision this build decodes into and encodes. Every
// blob handed to a consumer has been upconverted to this revision.
var Current = V03

// headerSize is the encoded size of the two uint16 version fields.
const headerSize = 4

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}

// IsZero reports whether v is the zero Version, used for blobs that
// were constructed rather than read from bytes.
func (v Version) IsZero() bool {
	return v == Version{}
}

// ParseVersion parses the "major.minor" form String produces.
func ParseVersion(s string) (Version, error) {
	majorText, minorText, ok := strings.Cut(s, ".")
	if !ok {
		return Version{}, fmt.Errorf("format version %q is not major.minor", s)
	}
	major, err := strconv.ParseUint(majorText, 10, 16)
	if err != nil {
		return Version{}, fmt.Errorf("format version %q: major: %w", s, err)
	}
	minor, err := strconv.ParseUint(minorText, 10, 16)
	if err != nil {
		return Version{}, fmt.Errorf("format version %q: minor: %w", s, err)
	}
	return Version{Major: uint16(major), Minor: uint16(minor)}, nil
}

// MarshalText encodes v as "major.minor".
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses the "major.minor" form.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
