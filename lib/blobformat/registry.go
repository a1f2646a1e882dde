// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobformat

// revisionEntry describes one known revision: how to decode its body
// and, for every revision after the first, which revision it converts
// from and the single conversion step that does it.
type revisionEntry struct {
	version Version

	// predecessor is meaningful only when hasPredecessor is set.
	predecessor    Version
	hasPredecessor bool

	decode    func(r *fieldReader) (Revision, error)
	upconvert func(prior Revision) (Revision, error)
}

// revisions is the revision table, oldest first. It is never modified
// after initialization.
var revisions = []revisionEntry{
	{
		version: V01,
		decode:  decodeRev01,
	},
	{
		version:        V02,
		predecessor:    V01,
		hasPredecessor: true,
		decode:         decodeRev02,
		upconvert:      upconvertRev01,
	},
	{
		version:        V03,
		predecessor:    V02,
		hasPredecessor: true,
		decode:         decodeRev03,
		upconvert:      upconvertRev02,
	},
}

// lookupRevision returns the table entry for v.
func lookupRevision(v Version) (revisionEntry, bool) {
	for _, entry := range revisions {
		if entry.version == v {
			return entry, true
		}
	}
	return revisionEntry{}, false
}

// Known returns every revision this build can decode, oldest first.
func Known() []Version {
	versions := make([]Version, len(revisions))
	for i, entry := range revisions {
		versions[i] = entry.version
	}
	return versions
}

// Predecessor returns the revision v declares it converts from. The
// second result is false for the oldest revision and for versions not
// in the table.
func Predecessor(v Version) (Version, bool) {
	entry, ok := lookupRevision(v)
	if !ok || !entry.hasPredecessor {
		return Version{}, false
	}
	return entry.predecessor, true
}
