// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blob

import (
	"errors"

	"github.com/bureau-foundation/geoblob/lib/blobformat"
)

// Sentinels for errors.Is. The first three are the blobformat sentinels
// under shorter names; Load and Save failures match exactly one of
// them.
var (
	ErrIO                 = blobformat.ErrIO
	ErrConsistency        = blobformat.ErrConsistency
	ErrUnsupportedVersion = blobformat.ErrUnsupportedVersion

	// ErrIndexOutOfRange is matched by accessor and setter failures
	// for a piece, curve, or texture channel index the blob does not
	// have.
	ErrIndexOutOfRange = errors.New("index out of range")
)
