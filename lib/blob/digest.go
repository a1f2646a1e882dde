// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blob

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest of an encoded blob.
type Hash [32]byte

// meshDomainKey keys the digest so that blob content addresses never
// collide with BLAKE3 hashes of the same bytes taken for another
// purpose. It is the ASCII domain name zero-padded to 32 bytes.
// Changing it invalidates every recorded digest.
var meshDomainKey = [32]byte{
	'g', 'e', 'o', 'b', 'l', 'o', 'b', '.', 'm', 'e', 's', 'h',
}

// Digest returns the mesh-domain BLAKE3 keyed hash of an encoded blob.
// Hash the output of Save, not a decoded Blob: two files that decode to
// equal blobs but differ in revision or reserved bytes have different
// digests.
func Digest(data []byte) Hash {
	hasher, err := blake3.NewKeyed(meshDomainKey[:])
	if err != nil {
		panic("blob: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}

// FormatHash returns the lowercase hex encoding of hash.
func FormatHash(hash Hash) string {
	return hex.EncodeToString(hash[:])
}

// ParseHash parses a 64-character hex string into a Hash.
func ParseHash(hexString string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return hash, fmt.Errorf("parsing blob hash: %w", err)
	}
	if len(decoded) != len(hash) {
		return hash, fmt.Errorf("blob hash is %d bytes, want %d", len(decoded), len(hash))
	}
	copy(hash[:], decoded)
	return hash, nil
}
