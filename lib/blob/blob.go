// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blob

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/bureau-foundation/geoblob/lib/blobformat"
)

// Aliases for the element types callers read and write through a Blob.
type (
	Version     = blobformat.Version
	Piece       = blobformat.Piece
	Curve       = blobformat.Curve
	GeomChannel = blobformat.GeomChannel
)

// Blob is an in-memory geometry blob at the current format revision.
// The zero value is not usable; start from [New] or [Load].
//
// A Blob owns all of its data. Accessors return copies and setters copy
// their arguments, so nothing a caller holds aliases the blob. A Blob
// is not safe for concurrent mutation.
type Blob struct {
	rev    *blobformat.Rev03
	origin Version
}

// New returns an empty blob at the current revision. An empty blob
// passes SelfCheck; populate it with the setters.
func New() *Blob {
	return &Blob{
		rev: &blobformat.Rev03{GeomData: map[string]GeomChannel{}},
	}
}

// Load decodes data, upconverting from any older known revision, and
// returns a blob that has passed the current revision's self-check.
// The version read from the header is kept as OriginFormatVersion.
func Load(data []byte) (*Blob, error) {
	rev, origin, err := blobformat.DecodeCurrent(data)
	if err != nil {
		return nil, fmt.Errorf("loading blob: %w", err)
	}
	if rev.GeomData == nil {
		rev.GeomData = map[string]GeomChannel{}
	}
	return &Blob{rev: rev, origin: origin}, nil
}

// Save self-checks the blob and encodes it at the current revision.
// A blob that fails its self-check is not written.
func (b *Blob) Save() ([]byte, error) {
	data, err := blobformat.Encode(b.rev)
	if err != nil {
		return nil, fmt.Errorf("saving blob %q: %w", b.rev.Name, err)
	}
	return data, nil
}

// SelfCheck verifies every structural invariant and returns the first
// violation as an error matching ErrConsistency. It never modifies the
// blob.
func (b *Blob) SelfCheck() error {
	return b.rev.SelfCheck()
}

// FormatVersion is the revision the blob is held and saved at, always
// blobformat.Current.
func (b *Blob) FormatVersion() Version {
	return b.rev.Version()
}

// OriginFormatVersion is the revision the blob was loaded from. It is
// the zero Version for a blob built with New.
func (b *Blob) OriginFormatVersion() Version {
	return b.origin
}

// Equal reports whether b and other hold the same geometry. Floating
// point values compare by bit pattern, so NaN payloads and the sign of
// zero matter. The origin version is not part of the comparison.
func (b *Blob) Equal(other *Blob) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	x, y := b.rev, other.rev
	return x.Name == y.Name &&
		x.TextureChannelCount == y.TextureChannelCount &&
		x.Has2D == y.Has2D &&
		x.VertexCount == y.VertexCount &&
		x.FaceCount == y.FaceCount &&
		x.PieceCount == y.PieceCount &&
		x.CurveCount == y.CurveCount &&
		slices.EqualFunc(x.Vertices3D, y.Vertices3D, equalVec3) &&
		slices.EqualFunc(x.Vertices2D, y.Vertices2D, equalVec2) &&
		slices.EqualFunc(x.TextureChannels, y.TextureChannels, func(p, q [][2]float32) bool {
			return slices.EqualFunc(p, q, equalVec2)
		}) &&
		slices.Equal(x.Faces, y.Faces) &&
		slices.EqualFunc(x.Pieces, y.Pieces, func(p, q Piece) bool {
			return p.Name == q.Name && slices.Equal(p.Vertices, q.Vertices)
		}) &&
		slices.EqualFunc(x.Curves, y.Curves, func(p, q Curve) bool {
			return p.Name == q.Name && p.PieceIndex == q.PieceIndex && slices.Equal(p.Vertices, q.Vertices)
		}) &&
		maps.EqualFunc(x.GeomData, y.GeomData, func(p, q GeomChannel) bool {
			return p.FaceCentric == q.FaceCentric && slices.EqualFunc(p.Values, q.Values, equalFloat64)
		})
}

// String returns a one-line summary of the blob's counts.
func (b *Blob) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "Blob [ %s ]: %d", b.rev.Name, b.rev.VertexCount)
	if b.rev.Has2D {
		s.WriteString(" vertices (w/ 2D), ")
	} else {
		s.WriteString(" vertices, ")
	}
	fmt.Fprintf(&s, "%d faces, %d pieces, %d curves, %d texture channels",
		b.rev.FaceCount, b.rev.PieceCount, b.rev.CurveCount, b.rev.TextureChannelCount)
	if n := len(b.rev.GeomData); n > 0 {
		fmt.Fprintf(&s, ", %d geometry data channels", n)
	}
	return s.String()
}

// Revision returns a deep copy of the underlying current-revision
// value, for callers that work with blobformat directly.
func (b *Blob) Revision() *blobformat.Rev03 {
	return b.rev.Clone()
}

func equalVec2(p, q [2]float32) bool {
	return math.Float32bits(p[0]) == math.Float32bits(q[0]) &&
		math.Float32bits(p[1]) == math.Float32bits(q[1])
}

func equalVec3(p, q [3]float32) bool {
	return math.Float32bits(p[0]) == math.Float32bits(q[0]) &&
		math.Float32bits(p[1]) == math.Float32bits(q[1]) &&
		math.Float32bits(p[2]) == math.Float32bits(q[2])
}

func equalFloat64(p, q float64) bool {
	return math.Float64bits(p) == math.Float64bits(q)
}
