// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blobformat

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// requireViolation fails the test unless err is a *ConsistencyError
// reporting want.
func requireViolation(t *testing.T, err error, want Violation) *ConsistencyError {
	t.Helper()
	if err == nil {
		t.Fatalf("got nil error, want violation %s", want)
	}
	if !errors.Is(err, ErrConsistency) {
		t.Fatalf("error %v does not match ErrConsistency", err)
	}
	var consistency *ConsistencyError
	if !errors.As(err, &consistency) {
		t.Fatalf("error is %T, want *ConsistencyError", err)
	}
	if consistency.Violation != want {
		t.Fatalf("violation = %s, want %s (%v)", consistency.Violation, want, err)
	}
	return consistency
}

func TestSelfCheckAcceptsValidRevisions(t *testing.T) {
	rev03 := twoPanelRev03()
	if err := rev03.SelfCheck(); err != nil {
		t.Errorf("Rev03.SelfCheck: %v", err)
	}

	rev02 := &Rev02{Mesh: rev03.Mesh.Clone(), Pieces: clonePieces(rev03.Pieces)}
	if err := rev02.SelfCheck(); err != nil {
		t.Errorf("Rev02.SelfCheck: %v", err)
	}

	rev01 := &Rev01{Mesh: quadMesh(), PieceNames: []string{"front"}}
	if err := rev01.SelfCheck(); err != nil {
		t.Errorf("Rev01.SelfCheck: %v", err)
	}
}

func TestSelfCheckViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Rev03)
		want   Violation
	}{
		{
			name:   "short 3D vertices",
			mutate: func(r *Rev03) { r.Vertices3D = r.Vertices3D[:5] },
			want:   ViolationVertexCount,
		},
		{
			name:   "short 2D vertices",
			mutate: func(r *Rev03) { r.Vertices2D = r.Vertices2D[:5] },
			want:   ViolationVertex2DCount,
		},
		{
			name:   "2D vertices without flag",
			mutate: func(r *Rev03) { r.Has2D = false },
			want:   ViolationVertex2DUnflagged,
		},
		{
			name:   "face count exceeds faces",
			mutate: func(r *Rev03) { r.FaceCount = 3 },
			want:   ViolationFaceCount,
		},
		{
			name:   "face index out of range",
			mutate: func(r *Rev03) { r.Faces[1][2] = 6 },
			want:   ViolationFaceIndex,
		},
		{
			name:   "piece count exceeds pieces",
			mutate: func(r *Rev03) { r.PieceCount = 3 },
			want:   ViolationPieceCount,
		},
		{
			name:   "piece vertex out of range",
			mutate: func(r *Rev03) { r.Pieces[0].Vertices = []uint32{0, 1, 9} },
			want:   ViolationPieceVertexIndex,
		},
		{
			name:   "piece vertex listed twice",
			mutate: func(r *Rev03) { r.Pieces[1].Vertices = []uint32{3, 4, 4} },
			want:   ViolationPieceVertexDuplicate,
		},
		{
			name:   "curve count exceeds curves",
			mutate: func(r *Rev03) { r.CurveCount = 3 },
			want:   ViolationCurveCount,
		},
		{
			name:   "texture channel count mismatch",
			mutate: func(r *Rev03) { r.TextureChannelCount = 1 },
			want:   ViolationTextureChannelCount,
		},
		{
			name:   "short texture channel",
			mutate: func(r *Rev03) { r.TextureChannels[1] = r.TextureChannels[1][:5] },
			want:   ViolationTextureChannelLength,
		},
		{
			name:   "curve attached to missing piece",
			mutate: func(r *Rev03) { r.Curves[1].PieceIndex = 2 },
			want:   ViolationCurvePieceIndex,
		},
		{
			name:   "curve without vertices",
			mutate: func(r *Rev03) { r.Curves[1].Vertices = nil },
			want:   ViolationCurveEmpty,
		},
		{
			name:   "curve vertex out of range",
			mutate: func(r *Rev03) { r.Curves[0].Vertices = []uint32{0, 6} },
			want:   ViolationCurveVertexIndex,
		},
		{
			name:   "unnamed geometry data channel",
			mutate: func(r *Rev03) { r.GeomData[""] = GeomChannel{} },
			want:   ViolationGeomDataName,
		},
		{
			name: "geometry data not a multiple of face count",
			mutate: func(r *Rev03) {
				r.GeomData["thickness"] = GeomChannel{FaceCentric: true, Values: []float64{1, 2, 3}}
			},
			want: ViolationGeomDataLength,
		},
		{
			name: "geometry data not a multiple of vertex count",
			mutate: func(r *Rev03) {
				r.GeomData["rest-uv"] = GeomChannel{Values: []float64{1, 2, 3, 4}}
			},
			want: ViolationGeomDataLength,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rev := twoPanelRev03()
			test.mutate(rev)
			requireViolation(t, rev.SelfCheck(), test.want)
		})
	}
}

func TestSelfCheckReportsFirstViolation(t *testing.T) {
	rev := twoPanelRev03()
	rev.Faces[0][0] = 99
	rev.Curves[0].Vertices = nil
	rev.Vertices3D = rev.Vertices3D[:1]

	consistency := requireViolation(t, rev.SelfCheck(), ViolationVertexCount)
	if consistency.Version != V03 {
		t.Errorf("version = %s, want %s", consistency.Version, V03)
	}

	rev.Vertices3D = twoPanelRev03().Vertices3D
	requireViolation(t, rev.SelfCheck(), ViolationFaceIndex)
}

func TestSelfCheckEmptyGeomChannelAllowed(t *testing.T) {
	rev := twoPanelRev03()
	rev.GeomData["empty"] = GeomChannel{FaceCentric: true}
	if err := rev.SelfCheck(); err != nil {
		t.Errorf("SelfCheck with an empty channel: %v", err)
	}
}

func TestSelfCheckRev01PieceCount(t *testing.T) {
	rev := &Rev01{Mesh: quadMesh(), PieceNames: []string{"front", "back"}}
	consistency := requireViolation(t, rev.SelfCheck(), ViolationPieceCount)
	if consistency.Version != V01 {
		t.Errorf("version = %s, want %s", consistency.Version, V01)
	}
}

func TestSelfCheckIsIdempotent(t *testing.T) {
	valid := twoPanelRev03()
	before := valid.Clone()
	for i := 0; i < 3; i++ {
		if err := valid.SelfCheck(); err != nil {
			t.Fatalf("SelfCheck call %d: %v", i, err)
		}
	}
	if diff := cmp.Diff(before, valid); diff != "" {
		t.Errorf("SelfCheck modified a valid revision (-before +after):\n%s", diff)
	}

	invalid := twoPanelRev03()
	invalid.Curves[1].PieceIndex = 7
	first := invalid.SelfCheck()
	second := invalid.SelfCheck()
	if first == nil || second == nil {
		t.Fatalf("SelfCheck on invalid revision returned nil")
	}
	if first.Error() != second.Error() {
		t.Errorf("repeated SelfCheck disagrees:\n  %v\n  %v", first, second)
	}
	if invalid.Curves[1].PieceIndex != 7 {
		t.Errorf("SelfCheck repaired the curve piece index to %d", invalid.Curves[1].PieceIndex)
	}
}
