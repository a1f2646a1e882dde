// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package intent

import (
	"fmt"
	"slices"
)

var (
	extrusionTypes = []string{"round", "block", "double"}
	fabricTypes    = []string{"avametric_v1", "gerber"}
	curveTypes     = []string{"bezier", "line", "polyline"}
)

// Validate checks a Description for structural issues on its own,
// without a blob. Returns a list of human-readable issue descriptions.
// An empty list means the description is valid.
//
// Structural checks include:
//   - Every piece has a non-empty, unique name
//   - Extrusion type is round, block, or double
//   - Fabric type is avametric_v1 or gerber
//   - Every curve has a name and a type of bezier, line, or polyline
//   - Curve names are unique within a piece
//   - Every seam names a piece and a curve on both sides
func Validate(description *Description) []string {
	var issues []string

	pieceNames := make(map[string]int, len(description.Pieces))
	for index, piece := range description.Pieces {
		prefix := fmt.Sprintf("pieces[%d]", index)
		if piece.Name == "" {
			issues = append(issues, prefix+": name is required")
		} else if firstIndex, exists := pieceNames[piece.Name]; exists {
			issues = append(issues, fmt.Sprintf(
				"%s %q: duplicate piece name (first used at pieces[%d])",
				prefix, piece.Name, firstIndex,
			))
		} else {
			pieceNames[piece.Name] = index
		}

		if piece.Extrusion != nil && !slices.Contains(extrusionTypes, piece.Extrusion.Type) {
			issues = append(issues, fmt.Sprintf("%s %q: extrusion type %q must be one of %v",
				prefix, piece.Name, piece.Extrusion.Type, extrusionTypes))
		}
		if piece.Fabric != nil && !slices.Contains(fabricTypes, piece.Fabric.Type) {
			issues = append(issues, fmt.Sprintf("%s %q: fabric type %q must be one of %v",
				prefix, piece.Name, piece.Fabric.Type, fabricTypes))
		}

		curveNames := make(map[string]bool)
		checkCurves := func(kind string, curves []Curve) {
			for curveIndex, curve := range curves {
				curvePrefix := fmt.Sprintf("%s.%s[%d]", prefix, kind, curveIndex)
				if curve.Name == "" {
					issues = append(issues, curvePrefix+": name is required")
				} else if curveNames[curve.Name] {
					issues = append(issues, fmt.Sprintf("%s %q: duplicate curve name in piece %q",
						curvePrefix, curve.Name, piece.Name))
				}
				curveNames[curve.Name] = true
				if !slices.Contains(curveTypes, curve.Type) {
					issues = append(issues, fmt.Sprintf("%s %q: curve type %q must be one of %v",
						curvePrefix, curve.Name, curve.Type, curveTypes))
				}
			}
		}
		checkCurves("boundary", piece.Boundary)
		checkCurves("internals", piece.Internals)
	}

	for index, seam := range description.Sewing {
		for _, side := range []struct {
			label string
			side  SeamSide
		}{{"first", seam.First}, {"second", seam.Second}} {
			if side.side.Piece == "" || side.side.Curve == "" {
				issues = append(issues, fmt.Sprintf("sewing[%d].%s: piece and curve are required", index, side.label))
			}
		}
	}

	return issues
}
