// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package intent

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Description is the design intent for one garment: how each piece of
// the blob is extruded and what it is made of, the 2D curves that
// outline it, and which curves are sewn together.
type Description struct {
	Name   string  `json:"name,omitempty"`
	Pieces []Piece `json:"pieces"`
	Sewing []Seam  `json:"sewing,omitempty"`
}

// Piece describes one blob piece, matched by Name.
type Piece struct {
	Name      string     `json:"name"`
	Extrusion *Extrusion `json:"extrusion,omitempty"`
	Fabric    *Fabric    `json:"fabric,omitempty"`
	Boundary  []Curve    `json:"boundary,omitempty"`
	Internals []Curve    `json:"internals,omitempty"`
}

// Extrusion is the edge treatment and thickness of a piece.
type Extrusion struct {
	Type      string  `json:"type"`
	Thickness float64 `json:"thickness"`
}

// Fabric names the material model of a piece. Parameters are kept as
// raw JSON; their shape depends on Type and only the simulator reads
// them.
type Fabric struct {
	Type        string          `json:"type"`
	Name        string          `json:"name,omitempty"`
	Multipliers json.RawMessage `json:"multipliers,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// Curve is a named 2D design curve of a piece, matched to the blob
// curve of the same name attached to that piece.
type Curve struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Points []Point `json:"points,omitempty"`
}

// Point is one control point of a design curve.
type Point struct {
	Location [2]float64 `json:"loc"`
}

// Seam joins a curve of one piece to a curve of another (or the same)
// piece.
type Seam struct {
	First    SeamSide  `json:"first"`
	Second   SeamSide  `json:"second"`
	Reverse  bool      `json:"reverse,omitempty"`
	SewnFold *SewnFold `json:"sewn_fold,omitempty"`
}

// SeamSide names one side of a seam by piece and curve name.
type SeamSide struct {
	Piece string `json:"piece"`
	Curve string `json:"curve"`
}

// SewnFold is the resting fold angle of a seam.
type SewnFold struct {
	Angle float64 `json:"angle"`
}

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals the result into a Description.
func Parse(data []byte) (*Description, error) {
	stripped := jsonc.ToJSON(data)

	var description Description
	if err := json.Unmarshal(stripped, &description); err != nil {
		return nil, fmt.Errorf("parsing design intent: %w", err)
	}

	return &description, nil
}

// ReadFile reads a JSONC design-intent file from disk and parses it.
func ReadFile(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	description, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return description, nil
}

// piece returns the described piece with the given name.
func (d *Description) piece(name string) (*Piece, bool) {
	for i := range d.Pieces {
		if d.Pieces[i].Name == name {
			return &d.Pieces[i], true
		}
	}
	return nil, false
}

// hasCurve reports whether the piece lists a boundary or internal curve
// with the given name.
func (p *Piece) hasCurve(name string) bool {
	for _, curve := range p.Boundary {
		if curve.Name == name {
			return true
		}
	}
	for _, curve := range p.Internals {
		if curve.Name == name {
			return true
		}
	}
	return false
}
