// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/bureau-foundation/geoblob/cmd/geoblob/cli"
	"github.com/bureau-foundation/geoblob/lib/blobformat"
	"github.com/bureau-foundation/geoblob/lib/manifest"
)

type inspectParams struct {
	globalParams
	cli.JSONOutput
	Raw bool `json:"raw" flag:"raw" desc:"describe the revision as stored, without upconverting"`
}

// storedRevision describes a blob as it is laid out on disk, before any
// upconversion. Revision 0.1 stores no piece membership and no
// geometry data channels.
type storedRevision struct {
	Path             string             `json:"path"`
	Version          blobformat.Version `json:"version"`
	Name             string             `json:"name"`
	Vertices         uint32             `json:"vertices"`
	Faces            uint32             `json:"faces"`
	TextureChannels  uint32             `json:"texture_channels"`
	Has2DCoordinates bool               `json:"has_2d_coordinates"`
	Pieces           []string           `json:"pieces"`
	Curves           []string           `json:"curves"`
	HasMembership    bool               `json:"has_membership"`
	GeomData         []string           `json:"geom_data,omitempty"`
}

func inspectCommand(s streams) *cli.Command {
	var params inspectParams

	return &cli.Command{
		Name:    "inspect",
		Summary: "Describe a blob's contents",
		Description: `Load a blob and print what it contains: counts, pieces with their
vertex counts, curves with their owning piece, and geometry data
channels.

Blobs stored at an older format revision are upconverted on load, and
the listing shows both the stored and the current revision. With --raw
the file is decoded at its stored revision and described without
upconversion; a 0.1 blob then shows piece names only, since that
revision stores no piece membership.

With --json the listing is the blob's manifest (as written by
"geoblob manifest") in JSON form.`,
		Usage:  "geoblob inspect <file> [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Summarize a blob",
				Command:     "geoblob inspect shirt.blob",
			},
			{
				Description: "Show the stored revision of a legacy blob",
				Command:     "geoblob inspect --raw legacy.blob",
			},
			{
				Description: "Piece names as JSON",
				Command:     "geoblob inspect --json shirt.blob | jq '.pieces[].name'",
			},
		},
		Run: func(args []string) error {
			if err := checkArgs("inspect", args, 1, 1, "one blob file"); err != nil {
				return err
			}
			session, err := s.start("inspect", params.globalParams)
			if err != nil {
				return err
			}
			if params.Raw {
				return session.inspectStored(args[0], &params.JSONOutput)
			}
			return session.inspect(args[0], &params.JSONOutput)
		},
	}
}

func (s *session) inspect(path string, output *cli.JSONOutput) error {
	b, data, err := s.loadBlob(path)
	if err != nil {
		return err
	}
	m, err := manifest.Build(b, data)
	if err != nil {
		return cli.Internal("summarizing %s: %w", path, err)
	}
	if done, err := output.EmitJSON(s.stdout, m); done {
		return err
	}

	r := newSummaryRenderer(s.stdout, s.config.Inspect.Color)
	r.heading(fmt.Sprintf("%s  %s", path, b.Name()))
	if m.OriginVersion != m.FormatVersion {
		r.field("format", fmt.Sprintf("%s (stored as %s)", m.FormatVersion, m.OriginVersion))
	} else {
		r.field("format", m.FormatVersion)
	}
	r.field("vertices", m.Vertices)
	r.field("faces", m.Faces)
	r.field("2D coords", yesNo(m.Has2DCoordinates))
	r.field("tex channels", m.TextureChannels)
	r.field("size", fmt.Sprintf("%d bytes", m.EncodedSize))
	r.field("digest", m.Digest)

	pieces := make([][2]string, len(m.Pieces))
	for i, piece := range m.Pieces {
		pieces[i] = [2]string{piece.Name, fmt.Sprintf("%d vertices", piece.Vertices)}
	}
	r.section("pieces", pieces)

	curves := make([][2]string, len(m.Curves))
	for i, curve := range m.Curves {
		owner := fmt.Sprintf("piece %d", curve.Piece)
		if int(curve.Piece) < len(m.Pieces) {
			owner = m.Pieces[curve.Piece].Name
		}
		curves[i] = [2]string{curve.Name, fmt.Sprintf("%d vertices on %s", curve.Vertices, owner)}
	}
	r.section("curves", curves)

	channels := make([][2]string, len(m.GeomData))
	for i, channel := range m.GeomData {
		kind := "per vertex"
		if channel.FaceCentric {
			kind = "per face"
		}
		channels[i] = [2]string{channel.Name, fmt.Sprintf("%d values, %s", channel.Values, kind)}
	}
	r.section("geometry data", channels)
	return nil
}

func (s *session) inspectStored(path string, output *cli.JSONOutput) error {
	data, err := s.readBlobFile(path)
	if err != nil {
		return err
	}
	rev, err := blobformat.Decode(data)
	if err != nil {
		return cli.Validation("%s: %w", path, err)
	}

	mesh := blobformat.MeshOf(rev)
	stored := storedRevision{
		Path:             path,
		Version:          rev.Version(),
		Name:             mesh.Name,
		Vertices:         mesh.VertexCount,
		Faces:            mesh.FaceCount,
		TextureChannels:  mesh.TextureChannelCount,
		Has2DCoordinates: mesh.Has2D,
		Pieces:           blobformat.PieceNames(rev),
		Curves:           make([]string, len(mesh.Curves)),
		HasMembership:    blobformat.HasMembership(rev),
	}
	for i, curve := range mesh.Curves {
		stored.Curves[i] = curve.Name
	}
	if current, ok := rev.(*blobformat.Rev03); ok {
		stored.GeomData = current.GeomDataNames()
	}

	if done, err := output.EmitJSON(s.stdout, stored); done {
		return err
	}

	r := newSummaryRenderer(s.stdout, s.config.Inspect.Color)
	r.heading(fmt.Sprintf("%s  %s", path, stored.Name))
	r.field("stored as", stored.Version)
	r.field("vertices", stored.Vertices)
	r.field("faces", stored.Faces)
	r.field("2D coords", yesNo(stored.Has2DCoordinates))
	r.field("tex channels", stored.TextureChannels)
	if !stored.HasMembership {
		r.note("no piece membership stored; it is reconstructed from curves on load")
	}

	rows := func(names []string) [][2]string {
		result := make([][2]string, len(names))
		for i, name := range names {
			result[i] = [2]string{name, fmt.Sprintf("#%d", i)}
		}
		return result
	}
	r.section("pieces", rows(stored.Pieces))
	r.section("curves", rows(stored.Curves))
	r.section("geometry data", rows(stored.GeomData))
	return nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
