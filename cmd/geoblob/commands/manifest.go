// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/bureau-foundation/geoblob/cmd/geoblob/cli"
	"github.com/bureau-foundation/geoblob/lib/codec"
	"github.com/bureau-foundation/geoblob/lib/manifest"
)

type manifestParams struct {
	globalParams
	Output string `json:"output" flag:"output,o" desc:"manifest path, or - for stdout (default: <file>.manifest.cbor)"`
	Diag   bool   `json:"diag"   flag:"diag"     desc:"print the manifest in CBOR diagnostic notation instead of writing it"`
	Verify string `json:"verify" flag:"verify"   desc:"check the blob against an existing manifest instead of writing one"`
}

func manifestCommand(s streams) *cli.Command {
	var params manifestParams

	return &cli.Command{
		Name:    "manifest",
		Summary: "Write or verify a blob's CBOR manifest",
		Description: `Build a manifest for a blob: its name, stored and current format
revisions, counts, pieces, curves, geometry data channels, size, and
BLAKE3 digest. The manifest is deterministic CBOR, so identical blobs
produce byte-identical manifests.

By default the manifest is written as <file>.manifest.cbor in
output.dir, or next to the blob when output.dir is not configured.
Existing manifests are replaced. With --diag the manifest is printed in
CBOR diagnostic notation. With --verify the blob's size and digest are
compared to an existing manifest and nothing is written.`,
		Usage:  "geoblob manifest <file> [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Write shirt.blob.manifest.cbor",
				Command:     "geoblob manifest shirt.blob",
			},
			{
				Description: "Inspect the manifest encoding",
				Command:     "geoblob manifest shirt.blob --diag",
			},
			{
				Description: "Check a blob has not changed since its manifest was written",
				Command:     "geoblob manifest shirt.blob --verify shirt.blob.manifest.cbor",
			},
		},
		Run: func(args []string) error {
			if err := checkArgs("manifest", args, 1, 1, "one blob file"); err != nil {
				return err
			}
			session, err := s.start("manifest", params.globalParams)
			if err != nil {
				return err
			}
			if params.Verify != "" {
				return session.verifyManifest(args[0], params.Verify)
			}
			return session.manifest(args[0], params.Output, params.Diag)
		},
	}
}

func (s *session) manifest(path, outputPath string, diag bool) error {
	b, data, err := s.loadBlob(path)
	if err != nil {
		return err
	}
	m, err := manifest.Build(b, data)
	if err != nil {
		return cli.Internal("summarizing %s: %w", path, err)
	}
	encoded, err := manifest.Marshal(m)
	if err != nil {
		return cli.Internal("%w", err)
	}

	if diag {
		notation, err := codec.Diagnose(encoded)
		if err != nil {
			return cli.Internal("diagnosing manifest: %w", err)
		}
		fmt.Fprintln(s.stdout, notation)
		return nil
	}

	if outputPath == "-" {
		_, err := s.stdout.Write(encoded)
		return err
	}
	if outputPath == "" {
		outputPath = s.outputPath(path, filepath.Base(path)+".manifest.cbor")
	}
	if err := writeFile(outputPath, encoded); err != nil {
		return cli.Internal("%w", err)
	}
	s.logger.Info("wrote manifest", "path", outputPath, "blob", path, "digest", m.Digest)
	return nil
}

func (s *session) verifyManifest(path, manifestPath string) error {
	data, err := s.readBlobFile(path)
	if err != nil {
		return err
	}
	encoded, err := s.readBlobFile(manifestPath)
	if err != nil {
		return err
	}
	m, err := manifest.Unmarshal(encoded)
	if err != nil {
		return cli.Validation("%s: %w", manifestPath, err)
	}
	if err := m.Verify(data); err != nil {
		return s.fail(path, err)
	}
	fmt.Fprintf(s.stdout, "ok %s matches %s\n", path, manifestPath)
	return nil
}
