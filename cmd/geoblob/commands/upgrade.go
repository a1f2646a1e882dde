// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bureau-foundation/geoblob/cmd/geoblob/cli"
	"github.com/bureau-foundation/geoblob/lib/blob"
)

type upgradeParams struct {
	globalParams
	Force bool `json:"force" flag:"force,f" desc:"overwrite the output file if it exists"`
}

func upgradeCommand(s streams) *cli.Command {
	var params upgradeParams

	return &cli.Command{
		Name:    "upgrade",
		Summary: "Rewrite a blob at the current format revision",
		Description: `Load a blob stored at any known format revision and write it back at
the current revision. Piece membership missing from 0.1 blobs is
reconstructed from their curves; blobs older than 0.3 gain an empty set
of geometry data channels.

The output defaults to a file with the input's name in output.dir when
that is configured, and otherwise to the input itself. An existing
output file is only replaced with --force. The file is written to a
temporary name first and renamed into place.`,
		Usage:  "geoblob upgrade <in> [<out>] [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Upgrade a legacy blob to a new file",
				Command:     "geoblob upgrade legacy.blob shirt.blob",
			},
			{
				Description: "Upgrade in place",
				Command:     "geoblob upgrade shirt.blob --force",
			},
		},
		Run: func(args []string) error {
			if err := checkArgs("upgrade", args, 1, 2, "an input file and an optional output file"); err != nil {
				return err
			}
			session, err := s.start("upgrade", params.globalParams)
			if err != nil {
				return err
			}

			inputPath := args[0]
			outputPath := session.outputPath(inputPath, filepath.Base(inputPath))
			if len(args) == 2 {
				outputPath = args[1]
			}
			return session.upgrade(inputPath, outputPath, params.Force)
		},
	}
}

func (s *session) upgrade(inputPath, outputPath string, force bool) error {
	if !force {
		_, err := os.Stat(outputPath)
		if err == nil {
			return cli.Conflict("%s already exists", outputPath).
				WithHint("Pass --force to replace it.")
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return cli.Internal("stat %s: %w", outputPath, err)
		}
	}

	b, _, err := s.loadBlob(inputPath)
	if err != nil {
		return err
	}
	data, err := b.Save()
	if err != nil {
		return cli.Internal("re-encoding %s: %w", inputPath, err)
	}
	if err := writeFile(outputPath, data); err != nil {
		return cli.Internal("%w", err)
	}

	s.logger.Info("wrote blob",
		"path", outputPath,
		"format_version", b.FormatVersion(),
		"bytes", len(data),
		"digest", blob.FormatHash(blob.Digest(data)),
	)
	fmt.Fprintf(s.stdout, "%s: %s -> %s\n", outputPath, b.OriginFormatVersion(), b.FormatVersion())
	return nil
}
