// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"

	"github.com/bureau-foundation/geoblob/cmd/geoblob/cli"
	"github.com/bureau-foundation/geoblob/lib/version"
)

// Root builds the geoblob command tree. Commands write their results to
// stdout and their logs, help, and failure reports to stderr.
func Root(stdout, stderr io.Writer) *cli.Command {
	s := streams{stdout: stdout, stderr: stderr}

	return &cli.Command{
		Name: "geoblob",
		Description: `geoblob: read, check, and upgrade garment geometry blobs.

A blob is a versioned binary file holding a garment's mesh: vertices,
faces, named pieces and curves, texture channels, and per-vertex or
per-face geometry data. Every known format revision can be read; blobs
are always written at the current revision.`,
		HelpOutput: stderr,
		Subcommands: []*cli.Command{
			inspectCommand(s),
			checkCommand(s),
			upgradeCommand(s),
			manifestCommand(s),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					return version.Print(stdout, "geoblob")
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Summarize a blob",
				Command:     "geoblob inspect shirt.blob",
			},
			{
				Description: "Check a blob against its design intent",
				Command:     "geoblob check shirt.blob --intent shirt.json",
			},
			{
				Description: "Upgrade a legacy blob in place",
				Command:     "geoblob upgrade legacy.blob --force",
			},
			{
				Description: "Write a manifest into the configured output directory",
				Command:     "GEOBLOB_CONFIG=~/.config/geoblob.yaml geoblob manifest shirt.blob",
			},
		},
	}
}
