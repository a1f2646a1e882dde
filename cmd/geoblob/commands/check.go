// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/geoblob/cmd/geoblob/cli"
	"github.com/bureau-foundation/geoblob/lib/intent"
)

type checkParams struct {
	globalParams
	Intent string `json:"intent" flag:"intent" desc:"design-intent JSON sidecar to cross-check against"`
}

func checkCommand(s streams) *cli.Command {
	var params checkParams

	return &cli.Command{
		Name:    "check",
		Summary: "Verify a blob decodes and is self-consistent",
		Description: `Decode a blob, upconverting it if it is stored at an older format
revision, and run its structural checks. Prints "ok" with a one-line
summary on success.

With --intent, the design-intent sidecar is also validated and
cross-checked against the blob: the piece counts must agree, every seam
must name pieces and curves the blob has, and (unless
intent.require_piece_names is false in the config) every blob piece and
attached curve must be named in the sidecar.

Exits 1 with the failures on stderr when any check fails.`,
		Usage:  "geoblob check <file> [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Check a blob",
				Command:     "geoblob check shirt.blob",
			},
			{
				Description: "Check a blob against its design intent",
				Command:     "geoblob check shirt.blob --intent shirt.json",
			},
		},
		Run: func(args []string) error {
			if err := checkArgs("check", args, 1, 1, "one blob file"); err != nil {
				return err
			}
			session, err := s.start("check", params.globalParams)
			if err != nil {
				return err
			}
			return session.check(args[0], params.Intent)
		},
	}
}

func (s *session) check(path, intentPath string) error {
	b, _, err := s.loadBlob(path)
	if err != nil {
		var toolErr *cli.ToolError
		if errors.As(err, &toolErr) && toolErr.Category == cli.CategoryValidation {
			return s.fail("", err)
		}
		return err
	}

	if intentPath != "" {
		description, err := intent.ReadFile(intentPath)
		if err != nil {
			return s.fail(intentPath, err)
		}
		if issues := intent.Validate(description); len(issues) > 0 {
			for _, issue := range issues {
				fmt.Fprintf(s.stderr, "%s: %s\n", intentPath, issue)
			}
			return &cli.ExitError{Code: 1}
		}
		options := intent.Options{RequirePieceNames: s.config.Intent.RequirePieceNames}
		if err := intent.CrossCheck(description, b, options); err != nil {
			return s.fail(path, err)
		}
		s.logger.Debug("cross-checked design intent", "intent", intentPath, "pieces", len(description.Pieces))
	}

	fmt.Fprintf(s.stdout, "ok %s: %s\n", path, b)
	return nil
}

// fail reports err on stderr, prefixed with subject when it is not
// empty, and exits 1. Joined errors are reported one per line.
func (s *session) fail(subject string, err error) error {
	failures := []error{err}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		failures = joined.Unwrap()
	}
	for _, failure := range failures {
		if subject != "" {
			fmt.Fprintf(s.stderr, "%s: %v\n", subject, failure)
		} else {
			fmt.Fprintln(s.stderr, failure)
		}
	}
	return &cli.ExitError{Code: 1}
}
