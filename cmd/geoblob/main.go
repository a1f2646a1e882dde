// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/geoblob/cmd/geoblob/commands"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		// Commands that print their own report (like check) return an
		// error carrying the exit code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return commands.Root(os.Stdout, os.Stderr).Execute(args)
}
