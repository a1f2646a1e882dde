// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/bureau-foundation/geoblob/lib/blobformat"
)

// These variables are set via -ldflags at build time.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// Info returns a formatted version string suitable for --version output.
func Info() string {
	dirty := ""
	if GitDirty == "true" {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", Version, GitCommit, dirty, BuildTime)
}

// Full returns detailed version information including Go version and
// the blob format revisions the build reads and writes.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s\n  Blob format: %s (reads %s)",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH,
		blobformat.Current, knownFormats())
}

// Short returns just the version number.
func Short() string {
	return Version
}

// Commit returns the git commit SHA.
func Commit() string {
	return GitCommit
}

// Print writes "<binary> <Full()>" and a trailing newline to w.
func Print(w io.Writer, binary string) error {
	_, err := fmt.Fprintf(w, "%s %s\n", binary, Full())
	return err
}

func knownFormats() string {
	var formats string
	for i, v := range blobformat.Known() {
		if i > 0 {
			formats += ", "
		}
		formats += v.String()
	}
	return formats
}
