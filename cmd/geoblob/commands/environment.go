// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bureau-foundation/geoblob/cmd/geoblob/cli"
	"github.com/bureau-foundation/geoblob/lib/blob"
	"github.com/bureau-foundation/geoblob/lib/config"
)

// globalParams is embedded in every command's parameter struct so that
// --config and --log-level are accepted wherever they appear.
type globalParams struct {
	ConfigPath string `json:"config"    flag:"config"    desc:"path to a geoblob.yaml config file (default: $GEOBLOB_CONFIG)"`
	LogLevel   string `json:"log_level" flag:"log-level" desc:"log level override: debug, info, warn, error"`
}

// streams are the writers commands report to. main passes the process's
// stdout and stderr; tests pass buffers.
type streams struct {
	stdout io.Writer
	stderr io.Writer
}

// session is the per-invocation state a command runs with.
type session struct {
	streams
	config *config.Config
	logger *slog.Logger
}

// start resolves configuration and the logger for one command run.
// Configuration comes from --config, then GEOBLOB_CONFIG, then built-in
// defaults; --log-level overrides log.level from any of them.
func (s streams) start(command string, global globalParams) (*session, error) {
	var cfg *config.Config
	var err error
	switch {
	case global.ConfigPath != "":
		cfg, err = config.LoadFile(global.ConfigPath)
	case os.Getenv(config.EnvVar) != "":
		cfg, err = config.Load()
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	if global.LogLevel != "" {
		cfg.Log.Level = global.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration: %w", err)
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, cli.Validation("%w", err)
	}

	return &session{
		streams: s,
		config:  cfg,
		logger:  cli.NewLogger(s.stderr, level).With("command", command),
	}, nil
}

// readBlobFile reads path, refusing files larger than
// limits.max_blob_bytes before reading them.
func (s *session) readBlobFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, cli.NotFound("blob file %s does not exist", path)
	}
	if err != nil {
		return nil, cli.Internal("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, cli.Validation("%s is a directory, not a blob file", path)
	}
	if limit := s.config.Limits.MaxBlobBytes; info.Size() > limit {
		return nil, cli.Validation("%s is %d bytes, larger than limits.max_blob_bytes (%d)", path, info.Size(), limit).
			WithHint("Raise limits.max_blob_bytes in the config file if this blob is expected.")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cli.Internal("reading %s: %w", path, err)
	}
	return data, nil
}

// loadBlob reads and decodes path at the current format revision. It
// returns the file's bytes alongside the blob for digesting. Blobs
// stored at an older revision are logged as they are upconverted.
func (s *session) loadBlob(path string) (*blob.Blob, []byte, error) {
	data, err := s.readBlobFile(path)
	if err != nil {
		return nil, nil, err
	}

	b, err := blob.Load(data)
	if err != nil {
		return nil, nil, cli.Validation("%s: %w", path, err)
	}

	if b.OriginFormatVersion() != b.FormatVersion() {
		s.logger.Info("upconverted blob",
			"path", path,
			"origin_version", b.OriginFormatVersion(),
			"format_version", b.FormatVersion(),
		)
	}
	s.logger.Debug("loaded blob",
		"path", path,
		"bytes", len(data),
		"pieces", b.NumPieces(),
		"curves", b.NumCurves(),
	)
	return b, data, nil
}

// outputPath places a file named name in output.dir when it is
// configured, otherwise next to the input.
func (s *session) outputPath(inputPath, name string) string {
	if dir := s.config.Output.Dir; dir != "" {
		return filepath.Join(dir, name)
	}
	return filepath.Join(filepath.Dir(inputPath), name)
}

// writeFile replaces path with data through a temporary file in the
// same directory, so readers never observe a partial blob.
func writeFile(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".geoblob-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := tmpFile.Chmod(0o644); err != nil {
		tmpFile.Close()
		return fmt.Errorf("setting mode on %s: %w", tmpPath, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming %s to %s: %w", tmpPath, path, err)
	}

	success = true
	return nil
}

// checkArgs returns a validation error unless args has between least
// and most entries.
func checkArgs(command string, args []string, least, most int, usage string) error {
	if len(args) >= least && len(args) <= most {
		return nil
	}
	return cli.Validation("%s: expected %s, got %d argument(s)", command, usage, len(args)).
		WithHint(fmt.Sprintf("Run 'geoblob %s --help' for usage.", command))
}
