// Package mpq orchestrates packaging a staging area into an MPQ
// archive and validating an archive's contents against the canonical
// WoW 3.3.5a layout.
package mpq

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sogladev/build-mpq/pkg/errors"
	"github.com/sogladev/build-mpq/pkg/logging"
	"github.com/sogladev/build-mpq/pkg/materialize"
	"github.com/sogladev/build-mpq/pkg/mpqtool"
	"github.com/sogladev/build-mpq/pkg/staging"
)

// PackageOptions configures one packaging run
type PackageOptions struct {
	// Compression is recorded for reporting; the tool invocation
	// itself is fixed and the tool picks its own compression
	Compression string
	// Dereference materializes symlinks into a temporary tree before
	// invoking the tool
	Dereference bool
}

// PackageResult reports a successful packaging run
type PackageResult struct {
	// ArchivePath is the absolute path of the created archive
	ArchivePath string
	// ArchiveSize is the archive's size in bytes
	ArchiveSize int64
	// Materialization holds dereference statistics, nil when
	// Dereference was off
	Materialization *materialize.Result
	// ToolOutput is the external tool's captured stdout
	ToolOutput string
}

// Package builds an archive at outputPath from the staging tree.
//
// Preconditions fail fast before any filesystem mutation: the staging
// tree must exist and be a directory, the tool must be on the search
// path, and outputPath must not name an existing directory. An
// existing file at outputPath is removed first.
//
// With Dereference on, the staging tree is materialized into a fresh
// temporary directory that is removed on every exit path.
func Package(ctx context.Context, tool *mpqtool.Tool, stagingPath, outputPath string, opts PackageOptions) (*PackageResult, error) {
	logger := logging.GetLogger("mpq.package")

	info, err := os.Stat(stagingPath)
	if err != nil {
		return nil, errors.Newf(errors.ErrStagingNotFound, "staging area not found: %s", stagingPath)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotADirectory, "staging path is not a directory: %s", stagingPath)
	}

	if _, err := tool.Lookup(); err != nil {
		return nil, err
	}

	if outInfo, err := os.Lstat(outputPath); err == nil {
		if outInfo.IsDir() {
			return nil, errors.Newf(errors.ErrIsADirectory, "output path is a directory: %s", outputPath)
		}
		logger.Info().Str("path", outputPath).Msg("Removing existing MPQ")
		if err := os.Remove(outputPath); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileCreate, "failed to remove existing MPQ %s", outputPath)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create output directory %s", filepath.Dir(outputPath))
	}

	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to resolve output path %s", outputPath)
	}

	logger.Info().
		Str("staging", stagingPath).
		Str("output", absOutput).
		Str("compression", opts.Compression).
		Bool("dereference", opts.Dereference).
		Msg("Packaging staging area")

	result := &PackageResult{ArchivePath: absOutput}

	runCwd := stagingPath
	if opts.Dereference {
		tempDir, err := os.MkdirTemp("", "build_mpq_")
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrDirCreate, "failed to create temporary staging copy")
		}
		// The materialized tree lives exactly as long as this call
		defer func() { _ = os.RemoveAll(tempDir) }()

		tempRoot := filepath.Join(tempDir, filepath.Base(stagingPath))
		if err := os.MkdirAll(tempRoot, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate,
				"failed to create temporary staging copy %s", tempRoot)
		}

		logger.Info().Str("path", tempRoot).Msg("Creating dereferenced staging copy")

		m := materialize.New(materialize.Options{
			ExcludeRootFiles: []string{staging.ReadmeFileName},
		})
		mat, err := m.Tree(stagingPath, tempRoot)
		if err != nil {
			return nil, err
		}
		result.Materialization = mat
		runCwd = tempRoot
	}

	out, err := tool.Create(ctx, runCwd, absOutput)
	if err != nil {
		return nil, err
	}
	result.ToolOutput = out

	archiveInfo, err := os.Stat(absOutput)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal,
			"tool reported success but archive is missing: %s", absOutput)
	}
	result.ArchiveSize = archiveInfo.Size()

	logger.Info().
		Str("archive", absOutput).
		Int64("bytes", result.ArchiveSize).
		Msg("Successfully created MPQ")

	return result, nil
}
