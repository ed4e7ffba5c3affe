// Package materialize converts a staging tree containing symbolic
// links into an equivalent tree of only real files.
//
// Every healthy symlink is dereferenced to its final target and placed
// as a real file in the destination tree, via hardlink when the target
// sits on the same device and byte copy otherwise. Broken, cyclic and
// non-file-target links are skipped and reported; they never abort the
// walk.
package materialize

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/sogladev/build-mpq/pkg/errors"
	"github.com/sogladev/build-mpq/pkg/logging"
)

// EntryKind classifies a filesystem entry discovered during the walk
type EntryKind int

const (
	KindRegular EntryKind = iota
	KindSymlink
	KindDirectory
	KindOther
)

// Skip reasons for symlinks that could not be materialized
const (
	ReasonBroken        = "broken"
	ReasonNonFileTarget = "non-file target"
)

// SkippedLink describes a symlink that was left out of the
// materialized tree
type SkippedLink struct {
	// RelPath is the link's path relative to the source root
	RelPath string
	// Target is the raw link target, empty if the link was unreadable
	Target string
	// Reason is one of the Reason* constants
	Reason string
}

// Result reports materialization statistics for one tree
type Result struct {
	// Root is the destination tree location
	Root string
	// FilesPlaced counts real files created in the destination,
	// both originally-regular files and dereferenced symlinks
	FilesPlaced int
	// SymlinksSeen counts every symlink encountered
	SymlinksSeen int
	// SymlinksSkipped counts broken, cyclic and non-file-target links
	SymlinksSkipped int
	// Skipped lists the skipped links in walk order
	Skipped []SkippedLink
}

// Options configures a Materializer
type Options struct {
	// ExcludeRootFiles names files at the source root that are staging
	// metadata rather than payload and must not be materialized
	ExcludeRootFiles []string
	// Link overrides the hardlink primitive, used by tests to force
	// the cross-device fallback path. Defaults to os.Link.
	Link func(oldname, newname string) error
}

// Materializer walks a source tree and produces a symlink-free mirror
type Materializer struct {
	excludeRoot map[string]bool
	link        func(oldname, newname string) error
	logger      zerolog.Logger
}

// New creates a Materializer
func New(opts Options) *Materializer {
	excludeRoot := make(map[string]bool, len(opts.ExcludeRootFiles))
	for _, name := range opts.ExcludeRootFiles {
		excludeRoot[name] = true
	}

	link := opts.Link
	if link == nil {
		link = os.Link
	}

	return &Materializer{
		excludeRoot: excludeRoot,
		link:        link,
		logger:      logging.GetLogger("materialize"),
	}
}

// Tree mirrors the relative-path structure of source under dest, with
// every leaf a real file. Directories are created before the files
// inside them. dest must already exist.
func (m *Materializer) Tree(source, dest string) (*Result, error) {
	result := &Result{Root: dest}

	err := filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to walk %s", path)
		}

		rel, err := filepath.Rel(source, path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to relativize %s", path)
		}
		if rel == "." {
			return nil
		}

		destPath := filepath.Join(dest, rel)

		switch classify(d) {
		case KindDirectory:
			if err := os.MkdirAll(destPath, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", destPath)
			}
			return nil

		case KindSymlink:
			result.SymlinksSeen++
			return m.placeSymlink(path, rel, destPath, result)

		case KindRegular:
			if rel == d.Name() && m.excludeRoot[d.Name()] {
				m.logger.Debug().Str("file", rel).Msg("Excluding staging metadata file")
				return nil
			}
			if err := m.place(path, destPath); err != nil {
				return err
			}
			result.FilesPlaced++
			return nil

		default:
			// Sockets, devices and the like have no place in a patch tree
			m.logger.Debug().Str("path", rel).Msg("Ignoring special file")
			return nil
		}
	})
	if err != nil {
		return nil, err
	}

	m.logger.Info().
		Int("filesPlaced", result.FilesPlaced).
		Int("symlinksSeen", result.SymlinksSeen).
		Int("symlinksSkipped", result.SymlinksSkipped).
		Str("dest", dest).
		Msg("Materialization complete")

	return result, nil
}

// classify maps a directory entry onto its EntryKind
func classify(d fs.DirEntry) EntryKind {
	switch {
	case d.IsDir():
		return KindDirectory
	case d.Type()&fs.ModeSymlink != 0:
		return KindSymlink
	case d.Type().IsRegular():
		return KindRegular
	default:
		return KindOther
	}
}

// placeSymlink resolves a symlink chain and places the target's bytes
// at destPath. Resolution failures and non-file targets are recorded
// as skips, never as errors.
func (m *Materializer) placeSymlink(path, rel, destPath string, result *Result) error {
	// EvalSymlinks resolves the chain from the link's own directory and
	// reports cycles as errors, so broken, dangling and self-referential
	// links all land here.
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		m.skip(result, rel, readRawTarget(path), ReasonBroken)
		return nil
	}

	info, err := os.Stat(target)
	if err != nil {
		m.skip(result, rel, readRawTarget(path), ReasonBroken)
		return nil
	}
	if !info.Mode().IsRegular() {
		m.skip(result, rel, readRawTarget(path), ReasonNonFileTarget)
		return nil
	}

	if err := m.place(target, destPath); err != nil {
		return err
	}
	result.FilesPlaced++
	return nil
}

func (m *Materializer) skip(result *Result, rel, target, reason string) {
	m.logger.Warn().
		Str("link", rel).
		Str("target", target).
		Str("reason", reason).
		Msg("Skipping symlink")

	result.SymlinksSkipped++
	result.Skipped = append(result.Skipped, SkippedLink{
		RelPath: rel,
		Target:  target,
		Reason:  reason,
	})
}

// place creates destPath with the same bytes as src. It tries a
// hardlink first; cross-device and permission failures fall back to a
// full copy, anything else aborts the materialization.
func (m *Materializer) place(src, dst string) error {
	err := m.link(src, dst)
	if err == nil {
		return nil
	}

	if isFallbackLinkError(err) {
		m.logger.Debug().Str("src", src).Str("dst", dst).Err(err).Msg("Hardlink failed, copying")
		return copyFile(src, dst)
	}

	return errors.Wrapf(err, errors.ErrLinkCreate, "failed to hardlink %s to %s", src, dst)
}

// isFallbackLinkError reports whether a hardlink failure should fall
// back to a byte copy: cross-device placement or a permission
// restriction on link creation. The two are deliberately treated the
// same way, matching the tool's historical behavior.
func isFallbackLinkError(err error) bool {
	return stderrors.Is(err, syscall.EXDEV) ||
		stderrors.Is(err, syscall.EPERM) ||
		stderrors.Is(err, syscall.EACCES)
}

// copyFile copies src to dst byte for byte. Content is guaranteed,
// metadata preservation is best-effort.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to open %s", src)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to stat %s", src)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to create %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to copy %s to %s", src, dst)
	}

	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to close %s", dst)
	}
	return nil
}

// readRawTarget returns the literal link target for diagnostics, or
// empty when the link itself cannot be read
func readRawTarget(path string) string {
	target, err := os.Readlink(path)
	if err != nil {
		return ""
	}
	return target
}
