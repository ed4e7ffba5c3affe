// Package mpqtool adapts the external mpqcli binary.
//
// The archive format itself is opaque to build-mpq; the only contract
// with the tool is its argument syntax, exit code and captured output.
package mpqtool

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sogladev/build-mpq/pkg/errors"
	"github.com/sogladev/build-mpq/pkg/logging"
)

// DefaultBinary is the tool looked up on PATH when no override is
// configured
const DefaultBinary = "mpqcli"

// Tool invokes the external MPQ binary
type Tool struct {
	binary string
	logger zerolog.Logger
}

// New creates a Tool for the given binary name or path. An empty name
// selects DefaultBinary.
func New(binary string) *Tool {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Tool{
		binary: binary,
		logger: logging.GetLogger("mpqtool"),
	}
}

// Binary returns the configured binary name
func (t *Tool) Binary() string {
	return t.binary
}

// Lookup resolves the binary on the search path. It must be called
// before any filesystem mutation so a missing tool fails fast.
func (t *Tool) Lookup() (string, error) {
	path, err := exec.LookPath(t.binary)
	if err != nil {
		return "", errors.Newf(errors.ErrToolNotFound,
			"%s not found in PATH. Please install mpqcli first.\n"+
				"Installation instructions: https://github.com/Kanma/mpqcli", t.binary)
	}
	return path, nil
}

// Create packages workDir into an archive at outputPath by running
// `<tool> create --output <outputPath> .` with workDir as the working
// directory. The literal "." target keeps archive paths relative,
// never host-absolute. Returns the tool's stdout.
func (t *Tool) Create(ctx context.Context, workDir, outputPath string) (string, error) {
	return t.run(ctx, workDir, "create", "--output", outputPath, ".")
}

// List returns the archive's internal file listing, one relative path
// per entry, trimmed, blank lines dropped, order preserved.
func (t *Tool) List(ctx context.Context, archivePath string) ([]string, error) {
	out, err := t.run(ctx, "", "list", archivePath)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	return paths, nil
}

// run executes the tool and blocks until it exits. There is no
// timeout: a hung tool blocks the whole operation, which is an
// accepted limitation.
func (t *Tool) run(ctx context.Context, dir string, args ...string) (string, error) {
	commandLine := t.binary + " " + strings.Join(args, " ")

	t.logger.Debug().
		Str("command", commandLine).
		Str("cwd", dir).
		Msg("Running external tool")

	cmd := exec.CommandContext(ctx, t.binary, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		return "", errors.Wrapf(err, errors.ErrToolFailed,
			"%s failed with exit code %d\nCommand: %s\nCwd: %s\n%s",
			t.binary, exitCode, commandLine, dir, stderr.String()).
			WithDetail("command", commandLine).
			WithDetail("cwd", dir).
			WithDetail("stderr", stderr.String())
	}

	return stdout.String(), nil
}
