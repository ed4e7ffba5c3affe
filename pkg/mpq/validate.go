package mpq

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sogladev/build-mpq/pkg/errors"
	"github.com/sogladev/build-mpq/pkg/logging"
	"github.com/sogladev/build-mpq/pkg/mpqtool"
	"github.com/sogladev/build-mpq/pkg/wow"
)

// ListingEntry is one archive listing line and its verdict
type ListingEntry struct {
	Path  string
	Valid bool
}

// ValidationOutcome aggregates a validation run over one archive.
// Computed fresh per call, never cached.
type ValidationOutcome struct {
	// Total is the number of listing entries checked
	Total int
	// Valid and Invalid are the partition counts
	Valid   int
	Invalid int
	// Entries holds every checked path in listing order
	Entries []ListingEntry
	// InvalidPaths preserves listing order among offenders
	InvalidPaths []string
	// Empty marks an archive with no files, which is valid but worth
	// a warning
	Empty bool
}

// Validate checks that every file in the archive sits inside a
// canonical WoW 3.3.5a directory.
//
// Misplaced files are a data problem, not a crash: the returned error
// has the validation code and the outcome carries the complete ordered
// list of offending paths. An empty archive validates with a warning.
func Validate(ctx context.Context, tool *mpqtool.Tool, archivePath string) (*ValidationOutcome, error) {
	logger := logging.GetLogger("mpq.validate")

	if _, err := os.Stat(archivePath); err != nil {
		return nil, errors.Newf(errors.ErrArchiveNotFound, "MPQ file not found: %s", archivePath)
	}

	if _, err := tool.Lookup(); err != nil {
		return nil, err
	}

	absArchive, err := filepath.Abs(archivePath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to resolve archive path %s", archivePath)
	}

	logger.Info().Str("archive", absArchive).Msg("Validating MPQ")

	listing, err := tool.List(ctx, absArchive)
	if err != nil {
		return nil, err
	}

	outcome := &ValidationOutcome{}

	if len(listing) == 0 {
		logger.Warn().Str("archive", absArchive).Msg("MPQ appears to be empty")
		outcome.Empty = true
		return outcome, nil
	}

	for _, path := range listing {
		valid := wow.IsValidPath(path)
		outcome.Total++
		outcome.Entries = append(outcome.Entries, ListingEntry{Path: path, Valid: valid})
		if valid {
			outcome.Valid++
		} else {
			outcome.Invalid++
			outcome.InvalidPaths = append(outcome.InvalidPaths, path)
		}
	}

	logger.Info().
		Int("total", outcome.Total).
		Int("valid", outcome.Valid).
		Int("invalid", outcome.Invalid).
		Msg("Validation results")

	if outcome.Invalid > 0 {
		return outcome, errors.Newf(errors.ErrValidation,
			"%d file(s) in invalid locations", outcome.Invalid).
			WithDetail("invalidPaths", outcome.InvalidPaths)
	}

	return outcome, nil
}
