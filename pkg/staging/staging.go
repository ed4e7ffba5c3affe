// Package staging creates the canonical WoW 3.3.5a patch staging area.
package staging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sogladev/build-mpq/pkg/errors"
	"github.com/sogladev/build-mpq/pkg/logging"
	"github.com/sogladev/build-mpq/pkg/wow"
)

// ReadmeFileName is the informational document written at the staging
// root. It is staging metadata, not payload, and is excluded from
// packaging.
const ReadmeFileName = "README.txt"

// CreateOptions configures staging area creation
type CreateOptions struct {
	// Force removes and recreates an existing staging area
	Force bool
	// Categories limits creation to the named categories; nil creates all
	Categories []string
}

// Result reports what was created
type Result struct {
	// Directories is the list of canonical directories created, in table order
	Directories []string
	// ReadmePath is the location of the generated README
	ReadmePath string
}

// Create builds the canonical directory structure at basePath.
//
// An existing basePath is an error unless opts.Force is set, in which
// case the whole tree is removed and recreated. Unknown category names
// are rejected before any filesystem mutation.
func Create(basePath string, opts CreateOptions) (*Result, error) {
	logger := logging.GetLogger("staging")

	if len(opts.Categories) > 0 {
		if invalid := invalidCategories(opts.Categories); len(invalid) > 0 {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"invalid categories: %s. Valid categories: %s",
				strings.Join(invalid, ", "),
				strings.Join(wow.CategoryNames(), ", "))
		}
	}

	if _, err := os.Lstat(basePath); err == nil {
		if !opts.Force {
			return nil, errors.Newf(errors.ErrAlreadyExists,
				"staging area already exists at %s. Use --force to recreate it", basePath)
		}
		logger.Info().Str("path", basePath).Msg("Removing existing staging area")
		if err := os.RemoveAll(basePath); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate,
				"failed to remove existing staging area %s", basePath)
		}
	}

	directories := wow.ValidDirectories(opts.Categories)

	logger.Info().
		Str("path", basePath).
		Strs("categories", opts.Categories).
		Int("directories", len(directories)).
		Msg("Creating staging area")

	for _, dir := range directories {
		dirPath := filepath.Join(basePath, filepath.FromSlash(dir))
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate,
				"failed to create directory %s", dirPath)
		}
	}

	readmePath := filepath.Join(basePath, ReadmeFileName)
	if err := os.WriteFile(readmePath, []byte(readmeContent(opts.Categories)), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileCreate,
			"failed to write %s", readmePath)
	}

	return &Result{
		Directories: directories,
		ReadmePath:  readmePath,
	}, nil
}

func invalidCategories(categories []string) []string {
	available := wow.CategoryNames()
	var invalid []string
	for _, name := range categories {
		found := false
		for _, a := range available {
			if a == name {
				found = true
				break
			}
		}
		if !found {
			invalid = append(invalid, name)
		}
	}
	return invalid
}

func readmeContent(categories []string) string {
	categoryInfo := ""
	if len(categories) > 0 {
		categoryInfo = fmt.Sprintf("\nCreated categories: %s\n", strings.Join(categories, ", "))
	}

	return fmt.Sprintf(`WoW 3.3.5a Patch Staging Area
================================
%s
This directory structure is required by the WoW 3.3.5a client.
Place your custom files in the appropriate directories:

- DBFilesClient/       - DBC files (game data tables)
- Interface/           - UI, icons, and interface assets
- Fonts/               - Font files
- Sound/               - Audio files (music, effects, voices)
- Textures/            - Environment textures, minimaps
- Character/           - Character models
- Creature/            - Creature models
- Item/                - Item models
- Spells/              - Spell effects and models
- World/               - Map data (ADT, WDT, WMO files)
- Cameras/             - Camera files

After placing your files, use:
  build-mpq package <staging_dir> <output.mpq>

To validate the MPQ:
  build-mpq validate <output.mpq>
`, categoryInfo)
}
