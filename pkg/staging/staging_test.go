package staging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sogladev/build-mpq/pkg/errors"
	"github.com/sogladev/build-mpq/pkg/wow"
)

func TestCreateFullStructure(t *testing.T) {
	base := filepath.Join(t.TempDir(), "patch-Z.MPQ")

	result, err := Create(base, CreateOptions{})
	require.NoError(t, err)
	assert.Len(t, result.Directories, len(wow.Structure))

	for _, dir := range wow.Structure {
		info, err := os.Stat(filepath.Join(base, filepath.FromSlash(dir)))
		require.NoError(t, err, "missing directory %s", dir)
		assert.True(t, info.IsDir())
	}

	content, err := os.ReadFile(result.ReadmePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "WoW 3.3.5a Patch Staging Area")
	assert.Contains(t, string(content), "build-mpq package")
}

func TestCreateWithCategories(t *testing.T) {
	base := filepath.Join(t.TempDir(), "ui-patch")

	result, err := Create(base, CreateOptions{Categories: []string{"interface", "fonts"}})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(base, "Interface", "Icons"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "Fonts"))
	assert.NoError(t, err)

	// Unselected categories must not be created
	_, err = os.Stat(filepath.Join(base, "DBFilesClient"))
	assert.True(t, os.IsNotExist(err))

	content, err := os.ReadFile(result.ReadmePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Created categories: interface, fonts")
}

func TestCreateInvalidCategory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "patch")

	_, err := Create(base, CreateOptions{Categories: []string{"interface", "bogus"}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))
	assert.Contains(t, err.Error(), "bogus")

	// No partial mutation on precondition failure
	_, statErr := os.Stat(base)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCreateExistingWithoutForce(t *testing.T) {
	base := filepath.Join(t.TempDir(), "patch")
	require.NoError(t, os.MkdirAll(base, 0755))

	_, err := Create(base, CreateOptions{})
	require.Error(t, err)
	assert.Equal(t, errors.ErrAlreadyExists, errors.GetErrorCode(err))
}

func TestCreateForceRecreates(t *testing.T) {
	base := filepath.Join(t.TempDir(), "patch")
	require.NoError(t, os.MkdirAll(filepath.Join(base, "Leftover"), 0755))

	_, err := Create(base, CreateOptions{Force: true})
	require.NoError(t, err)

	// Old content is gone, canonical structure is in place
	_, err = os.Stat(filepath.Join(base, "Leftover"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "DBFilesClient"))
	assert.NoError(t, err)
}
