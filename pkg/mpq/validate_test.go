package mpq

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sogladev/build-mpq/pkg/errors"
	"github.com/sogladev/build-mpq/pkg/mpqtool"
	"github.com/sogladev/build-mpq/pkg/testutil"
)

func newArchive(t *testing.T) string {
	t.Helper()
	return testutil.CreateFile(t, t.TempDir(), "patch-Z.mpq", "fake archive")
}

func TestValidateArchiveNotFound(t *testing.T) {
	testutil.StubTool(t, "mpqcli", "exit 0")

	_, err := Validate(context.Background(), mpqtool.New(""),
		filepath.Join(t.TempDir(), "missing.mpq"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrArchiveNotFound, errors.GetErrorCode(err))
}

func TestValidateToolMissing(t *testing.T) {
	archive := newArchive(t)
	testutil.HideTool(t)

	_, err := Validate(context.Background(), mpqtool.New(""), archive)
	require.Error(t, err)
	assert.Equal(t, errors.ErrToolNotFound, errors.GetErrorCode(err))
}

func TestValidateAllValid(t *testing.T) {
	archive := newArchive(t)
	testutil.StubTool(t, "mpqcli",
		`printf 'DBFilesClient/Spell.dbc\nInterface/Icons/icon.blp\nWorld/Maps/Azeroth/Azeroth.wdt\n'`)

	outcome, err := Validate(context.Background(), mpqtool.New(""), archive)
	require.NoError(t, err)

	assert.Equal(t, 3, outcome.Total)
	assert.Equal(t, 3, outcome.Valid)
	assert.Equal(t, 0, outcome.Invalid)
	assert.Empty(t, outcome.InvalidPaths)
	assert.False(t, outcome.Empty)
	require.Len(t, outcome.Entries, 3)
	assert.Equal(t, "DBFilesClient/Spell.dbc", outcome.Entries[0].Path)
	assert.True(t, outcome.Entries[0].Valid)
}

func TestValidateInvalidPaths(t *testing.T) {
	archive := newArchive(t)
	testutil.StubTool(t, "mpqcli",
		`printf 'DBFilesClient/Spell.dbc\nBadFolder/x.txt\n'`)

	outcome, err := Validate(context.Background(), mpqtool.New(""), archive)
	require.Error(t, err)
	assert.Equal(t, errors.ErrValidation, errors.GetErrorCode(err))

	require.NotNil(t, outcome)
	assert.Equal(t, 2, outcome.Total)
	assert.Equal(t, 1, outcome.Valid)
	assert.Equal(t, 1, outcome.Invalid)
	assert.Equal(t, []string{"BadFolder/x.txt"}, outcome.InvalidPaths)

	// The failure itself carries the full offending list
	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, []string{"BadFolder/x.txt"}, details["invalidPaths"])
}

func TestValidateInvalidPathsPreserveOrder(t *testing.T) {
	archive := newArchive(t)
	testutil.StubTool(t, "mpqcli",
		`printf 'Zzz/last.txt\nDBFilesClient/Spell.dbc\nAaa/first.txt\n'`)

	outcome, err := Validate(context.Background(), mpqtool.New(""), archive)
	require.Error(t, err)
	assert.Equal(t, []string{"Zzz/last.txt", "Aaa/first.txt"}, outcome.InvalidPaths)
}

func TestValidateBackslashListing(t *testing.T) {
	archive := newArchive(t)
	testutil.StubTool(t, "mpqcli", `printf 'Interface\\Icons\\icon.blp\n'`)

	outcome, err := Validate(context.Background(), mpqtool.New(""), archive)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Valid)
}

func TestValidateEmptyArchive(t *testing.T) {
	archive := newArchive(t)
	testutil.StubTool(t, "mpqcli", "exit 0")

	outcome, err := Validate(context.Background(), mpqtool.New(""), archive)
	require.NoError(t, err)
	assert.True(t, outcome.Empty)
	assert.Equal(t, 0, outcome.Total)
}

func TestValidateToolFailure(t *testing.T) {
	archive := newArchive(t)
	testutil.StubTool(t, "mpqcli", `echo "corrupt archive" >&2; exit 1`)

	_, err := Validate(context.Background(), mpqtool.New(""), archive)
	require.Error(t, err)
	assert.Equal(t, errors.ErrToolFailed, errors.GetErrorCode(err))
	assert.Contains(t, err.Error(), "corrupt archive")
}
