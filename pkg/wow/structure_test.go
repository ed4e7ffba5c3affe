package wow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructureContainsExpectedDirectories(t *testing.T) {
	expected := []string{
		"DBFilesClient",
		"Interface/Icons",
		"Sound/Music",
		"World/Maps",
		"Character",
	}

	for _, dir := range expected {
		assert.Contains(t, Structure, dir)
	}
}

func TestStructureNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, dir := range Structure {
		assert.False(t, seen[dir], "duplicate entry: %s", dir)
		seen[dir] = true
	}
}

func TestStructureUsesForwardSlashes(t *testing.T) {
	for _, dir := range Structure {
		assert.NotContains(t, dir, "\\")
	}
}

func TestCategoryNames(t *testing.T) {
	names := CategoryNames()

	assert.Contains(t, names, "dbc")
	assert.Contains(t, names, "interface")
	assert.Contains(t, names, "sound")
	assert.Contains(t, names, "world")
	assert.Len(t, names, len(Categories))
}

func TestValidDirectoriesAll(t *testing.T) {
	all := ValidDirectories(nil)
	assert.Equal(t, Structure, all)

	// Returned slice is a copy, mutating it must not affect the table
	all[0] = "Mutated"
	assert.Equal(t, "DBFilesClient", Structure[0])
}

func TestValidDirectoriesByCategory(t *testing.T) {
	interfaceDirs := ValidDirectories([]string{"interface"})
	require.NotEmpty(t, interfaceDirs)
	for _, dir := range interfaceDirs {
		assert.True(t, strings.HasPrefix(dir, "Interface/"))
	}

	dbcDirs := ValidDirectories([]string{"dbc"})
	assert.Equal(t, []string{"DBFilesClient"}, dbcDirs)

	multi := ValidDirectories([]string{"dbc", "fonts"})
	assert.Equal(t, []string{"DBFilesClient", "Fonts"}, multi)
}

func TestValidDirectoriesUnknownCategory(t *testing.T) {
	assert.Empty(t, ValidDirectories([]string{"invalid_category"}))
}

func TestIsValidPathValid(t *testing.T) {
	valid := []string{
		"DBFilesClient/Spell.dbc",
		"Interface/Icons/spell_fire_fireball.blp",
		"Sound/Music/GlueScreenMusic/wow_main_theme.mp3",
		"World/Maps/Azeroth/Azeroth.wdt",
		"Character/Human/Male/HumanMale.m2",
		"Interface/AddOns/MyAddon/MyAddon.lua",
	}

	for _, path := range valid {
		assert.True(t, IsValidPath(path), "path should be valid: %s", path)
	}
}

func TestIsValidPathInvalid(t *testing.T) {
	invalid := []string{
		"CustomFolder/myfile.txt",
		"Random/Path/file.dbc",
		"spell.dbc",
		"Data/Icons/icon.blp",
	}

	for _, path := range invalid {
		assert.False(t, IsValidPath(path), "path should be invalid: %s", path)
	}
}

func TestIsValidPathSeparatorBoundary(t *testing.T) {
	// "World/Maps" is canonical but "World/Maps2" is a different directory.
	// Matching must stop at separator boundaries, not raw prefixes.
	assert.True(t, IsValidPath("World/Maps/Azeroth/Azeroth.wdt"))
	assert.False(t, IsValidPath("World/Maps2/Azeroth/Azeroth.wdt"))
	assert.False(t, IsValidPath("DBFilesClientX/Spell.dbc"))
}

func TestIsValidPathDirectoryOnly(t *testing.T) {
	assert.True(t, IsValidPath("DBFilesClient"))
	assert.True(t, IsValidPath("Interface/Icons"))
	assert.False(t, IsValidPath("InvalidDir"))
}

func TestIsValidPathHandlesBackslashes(t *testing.T) {
	assert.True(t, IsValidPath(`Interface\Icons\spell.blp`))
	assert.True(t, IsValidPath("Interface/Icons/spell.blp"))
	assert.False(t, IsValidPath(`BadFolder\file.txt`))
}

func TestIsValidPathEveryCanonicalDirectory(t *testing.T) {
	for _, dir := range Structure {
		assert.True(t, IsValidPath(dir), "bare directory should be valid: %s", dir)
		assert.True(t, IsValidPath(dir+"/sub/file.bin"), "suffixed path should be valid: %s", dir)
		assert.False(t, IsValidPath(dir+"2/sub/file.bin"), "sibling directory must not match: %s", dir)
	}
}
