package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sogladev/build-mpq/pkg/errors"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "mpqcli", cfg.Tool)
	assert.Equal(t, "z", cfg.Compression)
	assert.True(t, cfg.Dereference)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "does-not-exist.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build-mpq.toml")
	content := `
tool = "/opt/mpqcli/bin/mpqcli"
compression = "n"
dereference = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/opt/mpqcli/bin/mpqcli", cfg.Tool)
	assert.Equal(t, "n", cfg.Compression)
	assert.False(t, cfg.Dereference)
}

func TestLoadPartialOverrideKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build-mpq.toml")
	require.NoError(t, os.WriteFile(path, []byte(`tool = "wowtool"`), 0644))
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "wowtool", cfg.Tool)
	assert.Equal(t, "z", cfg.Compression)
	assert.True(t, cfg.Dereference)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build-mpq.toml")
	require.NoError(t, os.WriteFile(path, []byte("tool = [not toml"), 0644))
	t.Setenv(ConfigPathEnvVar, path)

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigParse, errors.GetErrorCode(err))
}

func TestPathHonorsEnvVar(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "/tmp/custom.toml")
	assert.Equal(t, "/tmp/custom.toml", Path())
}
