// Package config loads the optional build-mpq configuration file.
//
// The file lives at $XDG_CONFIG_HOME/build-mpq/build-mpq.toml (or the
// path named by BUILD_MPQ_CONFIG) and overrides the external tool
// binary name and the packaging defaults. A missing file is not an
// error; every field has a working default.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/sogladev/build-mpq/pkg/errors"
	"github.com/sogladev/build-mpq/pkg/logging"
)

// ConfigPathEnvVar overrides the config file location when set
const ConfigPathEnvVar = "BUILD_MPQ_CONFIG"

// Config holds the tool settings
type Config struct {
	// Tool is the name (or absolute path) of the external MPQ tool binary
	Tool string `toml:"tool"`
	// Compression is the default compression method: z, b or n
	Compression string `toml:"compression"`
	// Dereference controls whether packaging materializes symlinks by default
	Dereference bool `toml:"dereference"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Tool:        "mpqcli",
		Compression: "z",
		Dereference: true,
	}
}

// Path returns the config file location, honoring BUILD_MPQ_CONFIG
func Path() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, "build-mpq", "build-mpq.toml")
}

// Load reads the config file and merges it over the defaults.
// A missing file yields the defaults; a malformed file is an error.
func Load() (Config, error) {
	logger := logging.GetLogger("config")
	cfg := Defaults()

	path := Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("No config file, using defaults")
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
	}

	logger.Debug().
		Str("path", path).
		Str("tool", cfg.Tool).
		Str("compression", cfg.Compression).
		Bool("dereference", cfg.Dereference).
		Msg("Config loaded")

	return cfg, nil
}
