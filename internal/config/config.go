// Package config holds runtime configuration: defaults, environment
// overrides, and validation. CLI flags are applied on top by the cli
// package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings. It is populated by [Default], then
// [FromEnv] applies environment overrides, then the cli layer applies flag
// overrides before passing it (by pointer) to packages that need it.
type Config struct {
	// SavesDir is the directory holding the save files. Defaults to the
	// game's platform save location when unset.
	SavesDir string `env:"SAVEKEEPER_DIR"`

	// KeepBackups is the default --keep value for prune. Default: 5.
	KeepBackups int `env:"SAVEKEEPER_KEEP"`

	// DryRun plans operations without touching the filesystem.
	DryRun bool `env:"SAVEKEEPER_DRY_RUN"`

	// Verbose enables debug logging.
	Verbose bool `env:"SAVEKEEPER_VERBOSE"`

	// NoColor disables styled output. The NO_COLOR convention is also
	// honored by the logging and styling libraries themselves.
	NoColor bool `env:"NO_COLOR"`
}

// Default returns a Config with built-in defaults.
func Default() Config {
	return Config{
		SavesDir:    DefaultSavesDir(),
		KeepBackups: 5,
	}
}

// FromEnv returns the default config with environment overrides applied.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DefaultSavesDir returns the platform save location for Hollow Knight, or
// "" when the home directory cannot be resolved (the user must then pass
// --dir).
func DefaultSavesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "LocalLow", "Team Cherry", "Hollow Knight")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "unity.Team Cherry.Hollow Knight")
	default:
		return filepath.Join(home, ".config", "unity3d", "Team Cherry", "Hollow Knight")
	}
}

// NormalizeDirArg strips trailing slashes from a directory path. The
// filesystem root "/" is returned unchanged so we don't produce an empty
// string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that the saves directory is set, exists, and is a
// directory.
func (c *Config) Validate() error {
	if c.SavesDir == "" {
		return errors.New("no saves directory (set --dir or SAVEKEEPER_DIR)")
	}
	info, err := os.Stat(c.SavesDir)
	if err != nil {
		return fmt.Errorf("saves directory %q: %w", c.SavesDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("saves directory %q is not a directory", c.SavesDir)
	}
	if c.KeepBackups < 0 {
		return errors.New("keep count must not be negative")
	}
	return nil
}
