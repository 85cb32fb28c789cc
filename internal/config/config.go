package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds process-wide settings. It is loaded once at startup and
// passed explicitly to the components that need it.
type Config struct {
	// DataDir is the root of the bookmark store.
	DataDir string `toml:"data_dir"`
	// SearchEngine is the prefix the fallback query is appended to.
	SearchEngine string `toml:"search_engine"`
	// MinScore is the default minimum match score for open/select.
	MinScore float64 `toml:"min_score"`
	// Limit is the default maximum number of listed results.
	Limit int `toml:"limit"`
	// Migration enables the legacy JSON to YAML migration command.
	Migration bool `toml:"migration"`
	// Debug enables debug logging.
	Debug bool `toml:"debug"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SearchEngine: "https://duckduckgo.com/?q=",
		MinScore:     0.05,
		Limit:        8192,
		Migration:    true,
	}
}

// DefaultPath returns the default config file location:
// <user config dir>/goto/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "goto", "config.toml"), nil
}

// DefaultDataDir returns the default bookmark store location:
// <user config dir>/goto/bookmarks.
func DefaultDataDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "goto", "bookmarks"), nil
}

// Load reads the config file at path, applying defaults for missing
// fields. A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.DataDir == "" {
		dataDir, err := DefaultDataDir()
		if err != nil {
			return cfg, err
		}
		cfg.DataDir = dataDir
	}
	if cfg.SearchEngine == "" {
		cfg.SearchEngine = Default().SearchEngine
	}
	if cfg.Limit <= 0 {
		cfg.Limit = Default().Limit
	}

	return cfg, nil
}
