// Package config handles global configuration for citelabel.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/citelabel/config.yml.
type Config struct {
	LibraryPath  string `yaml:"library_path,omitempty"`  // Directory holding entries.jsonl and labels.db
	DefaultStyle string `yaml:"default_style,omitempty"` // Label style used when --style is not given
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "citelabel"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"

	// EnvLibraryRoot overrides the configured library path.
	EnvLibraryRoot = "CITELABEL_ROOT"
)

// configCache caches the loaded config.
var configCache *Config

// Path returns the path to the global config file. Respects
// XDG_CONFIG_HOME, defaults to ~/.config/citelabel/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	path := Path()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.LibraryPath != "" {
		cfg.LibraryPath = ExpandTilde(cfg.LibraryPath)
	}

	configCache = &cfg
	return &cfg, nil
}

// ResetCache clears the cached config. Useful for testing.
func ResetCache() {
	configCache = nil
}

// LibraryPath returns the library directory, in precedence order:
// CITELABEL_ROOT environment variable, the configured library_path,
// then ~/.citelabel.
func LibraryPath() string {
	if root := os.Getenv(EnvLibraryRoot); root != "" {
		return ExpandTilde(root)
	}

	if cfg, err := Load(); err == nil && cfg.LibraryPath != "" {
		return cfg.LibraryPath
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".citelabel")
}

// DefaultStyle returns the configured default label style, empty when
// unset (the caller decides the built-in default).
func DefaultStyle() string {
	cfg, err := Load()
	if err != nil {
		return ""
	}
	return cfg.DefaultStyle
}

// ExpandTilde expands a leading ~/ to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
