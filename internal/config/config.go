// Package config loads the histdb user configuration file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultLimit bounds searches when neither the flag nor the config
	// file provides one.
	DefaultLimit = 25
	// DefaultRetentionDays is the clean cutoff when neither the flag nor
	// the config file provides one.
	DefaultRetentionDays = 90

	configDirName  = "histdb"
	configFileName = "config.yaml"
)

// Config is the user configuration, read once at process start.
type Config struct {
	// Database overrides the default database location.
	Database string `yaml:"database"`
	// DefaultLimit is the search result limit when no flag is given.
	DefaultLimit int `yaml:"default_limit"`
	// RetentionDays is the clean retention when no flag is given.
	RetentionDays int `yaml:"retention_days"`
	// Ignore lists commands never recorded. A pattern ending in '*'
	// matches any command with that prefix; anything else matches exactly.
	Ignore []string `yaml:"ignore"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DefaultLimit:  DefaultLimit,
		RetentionDays: DefaultRetentionDays,
	}
}

// Path resolves the configuration file location under the XDG config
// directory.
func Path() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot resolve home directory: %w", err)
		}

		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, configDirName, configFileName), nil
}

// Load reads the configuration file at p. A missing file yields the
// defaults; a malformed file is an error.
func Load(p string) (*Config, error) {
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", p, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config %s: %w", p, err)
	}

	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = DefaultLimit
	}

	if cfg.RetentionDays < 0 {
		cfg.RetentionDays = DefaultRetentionDays
	}

	return cfg, nil
}

// Ignores reports whether the command matches the ignore list.
func (c *Config) Ignores(command string) bool {
	for _, pattern := range c.Ignore {
		if strings.HasSuffix(pattern, "*") {
			if strings.HasPrefix(command, strings.TrimSuffix(pattern, "*")) {
				return true
			}

			continue
		}

		if pattern == command {
			return true
		}
	}

	return false
}
