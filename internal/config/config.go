// Package config loads and saves the daybook application configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// DataDir is where timeline documents are stored.
	DataDir string `yaml:"data_dir"`

	// DefaultProject is the project used when --project is not given.
	DefaultProject string `yaml:"default_project"`

	// Timezone is the IANA zone used to interpret and display
	// clock-only times (e.g. "America/New_York"). "Local" uses the
	// system zone.
	Timezone string `yaml:"timezone"`
}

// DefaultConfig returns the in-memory defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir:        ".daybook",
		DefaultProject: "default",
		Timezone:       "Local",
	}
}

// Normalize fills missing values so configs written by older versions
// keep working.
func (c *Config) Normalize() {
	if c.DataDir == "" {
		c.DataDir = ".daybook"
	}
	if c.DefaultProject == "" {
		c.DefaultProject = "default"
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
}

// DefaultPath returns the per-user config location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "daybook", "config.yaml"), nil
}

// Load reads configuration from the given YAML path. On first run (file
// missing) a default config is written and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the configuration atomically with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".daybook-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
