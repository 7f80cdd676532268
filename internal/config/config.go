// Package config handles the global citeline configuration, including
// the persisted explicit bibliography path.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/cit/config.yml.
type Config struct {
	// Bibliography is the explicit bibliography path used when a
	// document declares none of its own.
	Bibliography string `yaml:"bibliography,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "cit"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// lockFile guards concurrent saves from separate processes.
	lockFile = "config.lock"
)

// EnvBibliography overrides the configured bibliography path when set.
const EnvBibliography = "CIT_BIBLIOGRAPHY"

// Path returns the path to the config file. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/cit/config.yml.
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

// Load reads the configuration file. Returns an empty config (not an
// error) if the file doesn't exist.
func Load() (*Config, error) {
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

	return &cfg, nil
}

// Save writes the configuration atomically, holding a file lock so two
// processes saving at once cannot interleave.
func (c *Config) Save() error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, lockFile))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking config: %w", err)
	}
	defer lock.Unlock()

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ResolveBibliography returns the explicit bibliography path, letting
// the CIT_BIBLIOGRAPHY environment variable override the config file.
func ResolveBibliography(cfg *Config) string {
	if env := os.Getenv(EnvBibliography); env != "" {
		return env
	}
	if cfg == nil {
		return ""
	}
	return cfg.Bibliography
}
