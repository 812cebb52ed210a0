// Package config provides the configuration loader for fwtarget.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the configuration file looked up in the working directory.
	DefaultFilename = "fwtarget.yaml"
	// EnvPath overrides the location of the configuration file.
	EnvPath = "FWTARGET_CONFIG"
)

// Path returns the configuration file location honoring EnvPath.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultFilename
}

// Load reads the configuration file at path on top of Default.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// Validate reports domain.ErrInvalidConfig for unusable values.
func (c Config) Validate() error {
	switch {
	case c.StorageDir == "":
		return invalid("storage_dir", "must not be empty", c.StorageDir)
	case c.Git.Backend != BackendCLI && c.Git.Backend != BackendGoGit:
		return invalid("git.backend", "must be "+BackendCLI+" or "+BackendGoGit, c.Git.Backend)
	case c.LockTimeout <= 0:
		return invalid("lock_timeout", "must be positive", c.LockTimeout.String())
	case c.Repository.URL == "":
		return invalid("repository.url", "must not be empty", c.Repository.URL)
	}
	return nil
}

func invalid(key, reason, value string) error {
	err := zerr.Wrap(domain.ErrInvalidConfig, key+" "+reason)
	err = zerr.With(err, "key", key)
	return zerr.With(err, "value", value)
}
