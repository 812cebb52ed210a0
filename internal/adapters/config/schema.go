package config

import (
	"time"

	"go.trai.ch/fwtarget/internal/core/domain"
)

// Supported fetch backends.
const (
	BackendCLI   = "cli"
	BackendGoGit = "go-git"
)

// Config represents the structure of the fwtarget.yaml configuration file.
type Config struct {
	StorageDir  string           `yaml:"storage_dir"`
	Git         GitConfig        `yaml:"git"`
	Repository  RepositoryConfig `yaml:"repository"`
	LockTimeout time.Duration    `yaml:"lock_timeout"`
}

// GitConfig selects how repositories are fetched.
type GitConfig struct {
	// SearchPath lists directories searched for the git executable. Empty means PATH.
	SearchPath string `yaml:"search_path"`
	Backend    string `yaml:"backend"`
}

// RepositoryConfig names the repository used when a command does not override it.
type RepositoryConfig struct {
	URL       string `yaml:"url"`
	SubFolder string `yaml:"sub_folder"`
	Branch    string `yaml:"branch"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		StorageDir: ".fwtarget/cache",
		Git: GitConfig{
			Backend: BackendCLI,
		},
		Repository: RepositoryConfig{
			URL:       "https://github.com/ExpressLRS/ExpressLRS",
			SubFolder: "src",
			Branch:    "master",
		},
		LockTimeout: 60 * time.Second,
	}
}

// RepositoryRef returns the configured repository.
func (c Config) RepositoryRef() domain.RepositoryRef {
	return domain.RepositoryRef{URL: c.Repository.URL, SubFolder: c.Repository.SubFolder}
}
