package domain

import (
	"path/filepath"
	"strings"
)

const (
	// HardwareDir is the fixed directory holding the target data inside a repository or local checkout.
	HardwareDir = "hardware"

	// DescriptionFile is the device description document, relative to the resolved directory.
	DescriptionFile = "targets.json"
)

// RepositoryRef points at a remote repository and the folder inside it that contains the hardware directory.
type RepositoryRef struct {
	URL       string `json:"url" yaml:"url"`
	SubFolder string `json:"sub_folder" yaml:"sub_folder"`
}

// FetchSubpath returns the repository-relative path fetched for every remote selector.
// A sub folder of "/" (or empty) yields "hardware"; otherwise "<subFolder>/hardware".
func (r RepositoryRef) FetchSubpath() string {
	sub := strings.Trim(r.SubFolder, "/")
	if sub == "" {
		return HardwareDir
	}
	return sub + "/" + HardwareDir
}

// LocalHardwareDir returns the hardware directory of a local checkout.
func LocalHardwareDir(path string) string {
	return filepath.Join(path, HardwareDir)
}

// Checkout is the result of materializing a reference on disk.
type Checkout struct {
	// Path is the local directory of the fetched subpath.
	Path string
}
