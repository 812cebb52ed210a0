// Package locator finds the git executable on the local machine.
package locator

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/fwtarget/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultTool is the executable searched for when none is configured.
const DefaultTool = "git"

// Locator implements ports.ToolLocator.
type Locator struct {
	name string
}

var _ ports.ToolLocator = (*Locator)(nil)

// New creates a Locator for the named executable.
func New(name string) *Locator {
	if name == "" {
		name = DefaultTool
	}
	return &Locator{name: name}
}

// Find returns the absolute path of the executable.
// An empty searchPath defers to the process PATH; otherwise only the listed directories are searched.
func (l *Locator) Find(searchPath string) (string, error) {
	if searchPath == "" {
		path, err := exec.LookPath(l.name)
		if err != nil {
			return "", l.notFound(searchPath, err)
		}
		return filepath.Abs(path)
	}

	for _, dir := range filepath.SplitList(searchPath) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, l.executableName())
		if err := findExecutable(path); err == nil {
			return filepath.Abs(path)
		}
	}
	return "", l.notFound(searchPath, exec.ErrNotFound)
}

func (l *Locator) executableName() string {
	if runtime.GOOS == "windows" && filepath.Ext(l.name) == "" {
		return l.name + ".exe"
	}
	return l.name
}

func (l *Locator) notFound(searchPath string, cause error) error {
	err := zerr.With(zerr.Wrap(domain.ErrToolNotFound, l.name), "tool", l.name)
	err = zerr.With(err, "search_path", searchPath)
	return zerr.With(err, "cause", cause.Error())
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && (runtime.GOOS == "windows" || m&0o111 != 0) {
		return nil
	}
	return os.ErrPermission
}
