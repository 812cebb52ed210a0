package locator_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fwtarget/internal/adapters/locator"
	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeExecutable(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), mode))
	return path
}

func TestFind_SearchPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix permission bits")
	}
	empty := t.TempDir()
	tools := t.TempDir()
	want := writeExecutable(t, tools, "fakegit", 0o755)

	got, err := locator.New("fakegit").Find(strings.Join([]string{empty, tools}, string(os.PathListSeparator)))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFind_SkipsNonExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix permission bits")
	}
	first := t.TempDir()
	second := t.TempDir()
	writeExecutable(t, first, "fakegit", 0o644)
	want := writeExecutable(t, second, "fakegit", 0o755)

	got, err := locator.New("fakegit").Find(first + string(os.PathListSeparator) + second)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFind_NotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := locator.New("fakegit").Find(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolNotFound)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, dir, zErr.Metadata()["search_path"])
	assert.Equal(t, "fakegit", zErr.Metadata()["tool"])
}

func TestFind_ProcessPath(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	got, err := locator.New("").Find("")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}

func TestFind_ProcessPathMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := locator.New("definitely-not-a-tool").Find("")
	assert.ErrorIs(t, err, domain.ErrToolNotFound)
}
