// Package gitcli implements ports.SourceFetcher by driving the git executable.
package gitcli

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/fwtarget/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	remoteName = "origin"
	layoutDir  = "git"
)

var fullHash = regexp.MustCompile(`^[0-9a-fA-F]{40}$`)

// Fetcher keeps one shallow working tree per repository under the storage directory.
type Fetcher struct {
	storageDir string
	gitPath    string
	logger     ports.Logger
}

var _ ports.SourceFetcher = (*Fetcher)(nil)

// New creates a Fetcher. A nil logger discards log output.
func New(storageDir, gitPath string, logger ports.Logger) *Fetcher {
	return &Fetcher{
		storageDir: storageDir,
		gitPath:    gitPath,
		logger:     ports.OrNop(logger),
	}
}

// Factory implements ports.SourceFetcherFactory for Fetcher.
type Factory struct {
	Logger ports.Logger
}

// NewFetcher implements ports.SourceFetcherFactory.
func (f Factory) NewFetcher(storageDir, toolPath string) ports.SourceFetcher {
	return New(storageDir, toolPath, f.Logger)
}

// RepoDir returns the working tree used for repoURL.
func (f *Fetcher) RepoDir(repoURL string) string {
	return filepath.Join(f.storageDir, layoutDir, domain.StorageKey(repoURL))
}

// CheckoutBranch implements ports.SourceFetcher.
func (f *Fetcher) CheckoutBranch(ctx context.Context, repoURL, subpath, branch string) (domain.Checkout, error) {
	return f.checkout(ctx, repoURL, subpath, "refs/heads/"+branch, true)
}

// CheckoutTag implements ports.SourceFetcher.
func (f *Fetcher) CheckoutTag(ctx context.Context, repoURL, subpath, tag string) (domain.Checkout, error) {
	return f.checkout(ctx, repoURL, subpath, "refs/tags/"+tag, true)
}

// CheckoutCommit implements ports.SourceFetcher.
// Abbreviated hashes cannot be fetched directly, so they trigger a full fetch.
// Anything other than hexadecimal digits is rejected before git runs.
func (f *Fetcher) CheckoutCommit(ctx context.Context, repoURL, subpath, hash string) (domain.Checkout, error) {
	if !domain.IsHexHash(hash) {
		err := zerr.Wrap(domain.ErrInvalidRequest, "commit hash "+strconv.Quote(hash)+" is not hexadecimal")
		return domain.Checkout{}, zerr.With(err, "hash", hash)
	}
	if fullHash.MatchString(hash) {
		return f.checkout(ctx, repoURL, subpath, hash, true)
	}
	return f.checkout(ctx, repoURL, subpath, hash, false)
}

func (f *Fetcher) checkout(ctx context.Context, repoURL, subpath, ref string, shallow bool) (domain.Checkout, error) {
	dir := f.RepoDir(repoURL)
	if err := f.prepare(ctx, dir, repoURL); err != nil {
		return domain.Checkout{}, err
	}

	target := "FETCH_HEAD"
	if shallow {
		if err := f.git(ctx, dir, "fetch", "--depth", "1", "--force", "--no-tags", remoteName, ref); err != nil {
			return domain.Checkout{}, err
		}
	} else {
		args := []string{"fetch", "--force", "--tags"}
		if _, err := os.Stat(filepath.Join(dir, ".git", "shallow")); err == nil {
			args = append(args, "--unshallow")
		}
		if err := f.git(ctx, dir, append(args, remoteName)...); err != nil {
			return domain.Checkout{}, err
		}
		target = ref
	}

	if err := f.git(ctx, dir, "-c", "advice.detachedHead=false", "checkout", "--force", "--detach", target); err != nil {
		return domain.Checkout{}, err
	}
	if err := f.git(ctx, dir, "clean", "-ffdx"); err != nil {
		return domain.Checkout{}, err
	}

	path := filepath.Join(dir, filepath.FromSlash(subpath))
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		err := zerr.Wrap(domain.ErrFetchFailed, subpath+" not present at "+ref)
		err = zerr.With(err, "repository", repoURL)
		return domain.Checkout{}, zerr.With(err, "subpath", subpath)
	}
	return domain.Checkout{Path: path}, nil
}

// prepare makes dir a repository whose origin points at repoURL.
func (f *Fetcher) prepare(ctx context.Context, dir, repoURL string) error {
	if _, err := os.Stat(filepath.Join(dir, ".git")); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create repository directory"), "path", dir)
		}
		if err := f.git(ctx, dir, "init", "--quiet"); err != nil {
			return err
		}
		f.logger.Info("initialized " + dir + " for " + repoURL)
	}

	if err := f.git(ctx, dir, "remote", "set-url", remoteName, repoURL); err != nil {
		return f.git(ctx, dir, "remote", "add", remoteName, repoURL)
	}
	return nil
}

func (f *Fetcher) git(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, f.gitPath, args...) //nolint:gosec // arguments are built from validated selectors
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		gitErr := zerr.Wrap(domain.ErrFetchFailed, "git "+strings.Join(args, " "))
		gitErr = zerr.With(gitErr, "dir", dir)
		gitErr = zerr.With(gitErr, "exit_code", exitCode)
		return zerr.With(gitErr, "stderr", strings.TrimSpace(stderr.String()))
	}
	return nil
}
