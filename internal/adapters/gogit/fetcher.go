// Package gogit implements ports.SourceFetcher in-process with go-git.
package gogit

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/fwtarget/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	remoteName = "origin"
	layoutDir  = "gogit"
)

// Fetcher keeps one shallow, sparse working tree per repository under the storage directory.
type Fetcher struct {
	storageDir string
	logger     ports.Logger
}

var _ ports.SourceFetcher = (*Fetcher)(nil)

// New creates a Fetcher. A nil logger discards log output.
func New(storageDir string, logger ports.Logger) *Fetcher {
	return &Fetcher{storageDir: storageDir, logger: ports.OrNop(logger)}
}

// Factory implements ports.SourceFetcherFactory for Fetcher.
// The located tool path is unused; go-git needs no executable.
type Factory struct {
	Logger ports.Logger
}

// NewFetcher implements ports.SourceFetcherFactory.
func (f Factory) NewFetcher(storageDir, _ string) ports.SourceFetcher {
	return New(storageDir, f.Logger)
}

// RepoDir returns the working tree used for repoURL.
func (f *Fetcher) RepoDir(repoURL string) string {
	return filepath.Join(f.storageDir, layoutDir, domain.StorageKey(repoURL))
}

// CheckoutBranch implements ports.SourceFetcher.
func (f *Fetcher) CheckoutBranch(ctx context.Context, repoURL, subpath, branch string) (domain.Checkout, error) {
	local := "refs/remotes/" + remoteName + "/" + branch
	return f.checkout(ctx, repoURL, subpath, fetchSpec{
		refSpec:  gitconfig.RefSpec("+refs/heads/" + branch + ":" + local),
		revision: plumbing.Revision(local),
	})
}

// CheckoutTag implements ports.SourceFetcher.
func (f *Fetcher) CheckoutTag(ctx context.Context, repoURL, subpath, tag string) (domain.Checkout, error) {
	ref := "refs/tags/" + tag
	return f.checkout(ctx, repoURL, subpath, fetchSpec{
		refSpec:  gitconfig.RefSpec("+" + ref + ":" + ref),
		revision: plumbing.Revision(ref),
	})
}

// CheckoutCommit implements ports.SourceFetcher.
// Only full hashes are accepted: the remote has to be asked for the exact object.
func (f *Fetcher) CheckoutCommit(ctx context.Context, repoURL, subpath, hash string) (domain.Checkout, error) {
	if !plumbing.IsHash(hash) {
		err := zerr.Wrap(domain.ErrInvalidRequest, strconv.Quote(hash)+" is not a full commit hash")
		return domain.Checkout{}, zerr.With(err, "commit", hash)
	}
	return f.checkout(ctx, repoURL, subpath, fetchSpec{
		refSpec:  gitconfig.RefSpec(hash + ":refs/fwtarget/" + hash),
		revision: plumbing.Revision(hash),
	})
}

type fetchSpec struct {
	refSpec  gitconfig.RefSpec
	revision plumbing.Revision
}

func (f *Fetcher) checkout(ctx context.Context, repoURL, subpath string, spec fetchSpec) (domain.Checkout, error) {
	dir := f.RepoDir(repoURL)

	repo, err := f.open(dir, repoURL)
	if err != nil {
		return domain.Checkout{}, err
	}

	err = repo.FetchContext(ctx, &git.FetchOptions{
		RemoteName: remoteName,
		RefSpecs:   []gitconfig.RefSpec{spec.refSpec},
		Depth:      1,
		Tags:       git.NoTags,
		Force:      true,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return domain.Checkout{}, fetchFailed(err, "fetch "+spec.refSpec.Src(), repoURL)
	}

	hash, err := repo.ResolveRevision(spec.revision)
	if err != nil {
		return domain.Checkout{}, fetchFailed(err, "resolve "+string(spec.revision), repoURL)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return domain.Checkout{}, fetchFailed(err, "open worktree", repoURL)
	}
	err = wt.Checkout(&git.CheckoutOptions{
		Hash:                      *hash,
		Force:                     true,
		SparseCheckoutDirectories: []string{subpath},
	})
	if err != nil {
		return domain.Checkout{}, fetchFailed(err, "checkout "+hash.String(), repoURL)
	}

	path := filepath.Join(dir, filepath.FromSlash(subpath))
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		err := zerr.Wrap(domain.ErrFetchFailed, subpath+" not present at "+hash.String())
		err = zerr.With(err, "repository", repoURL)
		return domain.Checkout{}, zerr.With(err, "subpath", subpath)
	}
	return domain.Checkout{Path: path}, nil
}

// open returns the repository at dir with origin pointing at repoURL, creating it if needed.
func (f *Fetcher) open(dir, repoURL string) (*git.Repository, error) {
	repo, err := git.PlainOpen(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to create repository directory"), "path", dir)
		}
		repo, err = git.PlainInit(dir, false)
		if err != nil {
			return nil, fetchFailed(err, "init "+dir, repoURL)
		}
		f.logger.Info("initialized " + dir + " for " + repoURL)
	} else if err != nil {
		return nil, fetchFailed(err, "open "+dir, repoURL)
	}

	remote, err := repo.Remote(remoteName)
	switch {
	case errors.Is(err, git.ErrRemoteNotFound):
	case err != nil:
		return nil, fetchFailed(err, "read remote", repoURL)
	case len(remote.Config().URLs) == 1 && remote.Config().URLs[0] == repoURL:
		return repo, nil
	default:
		if err := repo.DeleteRemote(remoteName); err != nil {
			return nil, fetchFailed(err, "replace remote", repoURL)
		}
	}

	if _, err := repo.CreateRemote(&gitconfig.RemoteConfig{Name: remoteName, URLs: []string{repoURL}}); err != nil {
		return nil, fetchFailed(err, "create remote", repoURL)
	}
	return repo, nil
}

func fetchFailed(cause error, step, repoURL string) error {
	err := zerr.Wrap(domain.ErrFetchFailed, step+": "+cause.Error())
	return zerr.With(err, "repository", repoURL)
}
