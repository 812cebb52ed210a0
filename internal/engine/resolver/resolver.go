// Package resolver turns a version selector into a local directory holding the target data.
package resolver

import (
	"context"
	"fmt"

	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/fwtarget/internal/core/ports"
	"go.trai.ch/zerr"
)

// Config holds the fixed inputs of a Resolver.
type Config struct {
	// StorageDir is the base directory handed to every fetcher.
	StorageDir string
	// SearchPath lists the directories searched for the git executable. Empty means PATH.
	SearchPath string
}

// Resolver dispatches a selector to the matching fetch operation.
type Resolver struct {
	locator ports.ToolLocator
	factory ports.SourceFetcherFactory
	logger  ports.Logger
	config  Config
}

// New creates a Resolver. A nil logger discards log output.
func New(locator ports.ToolLocator, factory ports.SourceFetcherFactory, logger ports.Logger, cfg Config) *Resolver {
	return &Resolver{
		locator: locator,
		factory: factory,
		logger:  ports.OrNop(logger),
		config:  cfg,
	}
}

// StorageDir returns the base directory shared by all fetches.
func (r *Resolver) StorageDir() string {
	return r.config.StorageDir
}

// Resolve materializes the hardware directory selected by sel and returns its local path.
//
// Callers must hold exclusive access to the storage directory.
func (r *Resolver) Resolve(ctx context.Context, sel domain.Selector, repo domain.RepositoryRef) (string, error) {
	sel = domain.DerefSelector(sel)
	if sel == nil {
		return "", zerr.Wrap(domain.ErrInvalidRequest, "selector is required")
	}
	if err := sel.Validate(); err != nil {
		return "", err
	}

	if local, ok := sel.(domain.LocalPath); ok {
		return domain.LocalHardwareDir(local.Path), nil
	}

	toolPath, err := r.locator.Find(r.config.SearchPath)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "locating git"), "search_path", r.config.SearchPath)
		r.logger.Error(err)
		return "", err
	}

	fetcher := r.factory.NewFetcher(r.config.StorageDir, toolPath)
	subpath := repo.FetchSubpath()

	r.logger.Info(fmt.Sprintf("fetching %s from %s", domain.SelectorString(sel), repo.URL))

	var checkout domain.Checkout
	switch s := sel.(type) {
	case domain.Branch:
		checkout, err = fetcher.CheckoutBranch(ctx, repo.URL, subpath, s.Name)
	case domain.Tag:
		checkout, err = fetcher.CheckoutTag(ctx, repo.URL, subpath, s.Name)
	case domain.Commit:
		checkout, err = fetcher.CheckoutCommit(ctx, repo.URL, subpath, s.Hash)
	case domain.PullRequest:
		checkout, err = fetcher.CheckoutCommit(ctx, repo.URL, subpath, s.HeadCommitHash)
	default:
		kind := fmt.Sprintf("%T", sel)
		return "", zerr.With(zerr.Wrap(domain.ErrUnsupportedSource, kind), "kind", kind)
	}
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "resolving "+domain.SelectorString(sel)), "repository", repo.URL)
		return "", err
	}

	r.logger.Info(fmt.Sprintf("fetched %s into %s", domain.SelectorString(sel), checkout.Path))
	return checkout.Path, nil
}
