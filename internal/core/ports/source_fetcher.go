// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/fwtarget/internal/core/domain"
)

// SourceFetcher materializes one subpath of a remote repository on the local filesystem.
//
// Implementations own the layout of the storage directory and must never return a
// partially fetched checkout.
//
//go:generate go run go.uber.org/mock/mockgen -source=source_fetcher.go -destination=mocks/mock_source_fetcher.go -package=mocks
type SourceFetcher interface {
	// CheckoutBranch materializes subpath at the tip of the named branch.
	CheckoutBranch(ctx context.Context, repoURL, subpath, branch string) (domain.Checkout, error)
	// CheckoutTag materializes subpath at the named tag.
	CheckoutTag(ctx context.Context, repoURL, subpath, tag string) (domain.Checkout, error)
	// CheckoutCommit materializes subpath at the given commit hash.
	CheckoutCommit(ctx context.Context, repoURL, subpath, hash string) (domain.Checkout, error)
}

// SourceFetcherFactory builds a SourceFetcher bound to a storage directory and a located tool.
type SourceFetcherFactory interface {
	NewFetcher(storageDir, toolPath string) SourceFetcher
}
