// Package app implements the application layer for fwtarget.
package app

import (
	"context"

	"go.trai.ch/fwtarget/internal/adapters/config"
	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/fwtarget/internal/engine/catalog"
	"go.trai.ch/zerr"
)

// Catalog is the target-data surface the application drives.
type Catalog interface {
	LoadTargetsList(ctx context.Context, sel domain.Selector, repo domain.RepositoryRef) ([]domain.Device, error)
	GetDeviceConfig(ctx context.Context, req catalog.DeviceRequest, repo domain.RepositoryRef) (domain.RawDeviceConfig, error)
	TargetDeviceOptions(
		ctx context.Context,
		req catalog.DeviceRequest,
		repo domain.RepositoryRef,
	) ([]domain.ConfigurableOption, error)
	Purge(ctx context.Context) error
}

var _ Catalog = (*catalog.Loader)(nil)

// App represents the main application logic.
type App struct {
	catalog Catalog
	config  config.Config
}

// New creates a new App instance.
func New(c Catalog, cfg config.Config) *App {
	return &App{
		catalog: c,
		config:  cfg,
	}
}

// SourceOptions selects where target data is read from.
// Zero fields fall back to the configured repository and branch.
type SourceOptions struct {
	Selector      domain.Selector
	RepositoryURL string
	SubFolder     string
}

// Targets lists the devices described at the selected version.
func (a *App) Targets(ctx context.Context, opts SourceOptions) ([]domain.Device, error) {
	sel, repo := a.source(opts)
	devices, err := a.catalog.LoadTargetsList(ctx, sel, repo)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load targets")
	}
	return devices, nil
}

// DeviceConfig returns the raw configuration of a device or device target.
func (a *App) DeviceConfig(ctx context.Context, opts SourceOptions, targetID string) (domain.RawDeviceConfig, error) {
	sel, repo := a.source(opts)
	cfg, err := a.catalog.GetDeviceConfig(ctx, catalog.DeviceRequest{Selector: sel, TargetID: targetID}, repo)
	if err != nil {
		return domain.RawDeviceConfig{}, zerr.Wrap(err, "failed to load device configuration")
	}
	return cfg, nil
}

// Options derives the configurable build options of a target.
func (a *App) Options(ctx context.Context, opts SourceOptions, targetID string) ([]domain.ConfigurableOption, error) {
	sel, repo := a.source(opts)
	options, err := a.catalog.TargetDeviceOptions(ctx, catalog.DeviceRequest{Selector: sel, TargetID: targetID}, repo)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to derive options")
	}
	return options, nil
}

// Clean removes all fetched target data.
func (a *App) Clean(ctx context.Context) error {
	if err := a.catalog.Purge(ctx); err != nil {
		return zerr.Wrap(err, "failed to clean storage")
	}
	return nil
}

func (a *App) source(opts SourceOptions) (domain.Selector, domain.RepositoryRef) {
	repo := a.config.RepositoryRef()
	if opts.RepositoryURL != "" {
		repo.URL = opts.RepositoryURL
	}
	if opts.SubFolder != "" {
		repo.SubFolder = opts.SubFolder
	}

	sel := opts.Selector
	if sel == nil {
		sel = domain.Branch{Name: a.config.Repository.Branch}
	}
	return sel, repo
}
