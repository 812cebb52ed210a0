// Package catalog exposes the device catalog and per-target options built from resolved target data.
package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/fwtarget/internal/core/ports"
	"go.trai.ch/fwtarget/internal/engine/guard"
	"go.trai.ch/fwtarget/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DeviceRequest selects one target of one version of the target data.
type DeviceRequest struct {
	Selector domain.Selector
	TargetID string
}

// Loader serves catalog queries. Every query resolves and parses the target data while
// holding the exclusive guard; projection and option derivation run outside it.
type Loader struct {
	resolver    *resolver.Resolver
	parser      ports.DescriptionParser
	guard       *guard.Guard
	logger      ports.Logger
	lockTimeout time.Duration

	requests singleflight.Group
}

// New creates a Loader. A nil logger discards log output and a non-positive
// lockTimeout selects guard.DefaultTimeout.
func New(
	res *resolver.Resolver,
	parser ports.DescriptionParser,
	g *guard.Guard,
	logger ports.Logger,
	lockTimeout time.Duration,
) *Loader {
	if lockTimeout <= 0 {
		lockTimeout = guard.DefaultTimeout
	}
	return &Loader{
		resolver:    res,
		parser:      parser,
		guard:       g,
		logger:      ports.OrNop(logger),
		lockTimeout: lockTimeout,
	}
}

// LoadTargetsList returns every device of the selected target data, in document order.
func (l *Loader) LoadTargetsList(ctx context.Context, sel domain.Selector, repo domain.RepositoryRef) ([]domain.Device, error) {
	doc, err := l.loadDocument(ctx, sel, repo)
	if err != nil {
		return nil, err
	}
	return projectAll(doc)
}

// GetDeviceConfig returns the raw configuration of the device owning req.TargetID.
//
// The id is first looked up as a device id. Failing that, an id of the form
// "<device>.<upload method>" resolves to the device when it declares that method.
func (l *Loader) GetDeviceConfig(ctx context.Context, req DeviceRequest, repo domain.RepositoryRef) (domain.RawDeviceConfig, error) {
	doc, err := l.loadDocument(ctx, req.Selector, repo)
	if err != nil {
		return domain.RawDeviceConfig{}, err
	}

	entry, err := lookupTarget(doc, req.TargetID)
	if err != nil {
		return domain.RawDeviceConfig{}, err
	}
	return entry.Config, nil
}

// TargetDeviceOptions returns the configurable options of req.TargetID.
func (l *Loader) TargetDeviceOptions(
	ctx context.Context,
	req DeviceRequest,
	repo domain.RepositoryRef,
) ([]domain.ConfigurableOption, error) {
	cfg, err := l.GetDeviceConfig(ctx, req, repo)
	if err != nil {
		return nil, err
	}
	return domain.DeriveOptions(req.TargetID, cfg), nil
}

// Purge removes every fetched checkout from the storage directory.
func (l *Loader) Purge(ctx context.Context) error {
	dir := l.resolver.StorageDir()
	_, err := guard.Do(ctx, l.guard, l.lockTimeout, func(context.Context) (struct{}, error) {
		if err := os.RemoveAll(dir); err != nil {
			return struct{}{}, zerr.With(zerr.Wrap(err, "failed to remove storage directory"), "path", dir)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return err
	}
	l.logger.Info("removed " + dir)
	return nil
}

// loadDocument resolves and parses the selected target data under the guard.
// Identical concurrent requests share one resolution.
func (l *Loader) loadDocument(ctx context.Context, sel domain.Selector, repo domain.RepositoryRef) (*domain.Document, error) {
	sel = domain.DerefSelector(sel)
	if sel == nil {
		return nil, zerr.Wrap(domain.ErrInvalidRequest, "selector is required")
	}
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	// The shared resolution outlives any single caller: only the lock timeout bounds it.
	// A caller whose own context ends stops waiting without failing the others.
	shared := context.WithoutCancel(ctx)
	key := strings.Join([]string{repo.URL, repo.SubFolder, domain.SelectorString(sel)}, "\x00")
	ch := l.requests.DoChan(key, func() (any, error) {
		return guard.Do(shared, l.guard, l.lockTimeout, func(ctx context.Context) (*domain.Document, error) {
			dir, err := l.resolver.Resolve(ctx, sel, repo)
			if err != nil {
				return nil, err
			}

			doc, err := l.parser.LoadDeviceDescriptions(filepath.Join(dir, domain.DescriptionFile))
			if err != nil {
				l.logger.Error(err)
				return nil, err
			}
			return doc, nil
		})
	})

	select {
	case <-ctx.Done():
		return nil, zerr.Wrap(ctx.Err(), "waiting for "+domain.SelectorString(sel))
	case res := <-ch:
		if res.Err != nil {
			if errors.Is(res.Err, domain.ErrLockTimeout) {
				l.logger.Warn("gave up waiting for exclusive access to " + l.resolver.StorageDir())
			}
			return nil, res.Err
		}
		return res.Val.(*domain.Document), nil
	}
}

type indexedEntry struct {
	id    string
	entry domain.DeviceEntry
}

// projectAll projects every device in parallel. The first failure in document order wins.
func projectAll(doc *domain.Document) ([]domain.Device, error) {
	entries := make([]indexedEntry, 0, doc.Len())
	for id, entry := range doc.All() {
		entries = append(entries, indexedEntry{id: id, entry: entry})
	}

	devices := make([]domain.Device, len(entries))
	errs := make([]error, len(entries))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, e := range entries {
		g.Go(func() error {
			devices[i], errs[i] = domain.ProjectDevice(e.id, e.entry)
			return errs[i]
		})
	}
	if g.Wait() == nil {
		return devices, nil
	}

	// Wait reports whichever failure finished first; errs is indexed by document position.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func lookupTarget(doc *domain.Document, targetID string) (domain.DeviceEntry, error) {
	entry, err := doc.Lookup(targetID)
	if err == nil {
		return entry, nil
	}

	if deviceID, uploadMethod, ok := cutLast(targetID, "."); ok {
		owner, lookupErr := doc.Lookup(deviceID)
		if lookupErr == nil && slices.Contains(owner.Config.UploadMethods, uploadMethod) {
			return owner, nil
		}
	}
	return domain.DeviceEntry{}, err
}

func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}
