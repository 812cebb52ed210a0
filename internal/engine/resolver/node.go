package resolver

import (
	"context"
	"strconv"

	"github.com/grindlemire/graft"
	"go.trai.ch/fwtarget/internal/adapters/config"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fwtarget/internal/adapters/gitcli"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fwtarget/internal/adapters/gogit"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fwtarget/internal/adapters/locator" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fwtarget/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/fwtarget/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			locator.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			cfg, err := graft.Dep[config.Config](ctx)
			if err != nil {
				return nil, err
			}

			toolLocator, err := graft.Dep[ports.ToolLocator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := FetcherFactory(cfg.Git.Backend, log)
			if err != nil {
				return nil, err
			}

			return New(toolLocator, factory, log, Config{
				StorageDir: cfg.StorageDir,
				SearchPath: cfg.Git.SearchPath,
			}), nil
		},
	})
}

// FetcherFactory returns the fetcher factory for a configured git backend.
func FetcherFactory(backend string, log ports.Logger) (ports.SourceFetcherFactory, error) {
	switch backend {
	case config.BackendCLI, "":
		return gitcli.Factory{Logger: log}, nil
	case config.BackendGoGit:
		return gogit.Factory{Logger: log}, nil
	default:
		err := zerr.Wrap(domain.ErrInvalidConfig, "unknown git backend "+strconv.Quote(backend))
		return nil, zerr.With(err, "backend", backend)
	}
}
