package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fwtarget/internal/adapters/config"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fwtarget/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fwtarget/internal/adapters/targets" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fwtarget/internal/core/ports"
	"go.trai.ch/fwtarget/internal/engine/guard"
	"go.trai.ch/fwtarget/internal/engine/resolver"
)

// NodeID is the unique identifier for the catalog Graft node.
const NodeID graft.ID = "engine.catalog"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			targets.NodeID,
			guard.NodeID,
			resolver.NodeID,
		},
		Run: func(ctx context.Context) (*Loader, error) {
			cfg, err := graft.Dep[config.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.DescriptionParser](ctx)
			if err != nil {
				return nil, err
			}

			g, err := graft.Dep[*guard.Guard](ctx)
			if err != nil {
				return nil, err
			}

			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			return New(res, parser, g, log, cfg.LockTimeout), nil
		},
	})
}
