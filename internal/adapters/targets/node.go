package targets

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fwtarget/internal/core/ports"
)

// NodeID is the unique identifier for the description parser Graft node.
const NodeID graft.ID = "adapter.description_parser"

func init() {
	graft.Register(graft.Node[ports.DescriptionParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DescriptionParser, error) {
			return NewParser(), nil
		},
	})
}
