package guard

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the storage guard Graft node.
const NodeID graft.ID = "engine.guard"

func init() {
	graft.Register(graft.Node[*Guard]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Guard, error) {
			return New(), nil
		},
	})
}
