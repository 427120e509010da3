package pathutil

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modres/internal/core/ports"
)

// NodeID is the unique identifier for the path utility Graft node.
const NodeID graft.ID = "adapter.pathutil"

func init() {
	graft.Register(graft.Node[ports.PathUtil]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathUtil, error) {
			return New(), nil
		},
	})
}
