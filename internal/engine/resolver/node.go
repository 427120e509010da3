package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modres/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modres/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modres/internal/adapters/pathutil" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modres/internal/core/domain"
	"go.trai.ch/modres/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			pathutil.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Resolver, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			paths, err := graft.Dep[ports.PathUtil](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(fsys, paths, log, domain.DefaultResolverOptions()), nil
		},
	})
}
