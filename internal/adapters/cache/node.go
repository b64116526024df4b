package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/internal/adapters/logger"
	"go.trai.ch/smelt/internal/core/ports"
)

// NodeID is the unique identifier for the files cache loader Graft node.
const NodeID graft.ID = "adapter.files_cache_loader"

func init() {
	graft.Register(graft.Node[ports.FilesCacheLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.FilesCacheLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
