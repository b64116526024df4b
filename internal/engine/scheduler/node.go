package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/internal/adapters/artifacts" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/smelt/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/smelt/internal/adapters/solc"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/smelt/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			solc.NodeID,
			artifacts.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			compiler, err := graft.Dep[ports.Compiler](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ArtifactManager](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(compiler, store, log), nil
		},
	})
}
