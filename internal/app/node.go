package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/internal/adapters/artifacts" //nolint:depguard // Wired in app layer
	"go.trai.ch/smelt/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/smelt/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/smelt/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/smelt/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/smelt/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/smelt/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the command line interface needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.WalkerNodeID,
			fs.ResolverNodeID,
			cache.NodeID,
			scheduler.NodeID,
			artifacts.NodeID,
			logger.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	sources, err := graft.Dep[ports.SourceFinder](ctx)
	if err != nil {
		return nil, err
	}

	resolvers, err := graft.Dep[ports.ResolverFactory](ctx)
	if err != nil {
		return nil, err
	}

	cacheLoader, err := graft.Dep[ports.FilesCacheLoader](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
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

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, sources, resolvers, cacheLoader, sched, store, log, w), nil
}
