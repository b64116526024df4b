package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the source finder Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ParserNodeID is the unique identifier for the Solidity parser Graft node.
	ParserNodeID graft.ID = "adapter.fs.parser"
	// ResolverNodeID is the unique identifier for the resolver factory Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
)

func init() {
	graft.Register(graft.Node[ports.SourceFinder]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceFinder, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[*Parser]{
		ID:        ParserNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Parser, error) {
			return NewParser(), nil
		},
	})

	graft.Register(graft.Node[ports.ResolverFactory]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ParserNodeID},
		Run: func(ctx context.Context) (ports.ResolverFactory, error) {
			parser, err := graft.Dep[*Parser](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolverFactory(parser), nil
		},
	})
}
