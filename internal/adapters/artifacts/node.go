package artifacts

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/internal/core/ports"
)

// NodeID is the unique identifier for the artifact manager Graft node.
const NodeID graft.ID = "adapter.artifacts"

func init() {
	graft.Register(graft.Node[ports.ArtifactManager]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactManager, error) {
			return NewManager(), nil
		},
	})
}
