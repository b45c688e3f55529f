package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rewatch/internal/core/ports"
)

// NodeID is the unique identifier for the cache backend factory Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.CacheBackendFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheBackendFactory, error) {
			return NewFactory(), nil
		},
	})
}
