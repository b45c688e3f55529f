package fingerprint

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rewatch/internal/core/ports"
)

// NodeID is the unique identifier for the fingerprint registry Graft node.
const NodeID graft.ID = "adapter.fingerprint"

func init() {
	graft.Register(graft.Node[ports.FingerprintRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FingerprintRegistry, error) {
			return NewRegistry(), nil
		},
	})
}
