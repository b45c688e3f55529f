package trigger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rewatch/internal/adapters/logger"
	"go.trai.ch/rewatch/internal/core/ports"
)

// NodeID is the unique identifier for the trigger factory Graft node.
const NodeID graft.ID = "adapter.trigger"

func init() {
	graft.Register(graft.Node[ports.TriggerFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.TriggerFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
