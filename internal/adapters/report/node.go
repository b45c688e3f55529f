package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rewatch/internal/core/ports"
)

// NodeID is the unique identifier for the reporter factory Graft node.
const NodeID graft.ID = "adapter.report"

func init() {
	graft.Register(graft.Node[ports.ReporterFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReporterFactory, error) {
			return NewFactory(), nil
		},
	})
}
