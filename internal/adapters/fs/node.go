package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rewatch/internal/core/ports"
)

const (
	// EnumeratorNodeID is the unique identifier for the enumerator factory Graft node.
	EnumeratorNodeID graft.ID = "adapter.fs.enumerator"
	// OpenerNodeID is the unique identifier for the content opener Graft node.
	OpenerNodeID graft.ID = "adapter.fs.opener"
)

func init() {
	graft.Register(graft.Node[ports.EnumeratorFactory]{
		ID:        EnumeratorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EnumeratorFactory, error) {
			return NewFactory(), nil
		},
	})

	graft.Register(graft.Node[ports.ContentOpener]{
		ID:        OpenerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ContentOpener, error) {
			return NewOpener(), nil
		},
	})
}
