package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rewatch/internal/adapters/cache"       //nolint:depguard // Wired in app layer
	"go.trai.ch/rewatch/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/rewatch/internal/adapters/fingerprint" //nolint:depguard // Wired in app layer
	"go.trai.ch/rewatch/internal/adapters/fs"          //nolint:depguard // Wired in app layer
	"go.trai.ch/rewatch/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/rewatch/internal/adapters/report"      //nolint:depguard // Wired in app layer
	"go.trai.ch/rewatch/internal/adapters/trigger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rewatch/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			cache.NodeID,
			fingerprint.NodeID,
			fs.EnumeratorNodeID,
			fs.OpenerNodeID,
			report.NodeID,
			trigger.NodeID,
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

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	backends, err := graft.Dep[ports.CacheBackendFactory](ctx)
	if err != nil {
		return nil, err
	}

	fingerprints, err := graft.Dep[ports.FingerprintRegistry](ctx)
	if err != nil {
		return nil, err
	}

	enumerators, err := graft.Dep[ports.EnumeratorFactory](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.ContentOpener](ctx)
	if err != nil {
		return nil, err
	}

	reporters, err := graft.Dep[ports.ReporterFactory](ctx)
	if err != nil {
		return nil, err
	}

	triggers, err := graft.Dep[ports.TriggerFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, backends, fingerprints, enumerators, opener, reporters, triggers), nil
}
