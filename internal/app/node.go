package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/noxy/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/noxy/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/noxy/internal/adapters/fetch"              //nolint:depguard // Wired in app layer
	"go.trai.ch/noxy/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/noxy/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/noxy/internal/adapters/requirements"       //nolint:depguard // Wired in app layer
	"go.trai.ch/noxy/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/noxy/internal/core/ports"
	"go.trai.ch/noxy/internal/engine/runner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			runner.NodeID,
			cas.NodeID,
			fs.MarkerNodeID,
			fetch.NodeID,
			requirements.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
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

	r, err := graft.Dep[*runner.Runner](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RunStore](ctx)
	if err != nil {
		return nil, err
	}

	marker, err := graft.Dep[ports.CacheMarker](ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := graft.Dep[ports.Fetcher](ctx)
	if err != nil {
		return nil, err
	}

	editor, err := graft.Dep[ports.RequirementsEditor](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, r, store, marker, fetcher, editor, telemetry, log), nil
}
