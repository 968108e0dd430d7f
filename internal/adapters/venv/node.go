package venv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/noxy/internal/adapters/logger"
	"go.trai.ch/noxy/internal/adapters/shell"
	"go.trai.ch/noxy/internal/core/ports"
)

// NodeID is the unique identifier for the venv backend Graft node.
const NodeID graft.ID = "adapter.backend.venv"

func init() {
	graft.Register(graft.Node[*Backend]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Backend, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBackend(executor, log), nil
		},
	})
}
