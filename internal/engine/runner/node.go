package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/noxy/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/noxy/internal/adapters/conda"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/noxy/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/noxy/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/noxy/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/noxy/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/noxy/internal/adapters/venv"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/noxy/internal/core/ports"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			progrock.NodeID,
			logger.NodeID,
			conda.NodeID,
			venv.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.RunStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
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

			condaBackend, err := graft.Dep[*conda.Backend](ctx)
			if err != nil {
				return nil, err
			}

			venvBackend, err := graft.Dep[*venv.Backend](ctx)
			if err != nil {
				return nil, err
			}

			return New(executor, hasher, store, telemetry, log, condaBackend, venvBackend), nil
		},
	})
}
