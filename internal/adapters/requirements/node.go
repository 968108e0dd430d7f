package requirements

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/noxy/internal/core/ports"
)

// NodeID is the unique identifier for the requirements editor Graft node.
const NodeID graft.ID = "adapter.requirements"

func init() {
	graft.Register(graft.Node[ports.RequirementsEditor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RequirementsEditor, error) {
			return NewEditor(), nil
		},
	})
}
