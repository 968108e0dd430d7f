package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/noxy/internal/core/ports"
)

// Graft node identifiers for the file system adapters.
const (
	WalkerNodeID graft.ID = "adapter.fs.walker"
	HasherNodeID graft.ID = "adapter.fs.hasher"
	MarkerNodeID graft.ID = "adapter.fs.marker"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(walker), nil
		},
	})

	graft.Register(graft.Node[ports.CacheMarker]{
		ID:        MarkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheMarker, error) {
			return NewMarker(), nil
		},
	})
}
