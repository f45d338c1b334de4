package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgver/internal/adapters/logger"
	"go.trai.ch/pkgver/internal/core/ports"
)

// WriterNodeID is the unique identifier for the artifact writer Graft node.
const WriterNodeID graft.ID = "adapter.fs.writer"

func init() {
	graft.Register(graft.Node[ports.ArtifactWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactWriter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(log), nil
		},
	})
}
