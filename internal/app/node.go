package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgver/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgver/internal/adapters/emitter"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgver/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgver/internal/adapters/lock"      //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgver/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgver/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgver/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgver/internal/core/ports"
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
			lock.NodeID,
			emitter.NodeID,
			fs.WriterNodeID,
			logger.NodeID,
			telemetry.NodeID,
			watcher.NodeID,
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

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.LockReader](ctx)
	if err != nil {
		return nil, err
	}

	emit, err := graft.Dep[ports.Emitter](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ArtifactWriter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, reader, emit, writer, log, tracer, w), nil
}
