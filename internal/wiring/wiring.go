// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pkgver/internal/adapters/config"
	_ "go.trai.ch/pkgver/internal/adapters/emitter"
	_ "go.trai.ch/pkgver/internal/adapters/fs"
	_ "go.trai.ch/pkgver/internal/adapters/lock"
	_ "go.trai.ch/pkgver/internal/adapters/logger"
	_ "go.trai.ch/pkgver/internal/adapters/telemetry"
	_ "go.trai.ch/pkgver/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/pkgver/internal/app"
)
