// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/modres/internal/adapters/config"
	_ "go.trai.ch/modres/internal/adapters/fs"
	_ "go.trai.ch/modres/internal/adapters/logger"
	_ "go.trai.ch/modres/internal/adapters/pathutil"
	_ "go.trai.ch/modres/internal/adapters/telemetry"
	_ "go.trai.ch/modres/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/modres/internal/app"
	_ "go.trai.ch/modres/internal/engine/resolver"
)
