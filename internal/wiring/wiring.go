// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/noxy/internal/adapters/cas"
	_ "go.trai.ch/noxy/internal/adapters/conda"
	_ "go.trai.ch/noxy/internal/adapters/config"
	_ "go.trai.ch/noxy/internal/adapters/fetch"
	_ "go.trai.ch/noxy/internal/adapters/fs"
	_ "go.trai.ch/noxy/internal/adapters/logger"
	_ "go.trai.ch/noxy/internal/adapters/requirements"
	_ "go.trai.ch/noxy/internal/adapters/shell"
	_ "go.trai.ch/noxy/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/noxy/internal/adapters/venv"
	// Register app and engine nodes.
	_ "go.trai.ch/noxy/internal/app"
	_ "go.trai.ch/noxy/internal/engine/runner"
)
