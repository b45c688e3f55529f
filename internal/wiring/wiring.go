// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rewatch/internal/adapters/cache"
	_ "go.trai.ch/rewatch/internal/adapters/config"
	_ "go.trai.ch/rewatch/internal/adapters/fingerprint"
	_ "go.trai.ch/rewatch/internal/adapters/fs"
	_ "go.trai.ch/rewatch/internal/adapters/logger"
	_ "go.trai.ch/rewatch/internal/adapters/report"
	_ "go.trai.ch/rewatch/internal/adapters/trigger"
	// Register app nodes.
	_ "go.trai.ch/rewatch/internal/app"
)
