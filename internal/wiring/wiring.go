// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/spaceman/internal/adapters/config"
	_ "go.trai.ch/spaceman/internal/adapters/console"
	_ "go.trai.ch/spaceman/internal/adapters/logger"
	_ "go.trai.ch/spaceman/internal/adapters/storage"
	_ "go.trai.ch/spaceman/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/spaceman/internal/app"
	_ "go.trai.ch/spaceman/internal/engine/parser"
)
