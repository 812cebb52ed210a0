// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fwtarget/internal/adapters/config"
	_ "go.trai.ch/fwtarget/internal/adapters/locator"
	_ "go.trai.ch/fwtarget/internal/adapters/logger"
	_ "go.trai.ch/fwtarget/internal/adapters/targets"
	// Register app and engine nodes.
	_ "go.trai.ch/fwtarget/internal/app"
	_ "go.trai.ch/fwtarget/internal/engine/catalog"
	_ "go.trai.ch/fwtarget/internal/engine/guard"
	_ "go.trai.ch/fwtarget/internal/engine/resolver"
)
