package main

import (
	"dashboard/config"
	"dashboard/di"
	"dashboard/shared/logger"
)

// @title Dashboard API
// @version 1.0
// @description Project entries and dashboard panels.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
