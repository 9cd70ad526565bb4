package main

import (
	"consulta/config"
	"consulta/di"
	_ "consulta/docs"
	"consulta/shared/logger"
)

// @title Consulta API
// @version 1.0
// @description Consultant time-slot booking service.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
