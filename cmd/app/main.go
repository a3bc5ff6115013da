package main

import (
	"resthouse/config"
	"resthouse/di"
	"resthouse/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
