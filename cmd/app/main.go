package main

import (
	"bistro/config"
	"bistro/di"
	"bistro/helper"
	"bistro/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Bistro Reservation API
// @version 1.0
// @description Table reservations for a single restaurant.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
