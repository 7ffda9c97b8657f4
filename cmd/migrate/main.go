package main

import (
	"os"

	"bistro/config"
	"bistro/helper"
	"bistro/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, step-up, drop or version")
	}

	action := helper.Action(os.Args[1])

	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", string(action)).Msg("Migration failed")
	}
}
