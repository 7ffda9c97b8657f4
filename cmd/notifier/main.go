package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bistro/config"
	"bistro/di"
	"bistro/shared/logger"

	"github.com/rs/zerolog/log"
)

const closeTimeout = 10 * time.Second

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if !cfg.Kafka.Enable {
		log.Fatal().Msg("Kafka is disabled, the notifier has nothing to consume")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notifier := di.InitializeNotifier()
	notifier.Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	notifier.Close(closeCtx)

	log.Info().Msg("Notifier stopped.")
}
