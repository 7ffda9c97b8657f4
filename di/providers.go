package di

import (
	"context"

	"bistro/config"
	"bistro/infras/kafka"
	"bistro/infras/otel"
	"bistro/infras/postgres"
	"bistro/transport/http"
	"bistro/transport/http/middleware"
	"bistro/transport/http/router"

	availabilityService "bistro/internal/domains/availability/service"
	"bistro/internal/domains/notification/dispatcher"
	notificationService "bistro/internal/domains/notification/service"
	"bistro/internal/domains/notification/sink"
	reservationRepository "bistro/internal/domains/reservation/repository"
	reservationService "bistro/internal/domains/reservation/service"
	tableRepository "bistro/internal/domains/table/repository"
	tableService "bistro/internal/domains/table/service"

	"github.com/rs/zerolog/log"

	"bistro/shared/cache"
)

// provideSink publishes to Kafka when it is enabled and notifies customers in-process otherwise.
func provideSink(cfg *config.Config, client kafka.Client, notification notificationService.Notification) dispatcher.Sink {
	if cfg.Kafka.Enable {
		log.Info().Str("topic", cfg.Kafka.Topics.ReservationEvents).Msg("reservation events go to Kafka")

		return sink.NewKafka(client, cfg)
	}

	log.Info().Msg("reservation events are delivered in-process")

	return notification
}

func provideAvailability(
	reservations reservationRepository.Reservation,
	tables tableRepository.Table,
	cfg *config.Config,
	otel otel.Otel,
) availabilityService.Availability {
	return availabilityService.New(reservations, tables, cfg, otel)
}

func provideReservation(
	repo reservationRepository.Reservation,
	tables tableRepository.Table,
	availability availabilityService.Availability,
	transactor postgres.Transactor,
	dispatcher dispatcher.Dispatcher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) reservationService.Reservation {
	return reservationService.New(repo, tables, availability, transactor, dispatcher, cfg, cache, otel)
}

// provideServer builds the HTTP server and releases the shared resources once it stops.
func provideServer(
	cfg *config.Config,
	r router.Router,
	appMiddleware middleware.AppMiddleware,
	auth middleware.Auth,
	events dispatcher.Dispatcher,
	client kafka.Client,
	db *postgres.Connection,
	tracer otel.Otel,
) *http.HTTP {
	server := http.New(cfg, r, appMiddleware, auth)

	server.OnShutdown(func(ctx context.Context) {
		if err := events.Close(ctx); err != nil {
			log.Error().Err(err).Msg("failed to drain event dispatcher")
		}

		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}

		if err := tracer.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to flush traces")
		}
	})

	return server
}

// Notifier consumes reservation events from Kafka and notifies customers.
type Notifier struct {
	Config       *config.Config
	Kafka        kafka.Client
	Notification notificationService.Notification
	Otel         otel.Otel
}

func (n *Notifier) Run(ctx context.Context) {
	log.Info().
		Str("topic", n.Config.Kafka.Topics.ReservationEvents).
		Str("group", n.Config.Kafka.ConsumerGroup).
		Msg("notifier consuming reservation events")

	n.Kafka.Consume(ctx, n.Config.Kafka.ConsumerGroup, n.Config.Kafka.Topics.ReservationEvents, n.Notification.HandleMessage)
}

func (n *Notifier) Close(ctx context.Context) {
	if err := n.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka client")
	}

	if err := n.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}
}

// Ops carries what the operator commands need; it opens no HTTP listener.
type Ops struct {
	Tables       tableService.Table
	Availability availabilityService.Availability
	Otel         otel.Otel
	DB           *postgres.Connection
}

func (o *Ops) Close(ctx context.Context) {
	if err := o.DB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database")
	}

	if err := o.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}
}
