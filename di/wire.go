//go:build wireinject
// +build wireinject

package di

import (
	"bistro/config"
	"bistro/infras/kafka"
	"bistro/infras/mailer"
	"bistro/infras/otel"
	"bistro/infras/postgres"
	"bistro/infras/redis"
	"bistro/infras/s3"
	"bistro/shared/cache"
	"bistro/transport/http"
	"bistro/transport/http/middleware"
	"bistro/transport/http/router"

	"bistro/internal/domains/notification/dispatcher"
	notificationService "bistro/internal/domains/notification/service"
	reservationRepository "bistro/internal/domains/reservation/repository"
	tableRepository "bistro/internal/domains/table/repository"
	tableService "bistro/internal/domains/table/service"

	healthHandler "bistro/internal/handlers/health"
	reservationHandler "bistro/internal/handlers/reservation"
	tableHandler "bistro/internal/handlers/table"

	"github.com/google/wire"
	goRedis "github.com/redis/go-redis/v9"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	wire.Bind(new(goRedis.UniversalClient), new(*goRedis.Client)),
	s3.New,
	mailer.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var tableDomain = wire.NewSet(
	tableRepository.New,
	tableService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
	provideSink,
	dispatcher.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	provideAvailability,
	provideReservation,
)

var domains = wire.NewSet(
	tableDomain,
	notificationDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	tableHandler.New,
	reservationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		provideServer,
	)

	return &http.HTTP{}
}

func InitializeNotifier() *Notifier {
	wire.Build(
		configurations,
		otel.New,
		mailer.New,
		kafka.New,
		notificationService.New,
		wire.Struct(new(Notifier), "*"),
	)

	return &Notifier{}
}

func InitializeOps() *Ops {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		redis.New,
		wire.Bind(new(goRedis.UniversalClient), new(*goRedis.Client)),
		s3.New,
		sharedHelpers,
		tableDomain,
		reservationRepository.New,
		provideAvailability,
		wire.Struct(new(Ops), "*"),
	)

	return &Ops{}
}
