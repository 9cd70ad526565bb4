//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"consulta/config"
	"consulta/infras/kafka"
	"consulta/infras/otel"
	"consulta/infras/postgres"
	"consulta/infras/redis"
	bookingRepository "consulta/internal/domains/booking/repository"
	bookingService "consulta/internal/domains/booking/service"
	consultantRepository "consulta/internal/domains/consultant/repository"
	consultantService "consulta/internal/domains/consultant/service"
	bookingHandler "consulta/internal/handlers/booking"
	consultantHandler "consulta/internal/handlers/consultant"
	healthHandler "consulta/internal/handlers/health"
	"consulta/shared/cache"
	"consulta/shared/clock"
	"consulta/transport/http"
	"consulta/transport/http/middleware"
	"consulta/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.NewSystemClock,
)

var consultantDomain = wire.NewSet(
	consultantRepository.New,
	consultantService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	consultantDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	consultantHandler.New,
	healthHandler.New,
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
		http.New,
	)

	return &http.HTTP{}
}
