//go:build wireinject
// +build wireinject

package di

import (
	"dashboard/config"
	"dashboard/infras/otel"
	"dashboard/infras/redis"
	dashboardRepository "dashboard/internal/domains/dashboard/repository"
	dashboardService "dashboard/internal/domains/dashboard/service"
	entryRepository "dashboard/internal/domains/entry/repository"
	entryService "dashboard/internal/domains/entry/service"
	dashboardHandler "dashboard/internal/handlers/dashboard"
	entryHandler "dashboard/internal/handlers/entry"
	"dashboard/shared/cache"
	"dashboard/transport/http"
	"dashboard/transport/http/middleware"
	"dashboard/transport/http/router"
	"dashboard/transport/http/view"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	view.New,
)

var entryDomain = wire.NewSet(
	entryRepository.New,
	entryService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardRepository.New,
	dashboardService.New,
)

var domains = wire.NewSet(
	entryDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	entryHandler.New,
	dashboardHandler.New,
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
