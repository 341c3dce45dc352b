package router

import (
	"dashboard/config"
	"dashboard/internal/handlers/dashboard"
	"dashboard/internal/handlers/entry"
	"dashboard/shared/constant"
	"dashboard/transport/http/middleware"

	// registers the generated OpenAPI document
	_ "dashboard/docs"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Entry     entry.Handler
	Dashboard dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		r.Middleware.RequestID,
		chiMiddleware.Recoverer,
		r.Middleware.Tracing,
		r.Middleware.Logger,
		r.Middleware.CORS(),
		r.Middleware.RateLimit(),
	)

	r.DomainHandlers.Dashboard.Pages(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Entry.Router(routerGroup)
	})

	if r.Config.Server.Env != constant.ServerEnvProduction {
		router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware, config *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
		Config:         config,
	}
}
