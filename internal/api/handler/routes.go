package handler

import (
	"net/http"

	"github.com/vfg2006/youtube-data-api/internal/api/handler/router"
	"github.com/vfg2006/youtube-data-api/internal/usecases/managing"
	"github.com/vfg2006/youtube-data-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func APIKeys(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/api-keys",
			Method:      http.MethodGet,
			Handler:     ListAPIKeys(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/admin/api-keys",
			Method:      http.MethodPost,
			Handler:     CreateAPIKey(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/api-keys",
			Method:      http.MethodPut,
			Handler:     UpdateAPIKeyStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/api-usage",
			Method:      http.MethodGet,
			Handler:     ListAPIUsage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Tracking(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/channels",
			Method:      http.MethodGet,
			Handler:     ListTrackedChannels(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/admin/channels",
			Method:      http.MethodPost,
			Handler:     CreateTrackedChannel(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/channels/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTrackedChannel(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/keywords",
			Method:      http.MethodGet,
			Handler:     ListTrackedKeywords(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/admin/keywords",
			Method:      http.MethodPost,
			Handler:     CreateTrackedKeyword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/keywords/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTrackedKeyword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Ingestion(scheduler IngestionScheduler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ingestion/run",
			Method:      http.MethodPost,
			Handler:     RunIngestion(scheduler),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/ingestion/status",
			Method:      http.MethodGet,
			Handler:     IngestionStatus(scheduler),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
