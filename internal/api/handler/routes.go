package handler

import (
	"net/http"

	"github.com/poconverto/analytics-engine-api/internal/api/handler/router"
	"github.com/poconverto/analytics-engine-api/internal/usecases/aggregating"
	"github.com/poconverto/analytics-engine-api/internal/usecases/authenticating"
	"github.com/poconverto/analytics-engine-api/internal/usecases/monitoring"
	"github.com/poconverto/analytics-engine-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Overview(service aggregating.CombinedAggregator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients/:id/overview",
			Method:      http.MethodGet,
			Handler:     GetClientOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/platforms/:platform",
			Method:      http.MethodGet,
			Handler:     GetClientPlatformMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/sync",
			Method:      http.MethodPost,
			Handler:     SyncClientSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Monitoring(poller monitoring.HealthPoller) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/monitoring/status",
			Method:      http.MethodGet,
			Handler:     GetMonitoringStatus(poller),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/monitoring/history",
			Method:      http.MethodGet,
			Handler:     GetMonitoringHistory(poller),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
