package handler

import (
	"net/http"

	"github.com/vfg2006/sales-insights-api/internal/api/handler/router"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-insights-api/internal/usecases/feedback"
	"github.com/vfg2006/sales-insights-api/pkg/middleware"
)

func Healthcheck(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: Dashboard(service),
		},
		{
			Path:    "/v1/regions",
			Method:  http.MethodGet,
			Handler: Regions(service),
		},
	}
}

func Feedback(service feedback.Collector, validator middleware.TokenValidator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/feedback",
			Method:  http.MethodPost,
			Handler: SubmitFeedback(service),
		},
		{
			Path:        "/v1/feedback",
			Method:      http.MethodGet,
			Handler:     ListFeedback(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(validator)},
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
	}
}

func CronJobs(retention RetentionJob, validator middleware.TokenValidator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(retention),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(validator)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(retention),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(validator)},
		},
	}
}
