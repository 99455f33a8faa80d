package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trafficlab/ad-report-api/internal/api/handler/router"
	"github.com/trafficlab/ad-report-api/internal/usecases/reporting"
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

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Profiles() []router.Route {
	return []router.Route{
		{
			Path:    "/v1/profiles",
			Method:  http.MethodGet,
			Handler: ListProfiles(),
		},
	}
}

func Reports(generator *reporting.Generator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/report",
			Method:  http.MethodPost,
			Handler: GenerateReport(generator),
		},
		{
			Path:    "/v1/accounts/:id/report/preview",
			Method:  http.MethodPost,
			Handler: PreviewReport(generator),
		},
	}
}
