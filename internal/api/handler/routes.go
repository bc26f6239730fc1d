package handler

import (
	"net/http"

	"github.com/vfg2006/marketplace-ads-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-ads-api/internal/api/handler/router"
	"github.com/vfg2006/marketplace-ads-api/internal/usecases/attributing"
	"github.com/vfg2006/marketplace-ads-api/internal/usecases/syncing"
	"github.com/vfg2006/marketplace-ads-api/pkg/middleware"
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

func BillingAttribution(service attributing.Attributor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id/billing/attribution",
			Method:      http.MethodGet,
			Handler:     GetBillingAttribution(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Campaigns(campaignRepo repository.CampaignRepository, metricRepo repository.CampaignMetricRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCompanyCampaigns(campaignRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetCampaignMetrics(metricRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sync(syncer syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id/sync/run",
			Method:      http.MethodPost,
			Handler:     RunCompanySync(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
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
