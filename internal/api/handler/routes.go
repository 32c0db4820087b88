package handler

import (
	"net/http"

	"github.com/vfg2006/superstore-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/superstore-dashboard-api/internal/usecases/dataset"
	"github.com/vfg2006/superstore-dashboard-api/internal/usecases/insighting"
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

// Dashboard retorna as rotas das abas do dashboard
func Dashboard(datasetService dataset.DatasetService, insighter insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/overview",
			Method:  http.MethodGet,
			Handler: GetOverview(datasetService, insighter),
		},
		{
			Path:    "/v1/dashboard/products",
			Method:  http.MethodGet,
			Handler: GetProducts(datasetService, insighter),
		},
		{
			Path:    "/v1/dashboard/geography",
			Method:  http.MethodGet,
			Handler: GetGeography(datasetService, insighter),
		},
		{
			Path:    "/v1/dashboard/segments",
			Method:  http.MethodGet,
			Handler: GetSegments(datasetService, insighter),
		},
		{
			Path:    "/v1/dashboard/discounts",
			Method:  http.MethodGet,
			Handler: GetDiscounts(datasetService, insighter),
		},
		{
			Path:    "/v1/dashboard/shipping",
			Method:  http.MethodGet,
			Handler: GetShipping(datasetService, insighter),
		},
		{
			Path:    "/v1/dashboard/recommendations",
			Method:  http.MethodGet,
			Handler: GetRecommendations(insighter),
		},
	}
}

// Dataset retorna as rotas de operação do cache da tabela
func Dataset(datasetService dataset.DatasetService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDataset(datasetService),
		},
		{
			Path:    "/v1/dataset/status",
			Method:  http.MethodGet,
			Handler: GetDatasetStatus(datasetService),
		},
	}
}
