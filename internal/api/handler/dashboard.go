package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	sheetsdomain "github.com/vfg2006/superstore-dashboard-api/infrastructure/integrator/sheets/domain"
	"github.com/vfg2006/superstore-dashboard-api/internal/domain"
	"github.com/vfg2006/superstore-dashboard-api/internal/usecases/dataset"
	"github.com/vfg2006/superstore-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/superstore-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/superstore-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ProductsResponse reúne os agregados da aba de produtos
type ProductsResponse struct {
	CategoryPerformance []domain.PerformanceRow    `json:"categoryPerformance"`
	SubCategoryProfit   []domain.SubCategoryProfit `json:"subCategoryProfit"`
	LossSubCategories   []domain.SubCategoryProfit `json:"lossSubCategories"`
}

// GeographyResponse reúne os agregados da aba geográfica
type GeographyResponse struct {
	RegionPerformance []domain.PerformanceRow `json:"regionPerformance"`
	StatePerformance  []domain.PerformanceRow `json:"statePerformance"`
	LossStates        []domain.PerformanceRow `json:"lossStates"`
}

// SegmentsResponse reúne os agregados da aba de clientes
type SegmentsResponse struct {
	SegmentPerformance []domain.PerformanceRow `json:"segmentPerformance"`
}

// DiscountsResponse reúne os agregados da aba de descontos
type DiscountsResponse struct {
	DiscountImpact    []domain.DiscountBucket  `json:"discountImpact"`
	CorrelationMatrix domain.CorrelationMatrix `json:"correlationMatrix"`
}

// ShippingResponse reúne os agregados da aba de envio
type ShippingResponse struct {
	ShipModePerformance []domain.ShipModePerformance `json:"shipModePerformance"`
	ShipTimeSummary     domain.ShipTimeSummary       `json:"shipTimeSummary"`
}

// RecommendationsResponse carrega as recomendações estratégicas
type RecommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}

func GetOverview(datasetService dataset.DatasetService, insighter insighting.Insighter) http.Handler {
	return dashboardHandler("overview", datasetService, func(records []domain.SalesRecord) any {
		return insighter.Overview(records)
	})
}

func GetProducts(datasetService dataset.DatasetService, insighter insighting.Insighter) http.Handler {
	return dashboardHandler("products", datasetService, func(records []domain.SalesRecord) any {
		return ProductsResponse{
			CategoryPerformance: insighter.CategoryPerformance(records),
			SubCategoryProfit:   insighter.SubCategoryProfit(records),
			LossSubCategories:   insighter.LossSubCategories(records),
		}
	})
}

func GetGeography(datasetService dataset.DatasetService, insighter insighting.Insighter) http.Handler {
	return dashboardHandler("geography", datasetService, func(records []domain.SalesRecord) any {
		return GeographyResponse{
			RegionPerformance: insighter.RegionPerformance(records),
			StatePerformance:  insighter.StatePerformance(records),
			LossStates:        insighter.LossStates(records),
		}
	})
}

func GetSegments(datasetService dataset.DatasetService, insighter insighting.Insighter) http.Handler {
	return dashboardHandler("segments", datasetService, func(records []domain.SalesRecord) any {
		return SegmentsResponse{
			SegmentPerformance: insighter.SegmentPerformance(records),
		}
	})
}

func GetDiscounts(datasetService dataset.DatasetService, insighter insighting.Insighter) http.Handler {
	return dashboardHandler("discounts", datasetService, func(records []domain.SalesRecord) any {
		return DiscountsResponse{
			DiscountImpact:    insighter.DiscountImpact(records),
			CorrelationMatrix: insighter.CorrelationMatrix(records),
		}
	})
}

func GetShipping(datasetService dataset.DatasetService, insighter insighting.Insighter) http.Handler {
	return dashboardHandler("shipping", datasetService, func(records []domain.SalesRecord) any {
		return ShippingResponse{
			ShipModePerformance: insighter.ShipModePerformance(records),
			ShipTimeSummary:     insighter.ShipTimeSummary(records),
		}
	})
}

func GetRecommendations(insighter insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, RecommendationsResponse{
			Recommendations: insighter.Recommendations(),
		})
	})
}

// dashboardHandler monta um handler de aba do dashboard: lê a tabela (cache
// ou fonte), aplica a agregação e responde. Tabela vazia é estado neutro,
// nunca erro.
func dashboardHandler(view string, datasetService dataset.DatasetService, aggregate func([]domain.SalesRecord) any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		records, err := datasetService.GetTable(r.Context())
		if err != nil {
			logger.WithFields(log.Fields{
				"view":  view,
				"error": err.Error(),
			}).Error("dashboard: failed to load sales table")

			writeFetchError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"view":      view,
			"row_count": len(records),
		}).Debug("dashboard: sales table loaded")

		writeJSON(w, r, aggregate(records))
	})
}

// writeFetchError traduz as falhas da camada de fetch para o envelope da API,
// distinguindo fonte inacessível de esquema alterado
func writeFetchError(w http.ResponseWriter, err error) {
	switch {
	case sheetsdomain.IsParseError(err):
		apiErrors.WriteError(w, apiErrors.ErrSchemaMismatch, err.Error(), nil)
	case sheetsdomain.IsDataSourceError(err):
		apiErrors.WriteError(w, apiErrors.ErrDataSource, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger := log.ForContext(r.Context())
		logger.WithField("error", err.Error()).Error("dashboard: failed to encode response")

		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
