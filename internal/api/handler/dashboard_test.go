package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sheetsdomain "github.com/vfg2006/superstore-dashboard-api/infrastructure/integrator/sheets/domain"
	"github.com/vfg2006/superstore-dashboard-api/internal/domain"
	"github.com/vfg2006/superstore-dashboard-api/internal/usecases/dataset"
	"github.com/vfg2006/superstore-dashboard-api/internal/usecases/dataset/mocks"
	"github.com/vfg2006/superstore-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/superstore-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetOverviewHappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	datasetService := mocks.NewMockDatasetService(ctrl)
	datasetService.EXPECT().
		GetTable(gomock.Any()).
		Return([]domain.SalesRecord{
			{OrderDate: time.Date(2017, 5, 1, 0, 0, 0, 0, time.UTC), Sales: 1000, Profit: 100},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/overview", nil)
	rec := httptest.NewRecorder()

	GetOverview(datasetService, insighting.NewService()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var overview domain.Overview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overview))
	assert.Equal(t, 1000.0, overview.TotalSales)
	assert.Equal(t, 100.0, overview.TotalProfit)
	assert.Equal(t, 10.0, overview.OverallProfitMargin)
	require.Len(t, overview.YearlyPerformance, 1)
	assert.Equal(t, 2017, overview.YearlyPerformance[0].Year)
}

func TestDashboardEmptyTableIsNeutralState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	datasetService := mocks.NewMockDatasetService(ctrl)
	datasetService.EXPECT().
		GetTable(gomock.Any()).
		Return([]domain.SalesRecord{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/products", nil)
	rec := httptest.NewRecorder()

	GetProducts(datasetService, insighting.NewService()).ServeHTTP(rec, req)

	// Tabela vazia não é erro: o dashboard mostra estado neutro
	require.Equal(t, http.StatusOK, rec.Code)

	var response ProductsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Empty(t, response.CategoryPerformance)
	assert.Empty(t, response.SubCategoryProfit)
	assert.Empty(t, response.LossSubCategories)
}

func TestDashboardDataSourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	datasetService := mocks.NewMockDatasetService(ctrl)
	datasetService.EXPECT().
		GetTable(gomock.Any()).
		Return(nil, &sheetsdomain.DataSourceError{Op: "values.get", StatusCode: 503})

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/geography", nil)
	rec := httptest.NewRecorder()

	GetGeography(datasetService, insighting.NewService()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrDataSource, apiErr.Code)
}

func TestRefreshDatasetPropagatesSchemaMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	datasetService := mocks.NewMockDatasetService(ctrl)
	datasetService.EXPECT().
		Refresh(gomock.Any()).
		Return(nil, &sheetsdomain.ParseError{Column: "Profit", Reason: "coluna obrigatória ausente no cabeçalho"})

	req := httptest.NewRequest(http.MethodPost, "/v1/dataset/refresh", nil)
	rec := httptest.NewRecorder()

	RefreshDataset(datasetService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	// Esquema alterado tem código próprio, distinto de fonte inacessível
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrSchemaMismatch, apiErr.Code)
	assert.Contains(t, apiErr.Message, "Profit")
}

func TestRefreshDatasetReturnsSnapshotInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetchedAt := time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)

	datasetService := mocks.NewMockDatasetService(ctrl)
	datasetService.EXPECT().
		Refresh(gomock.Any()).
		Return(&dataset.SnapshotInfo{ID: "a1B2c3", FetchedAt: fetchedAt, RowCount: 9994}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/dataset/refresh", nil)
	rec := httptest.NewRecorder()

	RefreshDataset(datasetService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response DatasetStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotNil(t, response.Snapshot)
	assert.Equal(t, "a1B2c3", response.Snapshot.ID)
	assert.Equal(t, 9994, response.Snapshot.RowCount)
}

func TestGetDatasetStatusWithoutSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	datasetService := mocks.NewMockDatasetService(ctrl)
	datasetService.EXPECT().Status().Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dataset/status", nil)
	rec := httptest.NewRecorder()

	GetDatasetStatus(datasetService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response DatasetStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Nil(t, response.Snapshot)
}
