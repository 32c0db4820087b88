package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/superstore-dashboard-api/internal/domain"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func sampleRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		{
			OrderDate: date(2016, 3, 10), ShipDate: date(2016, 3, 14),
			ShipMode: "Standard Class", Segment: "Consumer", State: "Texas", Region: "Central",
			Category: "Furniture", SubCategory: "Tables",
			Sales: 1000, Quantity: 4, Discount: 0.4, Profit: -50,
		},
		{
			OrderDate: date(2016, 7, 2), ShipDate: date(2016, 7, 5),
			ShipMode: "Second Class", Segment: "Corporate", State: "California", Region: "West",
			Category: "Technology", SubCategory: "Phones",
			Sales: 2000, Quantity: 3, Discount: 0, Profit: 200,
		},
		{
			OrderDate: date(2017, 1, 20), ShipDate: date(2017, 1, 22),
			ShipMode: "Second Class", Segment: "Consumer", State: "Washington", Region: "West",
			Category: "Office Supplies", SubCategory: "Paper",
			Sales: 500, Quantity: 5, Discount: 0.1, Profit: 100,
		},
	}
}

func TestAggregationsAreDeterministic(t *testing.T) {
	service := NewService()
	records := sampleRecords()

	assert.Equal(t, service.Overview(records), service.Overview(records))
	assert.Equal(t, service.CategoryPerformance(records), service.CategoryPerformance(records))
	assert.Equal(t, service.SubCategoryProfit(records), service.SubCategoryProfit(records))
	assert.Equal(t, service.RegionPerformance(records), service.RegionPerformance(records))
	assert.Equal(t, service.SegmentPerformance(records), service.SegmentPerformance(records))
	assert.Equal(t, service.DiscountImpact(records), service.DiscountImpact(records))
	assert.Equal(t, service.CorrelationMatrix(records), service.CorrelationMatrix(records))
	assert.Equal(t, service.ShipModePerformance(records), service.ShipModePerformance(records))
	assert.Equal(t, service.ShipTimeSummary(records), service.ShipTimeSummary(records))
}

func TestAggregationsOnEmptyTable(t *testing.T) {
	service := NewService()
	var records []domain.SalesRecord

	overview := service.Overview(records)
	assert.Zero(t, overview.TotalSales)
	assert.Zero(t, overview.TotalProfit)
	assert.Zero(t, overview.OverallProfitMargin)
	assert.Empty(t, overview.YearlyPerformance)
	assert.NotNil(t, overview.YearlyPerformance)

	assert.NotNil(t, service.CategoryPerformance(records))
	assert.Empty(t, service.CategoryPerformance(records))
	assert.NotNil(t, service.SubCategoryProfit(records))
	assert.Empty(t, service.SubCategoryProfit(records))
	assert.NotNil(t, service.LossSubCategories(records))
	assert.Empty(t, service.LossSubCategories(records))
	assert.NotNil(t, service.RegionPerformance(records))
	assert.Empty(t, service.RegionPerformance(records))
	assert.NotNil(t, service.LossStates(records))
	assert.Empty(t, service.LossStates(records))
	assert.NotNil(t, service.SegmentPerformance(records))
	assert.Empty(t, service.SegmentPerformance(records))
	assert.NotNil(t, service.DiscountImpact(records))
	assert.Empty(t, service.DiscountImpact(records))
	assert.NotNil(t, service.ShipModePerformance(records))
	assert.Empty(t, service.ShipModePerformance(records))

	matrix := service.CorrelationMatrix(records)
	assert.Equal(t, []string{"Sales", "Quantity", "Discount", "Profit"}, matrix.Metrics)
	assert.Empty(t, matrix.Values)

	summary := service.ShipTimeSummary(records)
	assert.Zero(t, summary.MeanDays)
	assert.Zero(t, summary.MedianDays)
}

func TestCategoryPerformanceRanksByProfitDescending(t *testing.T) {
	service := NewService()
	records := []domain.SalesRecord{
		{Category: "Furniture", Sales: 100, Profit: -50},
		{Category: "Technology", Sales: 400, Profit: 200},
	}

	rows := service.CategoryPerformance(records)
	require.Len(t, rows, 2)
	assert.Equal(t, "Technology", rows[0].Key)
	assert.Equal(t, 200.0, rows[0].Profit)
	assert.Equal(t, "Furniture", rows[1].Key)
	assert.Equal(t, -50.0, rows[1].Profit)
}

func TestCategoryPerformanceBreaksTiesAlphabetically(t *testing.T) {
	service := NewService()
	records := []domain.SalesRecord{
		{Category: "Technology", Sales: 100, Profit: 50},
		{Category: "Furniture", Sales: 100, Profit: 50},
	}

	rows := service.CategoryPerformance(records)
	require.Len(t, rows, 2)
	assert.Equal(t, "Furniture", rows[0].Key)
	assert.Equal(t, "Technology", rows[1].Key)
}

func TestCategoryPerformanceComputesGroupMargin(t *testing.T) {
	service := NewService()
	records := []domain.SalesRecord{
		{Category: "Technology", Sales: 500, Profit: 100},
		{Category: "Technology", Sales: 500, Profit: 50},
	}

	rows := service.CategoryPerformance(records)
	require.Len(t, rows, 1)
	assert.Equal(t, 1000.0, rows[0].Sales)
	assert.Equal(t, 150.0, rows[0].Profit)
	assert.Equal(t, 15.0, rows[0].ProfitMargin)
}

func TestLossSubCategoriesWorstFirst(t *testing.T) {
	service := NewService()
	records := []domain.SalesRecord{
		{Category: "Furniture", SubCategory: "Tables", Sales: 1000, Profit: -300},
		{Category: "Furniture", SubCategory: "Bookcases", Sales: 500, Profit: -40},
		{Category: "Technology", SubCategory: "Phones", Sales: 800, Profit: 120},
	}

	losses := service.LossSubCategories(records)
	require.Len(t, losses, 2)
	assert.Equal(t, "Tables", losses[0].SubCategory)
	assert.Equal(t, "Bookcases", losses[1].SubCategory)
}

func TestRegionPerformanceRanking(t *testing.T) {
	service := NewService()
	records := []domain.SalesRecord{
		{Region: "Central", State: "Texas", Sales: 500, Profit: -100},
		{Region: "West", State: "California", Sales: 700, Profit: 110},
		{Region: "West", State: "Washington", Sales: 300, Profit: 40},
	}

	rows := service.RegionPerformance(records)
	require.Len(t, rows, 2)
	assert.Equal(t, "West", rows[0].Key)
	assert.Equal(t, 150.0, rows[0].Profit)
	assert.Equal(t, "Central", rows[1].Key)

	losses := service.LossStates(records)
	require.Len(t, losses, 1)
	assert.Equal(t, "Texas", losses[0].Key)
}

func TestDiscountImpactFlagsNegativeBuckets(t *testing.T) {
	service := NewService()
	records := []domain.SalesRecord{
		// Faixa 0%: margem +12%
		{Discount: 0, Sales: 1000, Profit: 120},
		// Faixa 21-40%: margem do grupo -5%
		{Discount: 0.3, Sales: 1000, Profit: -80},
		{Discount: 0.4, Sales: 1000, Profit: -20},
	}

	buckets := service.DiscountImpact(records)
	require.Len(t, buckets, 2)

	assert.Equal(t, "0%", buckets[0].Range)
	assert.Equal(t, 12.0, buckets[0].ProfitMargin)
	assert.False(t, buckets[0].Negative)

	assert.Equal(t, "21-40%", buckets[1].Range)
	assert.Equal(t, 2, buckets[1].Count)
	assert.Equal(t, -5.0, buckets[1].ProfitMargin)
	assert.True(t, buckets[1].Negative)
}

func TestDiscountImpactOmitsEmptyBuckets(t *testing.T) {
	service := NewService()
	records := []domain.SalesRecord{
		{Discount: 0.9, Sales: 100, Profit: -80},
	}

	buckets := service.DiscountImpact(records)
	require.Len(t, buckets, 1)
	assert.Equal(t, "81-100%", buckets[0].Range)
	assert.True(t, buckets[0].Negative)
}

func TestOverviewYearlySeries(t *testing.T) {
	service := NewService()
	records := []domain.SalesRecord{
		{OrderDate: date(2017, 5, 1), Sales: 300, Profit: 30},
		{OrderDate: date(2016, 2, 1), Sales: 100, Profit: 10},
		{OrderDate: date(2016, 9, 1), Sales: 200, Profit: 20},
	}

	overview := service.Overview(records)
	assert.Equal(t, 600.0, overview.TotalSales)
	assert.Equal(t, 60.0, overview.TotalProfit)
	assert.Equal(t, 10.0, overview.OverallProfitMargin)

	require.Len(t, overview.YearlyPerformance, 2)
	assert.Equal(t, domain.YearPerformance{Year: 2016, Sales: 300, Profit: 30}, overview.YearlyPerformance[0])
	assert.Equal(t, domain.YearPerformance{Year: 2017, Sales: 300, Profit: 30}, overview.YearlyPerformance[1])
}

func TestShipModePerformanceAverageDays(t *testing.T) {
	service := NewService()
	records := []domain.SalesRecord{
		{ShipMode: "Second Class", OrderDate: date(2017, 1, 1), ShipDate: date(2017, 1, 3), Sales: 100, Profit: 10},
		{ShipMode: "Second Class", OrderDate: date(2017, 2, 1), ShipDate: date(2017, 2, 5), Sales: 200, Profit: 20},
		{ShipMode: "Same Day", OrderDate: date(2017, 3, 1), ShipDate: date(2017, 3, 1), Sales: 50, Profit: 5},
	}

	rows := service.ShipModePerformance(records)
	require.Len(t, rows, 2)

	// Ordenado por vendas decrescentes
	assert.Equal(t, "Second Class", rows[0].Mode)
	assert.Equal(t, 3.0, rows[0].AvgShipDays)
	assert.Equal(t, "Same Day", rows[1].Mode)
	assert.Equal(t, 0.0, rows[1].AvgShipDays)
}

func TestShipTimeSummaryMeanAndMedian(t *testing.T) {
	service := NewService()
	records := []domain.SalesRecord{
		{OrderDate: date(2017, 1, 1), ShipDate: date(2017, 1, 2)},
		{OrderDate: date(2017, 1, 1), ShipDate: date(2017, 1, 4)},
		{OrderDate: date(2017, 1, 1), ShipDate: date(2017, 1, 9)},
	}

	summary := service.ShipTimeSummary(records)
	assert.Equal(t, 4.0, summary.MeanDays)
	assert.Equal(t, 3.0, summary.MedianDays)
}

func TestCorrelationMatrix(t *testing.T) {
	service := NewService()
	// Lucro perfeitamente proporcional às vendas; desconto constante
	records := []domain.SalesRecord{
		{Sales: 100, Quantity: 1, Discount: 0.2, Profit: 10},
		{Sales: 200, Quantity: 2, Discount: 0.2, Profit: 20},
		{Sales: 300, Quantity: 3, Discount: 0.2, Profit: 30},
	}

	matrix := service.CorrelationMatrix(records)
	require.Len(t, matrix.Values, 4)

	// Diagonal unitária
	for i := range matrix.Values {
		assert.Equal(t, 1.0, matrix.Values[i][i])
	}

	// Sales x Profit perfeitamente correlacionados
	assert.Equal(t, 1.0, matrix.Values[0][3])
	// Coluna constante (Discount) não correlaciona com nada
	assert.Equal(t, 0.0, matrix.Values[0][2])
	assert.Equal(t, 0.0, matrix.Values[2][3])
}

func TestRecommendationsAreStable(t *testing.T) {
	service := NewService()

	first := service.Recommendations()
	second := service.Recommendations()

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}
