package insighting

import (
	"github.com/vfg2006/superstore-dashboard-api/internal/domain"
)

// Insighter define a camada de agregação do dashboard. Todos os métodos são
// puros e determinísticos sobre a tabela recebida: mesmo input, mesmo output,
// nenhum efeito colateral. Tabela vazia produz agregados vazios, nunca erro.
type Insighter interface {
	// Overview calcula os KPIs gerais: vendas totais, lucro total, margem
	// geral e a série anual de desempenho
	Overview(records []domain.SalesRecord) domain.Overview

	// CategoryPerformance agrega vendas e lucro por categoria, em ordem
	// decrescente de lucro
	CategoryPerformance(records []domain.SalesRecord) []domain.PerformanceRow

	// SubCategoryProfit agrega por (categoria, subcategoria), em ordem
	// decrescente de lucro
	SubCategoryProfit(records []domain.SalesRecord) []domain.SubCategoryProfit

	// LossSubCategories retorna apenas as subcategorias com prejuízo,
	// da pior para a menos ruim
	LossSubCategories(records []domain.SalesRecord) []domain.SubCategoryProfit

	// RegionPerformance agrega por região, em ordem decrescente de lucro
	RegionPerformance(records []domain.SalesRecord) []domain.PerformanceRow

	// StatePerformance agrega por estado, em ordem decrescente de lucro
	StatePerformance(records []domain.SalesRecord) []domain.PerformanceRow

	// LossStates retorna apenas os estados com prejuízo, do pior para o menos ruim
	LossStates(records []domain.SalesRecord) []domain.PerformanceRow

	// SegmentPerformance agrega por segmento de cliente, em ordem decrescente de lucro
	SegmentPerformance(records []domain.SalesRecord) []domain.PerformanceRow

	// DiscountImpact agrega por faixa de desconto e sinaliza as faixas cuja
	// margem do grupo é negativa
	DiscountImpact(records []domain.SalesRecord) []domain.DiscountBucket

	// CorrelationMatrix calcula as correlações de Pearson entre vendas,
	// quantidade, desconto e lucro
	CorrelationMatrix(records []domain.SalesRecord) domain.CorrelationMatrix

	// ShipModePerformance agrega por modo de envio, em ordem decrescente de vendas
	ShipModePerformance(records []domain.SalesRecord) []domain.ShipModePerformance

	// ShipTimeSummary resume o tempo de envio (média e mediana em dias)
	ShipTimeSummary(records []domain.SalesRecord) domain.ShipTimeSummary

	// Recommendations retorna as recomendações estratégicas do dashboard
	Recommendations() []string
}
