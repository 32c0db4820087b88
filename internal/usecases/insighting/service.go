package insighting

import (
	"math"
	"sort"

	"github.com/vfg2006/superstore-dashboard-api/internal/domain"
	"github.com/vfg2006/superstore-dashboard-api/pkg/utils"
)

// Service implementa a interface Insighter. Não guarda estado: cada chamada
// recalcula o agregado a partir da tabela recebida.
type Service struct{}

// NewService cria uma nova instância do serviço de agregação
func NewService() Insighter {
	return &Service{}
}

// accumulator acumula vendas e lucro de um grupo durante a agregação
type accumulator struct {
	sales  float64
	profit float64
}

func (s *Service) Overview(records []domain.SalesRecord) domain.Overview {
	var totalSales, totalProfit float64
	byYear := make(map[int]*accumulator)

	for _, record := range records {
		totalSales += record.Sales
		totalProfit += record.Profit

		year := record.OrderDate.Year()
		acc, ok := byYear[year]
		if !ok {
			acc = &accumulator{}
			byYear[year] = acc
		}
		acc.sales += record.Sales
		acc.profit += record.Profit
	}

	yearly := make([]domain.YearPerformance, 0, len(byYear))
	for year, acc := range byYear {
		yearly = append(yearly, domain.YearPerformance{
			Year:   year,
			Sales:  utils.RoundWithTwoDecimalPlace(acc.sales),
			Profit: utils.RoundWithTwoDecimalPlace(acc.profit),
		})
	}
	sort.Slice(yearly, func(i, j int) bool {
		return yearly[i].Year < yearly[j].Year
	})

	return domain.Overview{
		TotalSales:          utils.RoundWithTwoDecimalPlace(totalSales),
		TotalProfit:         utils.RoundWithTwoDecimalPlace(totalProfit),
		OverallProfitMargin: utils.MarginPercent(totalProfit, totalSales),
		YearlyPerformance:   yearly,
	}
}

func (s *Service) CategoryPerformance(records []domain.SalesRecord) []domain.PerformanceRow {
	return groupPerformance(records, func(r domain.SalesRecord) string {
		return r.Category
	})
}

func (s *Service) RegionPerformance(records []domain.SalesRecord) []domain.PerformanceRow {
	return groupPerformance(records, func(r domain.SalesRecord) string {
		return r.Region
	})
}

func (s *Service) StatePerformance(records []domain.SalesRecord) []domain.PerformanceRow {
	return groupPerformance(records, func(r domain.SalesRecord) string {
		return r.State
	})
}

func (s *Service) SegmentPerformance(records []domain.SalesRecord) []domain.PerformanceRow {
	return groupPerformance(records, func(r domain.SalesRecord) string {
		return r.Segment
	})
}

func (s *Service) LossStates(records []domain.SalesRecord) []domain.PerformanceRow {
	rows := s.StatePerformance(records)

	losses := make([]domain.PerformanceRow, 0)
	for _, row := range rows {
		if row.Profit < 0 {
			losses = append(losses, row)
		}
	}

	// Do pior prejuízo para o menor
	sort.Slice(losses, func(i, j int) bool {
		if losses[i].Profit != losses[j].Profit {
			return losses[i].Profit < losses[j].Profit
		}
		return losses[i].Key < losses[j].Key
	})

	return losses
}

func (s *Service) SubCategoryProfit(records []domain.SalesRecord) []domain.SubCategoryProfit {
	type key struct {
		category    string
		subCategory string
	}

	byKey := make(map[key]*accumulator)
	for _, record := range records {
		k := key{category: record.Category, subCategory: record.SubCategory}
		acc, ok := byKey[k]
		if !ok {
			acc = &accumulator{}
			byKey[k] = acc
		}
		acc.sales += record.Sales
		acc.profit += record.Profit
	}

	rows := make([]domain.SubCategoryProfit, 0, len(byKey))
	for k, acc := range byKey {
		rows = append(rows, domain.SubCategoryProfit{
			Category:     k.category,
			SubCategory:  k.subCategory,
			Sales:        utils.RoundWithTwoDecimalPlace(acc.sales),
			Profit:       utils.RoundWithTwoDecimalPlace(acc.profit),
			ProfitMargin: utils.MarginPercent(acc.profit, acc.sales),
		})
	}

	// Decrescente por lucro; empate resolvido por ordem alfabética
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Profit != rows[j].Profit {
			return rows[i].Profit > rows[j].Profit
		}
		if rows[i].Category != rows[j].Category {
			return rows[i].Category < rows[j].Category
		}
		return rows[i].SubCategory < rows[j].SubCategory
	})

	return rows
}

func (s *Service) LossSubCategories(records []domain.SalesRecord) []domain.SubCategoryProfit {
	rows := s.SubCategoryProfit(records)

	losses := make([]domain.SubCategoryProfit, 0)
	for _, row := range rows {
		if row.Profit < 0 {
			losses = append(losses, row)
		}
	}

	sort.Slice(losses, func(i, j int) bool {
		if losses[i].Profit != losses[j].Profit {
			return losses[i].Profit < losses[j].Profit
		}
		if losses[i].Category != losses[j].Category {
			return losses[i].Category < losses[j].Category
		}
		return losses[i].SubCategory < losses[j].SubCategory
	})

	return losses
}

// Faixas de desconto do dashboard. O desconto é uma fração entre 0 e 1;
// a primeira faixa captura exatamente zero.
var discountRanges = []struct {
	label string
	upper float64
}{
	{label: "0%", upper: 0},
	{label: "1-20%", upper: 0.2},
	{label: "21-40%", upper: 0.4},
	{label: "41-60%", upper: 0.6},
	{label: "61-80%", upper: 0.8},
	{label: "81-100%", upper: 1},
}

func (s *Service) DiscountImpact(records []domain.SalesRecord) []domain.DiscountBucket {
	type bucketAcc struct {
		count  int
		sales  float64
		profit float64
	}

	accs := make([]bucketAcc, len(discountRanges))
	for _, record := range records {
		i := discountRangeIndex(record.Discount)
		accs[i].count++
		accs[i].sales += record.Sales
		accs[i].profit += record.Profit
	}

	buckets := make([]domain.DiscountBucket, 0, len(discountRanges))
	for i, acc := range accs {
		if acc.count == 0 {
			continue
		}

		margin := utils.MarginPercent(acc.profit, acc.sales)
		buckets = append(buckets, domain.DiscountBucket{
			Range:        discountRanges[i].label,
			Count:        acc.count,
			Sales:        utils.RoundWithTwoDecimalPlace(acc.sales),
			Profit:       utils.RoundWithTwoDecimalPlace(acc.profit),
			ProfitMargin: margin,
			Negative:     margin < 0,
		})
	}

	return buckets
}

func discountRangeIndex(discount float64) int {
	if discount <= 0 {
		return 0
	}
	for i := 1; i < len(discountRanges); i++ {
		if discount <= discountRanges[i].upper {
			return i
		}
	}
	// Descontos acima de 100% não deveriam existir; caem na última faixa
	return len(discountRanges) - 1
}

var correlationMetrics = []string{"Sales", "Quantity", "Discount", "Profit"}

func (s *Service) CorrelationMatrix(records []domain.SalesRecord) domain.CorrelationMatrix {
	matrix := domain.CorrelationMatrix{
		Metrics: correlationMetrics,
		Values:  make([][]float64, 0, len(correlationMetrics)),
	}

	if len(records) == 0 {
		return matrix
	}

	series := make([][]float64, len(correlationMetrics))
	for i := range series {
		series[i] = make([]float64, len(records))
	}
	for j, record := range records {
		series[0][j] = record.Sales
		series[1][j] = float64(record.Quantity)
		series[2][j] = record.Discount
		series[3][j] = record.Profit
	}

	for i := range correlationMetrics {
		row := make([]float64, len(correlationMetrics))
		for j := range correlationMetrics {
			if i == j {
				row[j] = 1
				continue
			}
			row[j] = utils.RoundWithTwoDecimalPlace(pearson(series[i], series[j]))
		}
		matrix.Values = append(matrix.Values, row)
	}

	return matrix
}

// pearson calcula o coeficiente de correlação entre duas séries de mesmo
// tamanho. Séries constantes (variância zero) resultam em zero.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n == 0 {
		return 0
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0
	}

	return cov / (math.Sqrt(varX) * math.Sqrt(varY))
}

func (s *Service) ShipModePerformance(records []domain.SalesRecord) []domain.ShipModePerformance {
	type shipAcc struct {
		count  int
		sales  float64
		profit float64
		days   float64
	}

	byMode := make(map[string]*shipAcc)
	for _, record := range records {
		acc, ok := byMode[record.ShipMode]
		if !ok {
			acc = &shipAcc{}
			byMode[record.ShipMode] = acc
		}
		acc.count++
		acc.sales += record.Sales
		acc.profit += record.Profit
		acc.days += record.ShipDays()
	}

	rows := make([]domain.ShipModePerformance, 0, len(byMode))
	for mode, acc := range byMode {
		rows = append(rows, domain.ShipModePerformance{
			Mode:         mode,
			Sales:        utils.RoundWithTwoDecimalPlace(acc.sales),
			Profit:       utils.RoundWithTwoDecimalPlace(acc.profit),
			ProfitMargin: utils.MarginPercent(acc.profit, acc.sales),
			AvgShipDays:  utils.RoundWithTwoDecimalPlace(acc.days / float64(acc.count)),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Sales != rows[j].Sales {
			return rows[i].Sales > rows[j].Sales
		}
		return rows[i].Mode < rows[j].Mode
	})

	return rows
}

func (s *Service) ShipTimeSummary(records []domain.SalesRecord) domain.ShipTimeSummary {
	if len(records) == 0 {
		return domain.ShipTimeSummary{}
	}

	days := make([]float64, 0, len(records))
	var total float64
	for _, record := range records {
		d := record.ShipDays()
		days = append(days, d)
		total += d
	}

	sort.Float64s(days)

	var median float64
	middle := len(days) / 2
	if len(days)%2 == 0 {
		median = (days[middle-1] + days[middle]) / 2
	} else {
		median = days[middle]
	}

	return domain.ShipTimeSummary{
		MeanDays:   utils.RoundWithTwoDecimalPlace(total / float64(len(days))),
		MedianDays: utils.RoundWithTwoDecimalPlace(median),
	}
}

// Recomendações estratégicas exibidas na última aba do dashboard
var recommendations = []string{
	"Foco na lucratividade, não apenas em vendas: priorizar estratégias que aumentem a margem de lucro, revisando precificação, custos e política de descontos para itens e áreas problemáticas.",
	"Gestão estratégica de descontos: evitar descontos agressivos generalizados e focar em promoções direcionadas que não comprometam a margem.",
	"Otimização geográfica: investigar as causas do baixo desempenho em regiões e estados específicos e adaptar as estratégias de marketing e vendas regionalmente.",
	"Entender e engajar segmentos de clientes: desenvolver personas para cada segmento e personalizar comunicação e oferta de produtos.",
	"Eficiência logística e de envio: monitorar continuamente os tempos de envio e otimizar processos para reduzir prazos e custos.",
	"Monitoramento contínuo: acompanhar os KPIs identificados com dashboards e relatórios regulares.",
}

func (s *Service) Recommendations() []string {
	return recommendations
}

// groupPerformance agrega vendas e lucro pela chave extraída de cada registro
// e devolve as linhas em ordem decrescente de lucro (empate alfabético)
func groupPerformance(records []domain.SalesRecord, keyFn func(domain.SalesRecord) string) []domain.PerformanceRow {
	byKey := make(map[string]*accumulator)
	for _, record := range records {
		key := keyFn(record)
		acc, ok := byKey[key]
		if !ok {
			acc = &accumulator{}
			byKey[key] = acc
		}
		acc.sales += record.Sales
		acc.profit += record.Profit
	}

	rows := make([]domain.PerformanceRow, 0, len(byKey))
	for key, acc := range byKey {
		rows = append(rows, domain.PerformanceRow{
			Key:          key,
			Sales:        utils.RoundWithTwoDecimalPlace(acc.sales),
			Profit:       utils.RoundWithTwoDecimalPlace(acc.profit),
			ProfitMargin: utils.MarginPercent(acc.profit, acc.sales),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Profit != rows[j].Profit {
			return rows[i].Profit > rows[j].Profit
		}
		return rows[i].Key < rows[j].Key
	})

	return rows
}
