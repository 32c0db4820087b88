package domain

// PerformanceRow é um agregado por chave de agrupamento (categoria, região,
// estado ou segmento): soma de vendas, soma de lucro e margem do grupo.
type PerformanceRow struct {
	Key          string  `json:"key"`
	Sales        float64 `json:"sales"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
}

// SubCategoryProfit é o agregado por (categoria, subcategoria)
type SubCategoryProfit struct {
	Category     string  `json:"category"`
	SubCategory  string  `json:"subCategory"`
	Sales        float64 `json:"sales"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
}

// YearPerformance é a série anual de vendas e lucro
type YearPerformance struct {
	Year   int     `json:"year"`
	Sales  float64 `json:"sales"`
	Profit float64 `json:"profit"`
}

// Overview reúne os KPIs gerais do dashboard
type Overview struct {
	TotalSales          float64           `json:"totalSales"`
	TotalProfit         float64           `json:"totalProfit"`
	OverallProfitMargin float64           `json:"overallProfitMargin"`
	YearlyPerformance   []YearPerformance `json:"yearlyPerformance"`
}

// DiscountBucket agrega os registros por faixa de desconto. Negative indica
// que a margem do grupo é negativa, ou seja, a faixa destrói lucro.
type DiscountBucket struct {
	Range        string  `json:"range"`
	Count        int     `json:"count"`
	Sales        float64 `json:"sales"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
	Negative     bool    `json:"negative"`
}

// CorrelationMatrix contém as correlações de Pearson entre as métricas
// numéricas da tabela (Sales, Quantity, Discount, Profit)
type CorrelationMatrix struct {
	Metrics []string    `json:"metrics"`
	Values  [][]float64 `json:"values"`
}

// ShipModePerformance é o agregado por modo de envio
type ShipModePerformance struct {
	Mode         string  `json:"mode"`
	Sales        float64 `json:"sales"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
	AvgShipDays  float64 `json:"avgShipDays"`
}

// ShipTimeSummary resume o tempo de envio de toda a tabela
type ShipTimeSummary struct {
	MeanDays   float64 `json:"meanDays"`
	MedianDays float64 `json:"medianDays"`
}
