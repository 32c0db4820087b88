package domain

import "time"

// SalesRecord representa uma linha da planilha de vendas da Superstore.
// Os registros são somente leitura depois de carregados: a planilha é a única
// escritora do dado.
type SalesRecord struct {
	OrderDate   time.Time `json:"orderDate"`
	ShipDate    time.Time `json:"shipDate"`
	ShipMode    string    `json:"shipMode"`
	Segment     string    `json:"segment"`
	State       string    `json:"state"`
	Region      string    `json:"region"`
	Category    string    `json:"category"`
	SubCategory string    `json:"subCategory"`
	Sales       float64   `json:"sales"`
	Quantity    int       `json:"quantity"`
	Discount    float64   `json:"discount"`
	Profit      float64   `json:"profit"`
}

// ShipDays retorna o tempo de envio em dias (fração incluída)
func (r SalesRecord) ShipDays() float64 {
	return r.ShipDate.Sub(r.OrderDate).Hours() / 24
}
