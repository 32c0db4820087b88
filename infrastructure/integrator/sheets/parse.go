package sheets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	sheetsdomain "github.com/vfg2006/superstore-dashboard-api/infrastructure/integrator/sheets/domain"
	"github.com/vfg2006/superstore-dashboard-api/internal/domain"
)

// Nomes de coluna esperados no cabeçalho da planilha (assumidos estáveis)
const (
	colOrderDate   = "Order Date"
	colShipDate    = "Ship Date"
	colShipMode    = "Ship Mode"
	colSegment     = "Segment"
	colState       = "State"
	colRegion      = "Region"
	colCategory    = "Category"
	colSubCategory = "Sub-Category"
	colSales       = "Sales"
	colQuantity    = "Quantity"
	colDiscount    = "Discount"
	colProfit      = "Profit"
)

var requiredColumns = []string{
	colOrderDate,
	colShipDate,
	colShipMode,
	colSegment,
	colState,
	colRegion,
	colCategory,
	colSubCategory,
	colSales,
	colQuantity,
	colDiscount,
	colProfit,
}

// Formatos de data aceitos nas células (exportações variam entre os dois)
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
}

// parseGrid converte a grade bruta da planilha em registros de venda.
// A primeira linha é o cabeçalho e define o índice de cada coluna; a ordem
// das colunas na planilha não importa. Linhas com valores malformados são
// descartadas e contadas, não derrubam a carga inteira.
func parseGrid(values [][]any) ([]domain.SalesRecord, int, error) {
	if len(values) == 0 {
		return nil, 0, &sheetsdomain.ParseError{Reason: "resposta sem linhas (nem cabeçalho)"}
	}

	index, err := headerIndex(values[0])
	if err != nil {
		return nil, 0, err
	}

	records := make([]domain.SalesRecord, 0, len(values)-1)
	skipped := 0

	for _, row := range values[1:] {
		record, ok := parseRow(row, index)
		if !ok {
			skipped++
			continue
		}
		records = append(records, record)
	}

	return records, skipped, nil
}

// headerIndex mapeia nome de coluna -> posição, validando as obrigatórias
func headerIndex(header []any) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, cell := range header {
		name := strings.TrimSpace(cellString(cell))
		if name == "" {
			continue
		}
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}

	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, &sheetsdomain.ParseError{
				Column: name,
				Reason: "coluna obrigatória ausente no cabeçalho",
			}
		}
	}

	return index, nil
}

func parseRow(row []any, index map[string]int) (domain.SalesRecord, bool) {
	var record domain.SalesRecord

	orderDate, ok := cellDate(row, index[colOrderDate])
	if !ok {
		return record, false
	}
	shipDate, ok := cellDate(row, index[colShipDate])
	if !ok {
		return record, false
	}
	sales, ok := cellFloat(row, index[colSales])
	if !ok {
		return record, false
	}
	discount, ok := cellFloat(row, index[colDiscount])
	if !ok {
		return record, false
	}
	profit, ok := cellFloat(row, index[colProfit])
	if !ok {
		return record, false
	}
	quantity, ok := cellInt(row, index[colQuantity])
	if !ok {
		return record, false
	}

	record = domain.SalesRecord{
		OrderDate:   orderDate,
		ShipDate:    shipDate,
		ShipMode:    cellAt(row, index[colShipMode]),
		Segment:     cellAt(row, index[colSegment]),
		State:       cellAt(row, index[colState]),
		Region:      cellAt(row, index[colRegion]),
		Category:    cellAt(row, index[colCategory]),
		SubCategory: cellAt(row, index[colSubCategory]),
		Sales:       sales,
		Quantity:    quantity,
		Discount:    discount,
		Profit:      profit,
	}

	return record, true
}

func cellAt(row []any, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(cellString(row[i]))
}

// cellString aceita os tipos que a API do Sheets pode devolver por célula
func cellString(cell any) string {
	switch v := cell.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func cellFloat(row []any, i int) (float64, bool) {
	raw := cellAt(row, i)
	if raw == "" {
		return 0, false
	}

	// Planilhas formatadas podem trazer símbolo de moeda e separador de milhar
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.ReplaceAll(raw, ",", "")

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

func cellInt(row []any, i int) (int, bool) {
	value, ok := cellFloat(row, i)
	if !ok {
		return 0, false
	}
	return int(value), true
}

func cellDate(row []any, i int) (time.Time, bool) {
	raw := cellAt(row, i)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, raw); err == nil {
			return date, true
		}
	}

	return time.Time{}, false
}
