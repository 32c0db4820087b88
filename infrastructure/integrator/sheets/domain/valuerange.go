package sheetsdomain

// ValueRange é a resposta da operação values.get da API do Google Sheets.
// As células chegam como any: com a renderização padrão (FORMATTED_VALUE) são
// strings, mas a API pode devolver números e booleanos dependendo da planilha.
type ValueRange struct {
	Range          string  `json:"range,omitempty"`
	MajorDimension string  `json:"majorDimension,omitempty"`
	Values         [][]any `json:"values,omitempty"`
}
