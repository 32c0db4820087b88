package sheetsdomain

import (
	"errors"
	"fmt"
)

// ErrorResponse representa a estrutura de erro da API do Google Sheets
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Google Sheets
type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// IsAuthError verifica se o erro remoto é de credencial inválida ou sem permissão
func (e *ErrorResponse) IsAuthError() bool {
	return e.Error.Code == 401 || e.Error.Code == 403 ||
		e.Error.Status == "UNAUTHENTICATED" || e.Error.Status == "PERMISSION_DENIED"
}

// DataSourceError indica falha ao alcançar a fonte remota: erro de rede, de
// autenticação ou erro do lado do servidor durante o fetch.
type DataSourceError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *DataSourceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fonte de dados indisponível em %s (status %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fonte de dados indisponível em %s: %v", e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// ParseError indica que a resposta da fonte não corresponde ao mapeamento de
// colunas esperado. É distinto de DataSourceError para que o operador saiba
// diferenciar "planilha inacessível" de "esquema da planilha mudou".
type ParseError struct {
	Column string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("esquema da planilha inválido: coluna %q: %s", e.Column, e.Reason)
	}
	return fmt.Sprintf("esquema da planilha inválido: %s", e.Reason)
}

// IsDataSourceError verifica se o erro (ou sua cadeia) é um DataSourceError
func IsDataSourceError(err error) bool {
	var target *DataSourceError
	return errors.As(err, &target)
}

// IsParseError verifica se o erro (ou sua cadeia) é um ParseError
func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}
