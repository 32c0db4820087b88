package sheetsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	sheetsdomain "github.com/vfg2006/superstore-dashboard-api/infrastructure/integrator/sheets/domain"
)

type ValuesReadParams struct {
	SpreadsheetID string
	Range         string
	APIKey        string
}

// GetValues lê a grade completa do intervalo configurado via values.get
func (c *SheetsClient) GetValues(ctx context.Context, params ValuesReadParams) (*sheetsdomain.ValueRange, error) {
	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Sheets.BaseURL)
	if err != nil {
		return nil, &sheetsdomain.DataSourceError{
			Op:  "values.get",
			Err: fmt.Errorf("erro ao analisar a URL base: %w", err),
		}
	}
	endpoint.Path = path.Join(endpoint.Path, "spreadsheets", params.SpreadsheetID, "values", params.Range)

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("majorDimension", "ROWS")
	query.Set("key", params.APIKey)
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, &sheetsdomain.DataSourceError{
			Op:  "values.get",
			Err: fmt.Errorf("erro ao criar a requisição: %w", err),
		}
	}
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &sheetsdomain.DataSourceError{
			Op:  "values.get",
			Err: fmt.Errorf("erro ao executar a requisição: %w", err),
		}
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return nil, c.remoteError(resp)
	}

	// Decodificar a resposta JSON.
	var response sheetsdomain.ValueRange
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, &sheetsdomain.DataSourceError{
			Op:  "values.get",
			Err: fmt.Errorf("erro ao decodificar a resposta: %w", err),
		}
	}

	return &response, nil
}

// remoteError converte uma resposta de erro da API em DataSourceError,
// aproveitando o envelope de erro do Google quando ele estiver presente
func (c *SheetsClient) remoteError(resp *http.Response) error {
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if readErr != nil {
		return &sheetsdomain.DataSourceError{
			Op:         "values.get",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("requisição falhou com status: %s", resp.Status),
		}
	}

	var remote sheetsdomain.ErrorResponse
	if err := json.Unmarshal(body, &remote); err == nil && remote.Error.Message != "" {
		reason := remote.Error.Message
		if remote.IsAuthError() {
			reason = fmt.Sprintf("credencial recusada pela fonte: %s", remote.Error.Message)
		}
		return &sheetsdomain.DataSourceError{
			Op:         "values.get",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s (%s)", reason, remote.Error.Status),
		}
	}

	return &sheetsdomain.DataSourceError{
		Op:         "values.get",
		StatusCode: resp.StatusCode,
		Err:        fmt.Errorf("requisição falhou com status: %s", resp.Status),
	}
}
