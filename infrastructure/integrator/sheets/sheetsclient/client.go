package sheetsclient

import (
	"context"
	"net/http"
	"time"

	sheetsdomain "github.com/vfg2006/superstore-dashboard-api/infrastructure/integrator/sheets/domain"
	"github.com/vfg2006/superstore-dashboard-api/internal/config"
)

type Client interface {
	GetValues(ctx context.Context, params ValuesReadParams) (*sheetsdomain.ValueRange, error)
}

type SheetsClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API do Google Sheets
func NewClient(cfg *config.Config) Client {
	return &SheetsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
