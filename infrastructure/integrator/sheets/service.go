package sheets

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/superstore-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/superstore-dashboard-api/internal/config"
	"github.com/vfg2006/superstore-dashboard-api/internal/domain"
)

type SheetsIntegrator interface {
	// FetchSalesTable lê a planilha completa e a converte em registros de venda
	FetchSalesTable(ctx context.Context) ([]domain.SalesRecord, error)
}

type SheetsService struct {
	cfg    *config.Config
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) SheetsIntegrator {
	return &SheetsService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SheetsService) FetchSalesTable(ctx context.Context) ([]domain.SalesRecord, error) {
	params := sheetsclient.ValuesReadParams{
		SpreadsheetID: s.cfg.Sheets.SpreadsheetID,
		Range:         s.cfg.Sheets.Range,
		APIKey:        s.cfg.Sheets.APIKey,
	}

	resp, err := s.Client.GetValues(ctx, params)
	if err != nil {
		return nil, err
	}

	records, skipped, err := parseGrid(resp.Values)
	if err != nil {
		return nil, err
	}

	if skipped > 0 {
		logrus.WithFields(logrus.Fields{
			"skipped_rows": skipped,
			"parsed_rows":  len(records),
		}).Warn("Linhas da planilha ignoradas por valores malformados")
	}

	return records, nil
}
