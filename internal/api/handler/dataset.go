package handler

import (
	"net/http"

	"github.com/vfg2006/superstore-dashboard-api/internal/usecases/dataset"
	"github.com/vfg2006/superstore-dashboard-api/pkg/log"
)

// DatasetStatusResponse descreve o snapshot atual do cache para o operador
type DatasetStatusResponse struct {
	Snapshot *dataset.SnapshotInfo `json:"snapshot"`
}

// RefreshDataset força uma nova leitura da planilha, ignorando o TTL do
// cache. É o caminho do botão "atualizar" do dashboard; falhas propagam
// para que o operador as veja.
func RefreshDataset(datasetService dataset.DatasetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dataset: explicit refresh requested")

		info, err := datasetService.Refresh(r.Context())
		if err != nil {
			logger.WithField("error", err.Error()).Error("dataset: explicit refresh failed")

			writeFetchError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"snapshot_id": info.ID,
			"row_count":   info.RowCount,
		}).Info("dataset: refresh completed")

		writeJSON(w, r, DatasetStatusResponse{Snapshot: info})
	})
}

// GetDatasetStatus retorna os metadados do snapshot em cache (ou snapshot
// nulo quando nada foi carregado ainda)
func GetDatasetStatus(datasetService dataset.DatasetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, DatasetStatusResponse{Snapshot: datasetService.Status()})
	})
}
