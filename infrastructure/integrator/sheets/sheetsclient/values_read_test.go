package sheetsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sheetsdomain "github.com/vfg2006/superstore-dashboard-api/infrastructure/integrator/sheets/domain"
	"github.com/vfg2006/superstore-dashboard-api/internal/config"
)

func newTestClient(baseURL string) *SheetsClient {
	cfg := &config.Config{
		Sheets: config.Sheets{BaseURL: baseURL},
	}
	return NewClient(cfg).(*SheetsClient)
}

func TestGetValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spreadsheets/sheet123/values/Orders!A:Z", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.Equal(t, "ROWS", r.URL.Query().Get("majorDimension"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"range": "Orders!A1:L3",
			"majorDimension": "ROWS",
			"values": [["Order Date", "Profit"], ["2017-11-08", "41.91"]]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.GetValues(context.Background(), ValuesReadParams{
		SpreadsheetID: "sheet123",
		Range:         "Orders!A:Z",
		APIKey:        "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "Orders!A1:L3", resp.Range)
	require.Len(t, resp.Values, 2)
	assert.Equal(t, "Order Date", resp.Values[0][0])
}

func TestGetValuesRemoteErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": 403, "message": "The caller does not have permission", "status": "PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetValues(context.Background(), ValuesReadParams{
		SpreadsheetID: "sheet123",
		Range:         "Orders!A:Z",
		APIKey:        "wrong",
	})
	require.Error(t, err)

	assert.True(t, sheetsdomain.IsDataSourceError(err))
	assert.Contains(t, err.Error(), "credencial recusada")
	assert.Contains(t, err.Error(), "PERMISSION_DENIED")
}

func TestGetValuesNonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream timeout"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetValues(context.Background(), ValuesReadParams{
		SpreadsheetID: "sheet123",
		Range:         "Orders!A:Z",
		APIKey:        "secret",
	})
	require.Error(t, err)

	var sourceErr *sheetsdomain.DataSourceError
	require.ErrorAs(t, err, &sourceErr)
	assert.Equal(t, http.StatusBadGateway, sourceErr.StatusCode)
}

func TestGetValuesConnectionRefused(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")

	_, err := client.GetValues(context.Background(), ValuesReadParams{
		SpreadsheetID: "sheet123",
		Range:         "Orders!A:Z",
		APIKey:        "secret",
	})
	require.Error(t, err)
	assert.True(t, sheetsdomain.IsDataSourceError(err))
}
