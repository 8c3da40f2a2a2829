package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/willcheung/robinhood-export-function/domain"
	"github.com/willcheung/robinhood-export-function/internal/mocks"
)

func exportRouter(exportSvc *mocks.MockExportService) *gin.Engine {
	handlers := NewExportHandlers(exportSvc)
	r := gin.New()
	r.GET("/export/stocks", handlers.Stocks)
	r.GET("/export/options", handlers.Options)
	return r
}

func TestExportHandlers_Stocks_JSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	exportSvc := mocks.NewMockExportService()
	exportSvc.CompletedStockOrdersFunc = func(ctx context.Context) ([]domain.StockOrderRow, error) {
		return []domain.StockOrderRow{
			{Symbol: "AAPL", Date: "2020-01-02T15:04:05Z", OrderType: "market", Side: "buy", Fees: "0.00", Quantity: "10.00000000", AveragePrice: "100.50"},
		}, nil
	}
	r := exportRouter(exportSvc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export/stocks", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Data []domain.StockOrderRow `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].Symbol != "AAPL" {
		t.Errorf("data = %+v", body.Data)
	}
}

func TestExportHandlers_Stocks_CSV(t *testing.T) {
	gin.SetMode(gin.TestMode)

	exportSvc := mocks.NewMockExportService()
	exportSvc.CompletedStockOrdersFunc = func(ctx context.Context) ([]domain.StockOrderRow, error) {
		return []domain.StockOrderRow{
			{Symbol: "AAPL", Date: "2020-01-02T15:04:05Z", OrderType: "market", Side: "buy", Fees: "0.00", Quantity: "10.00000000", AveragePrice: "100.50"},
		}, nil
	}
	r := exportRouter(exportSvc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export/stocks?format=csv", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q, want text/csv", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "stocks_orders.csv") {
		t.Errorf("content disposition = %q", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "symbol,date,order_type") {
		t.Errorf("body = %q, want csv with header row", w.Body.String())
	}
}

func TestExportHandlers_Options_ErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"not logged in", domain.ErrNotAuthenticated, http.StatusUnauthorized},
		{"brokerage unreachable", domain.ErrConnectivity, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exportSvc := mocks.NewMockExportService()
			exportSvc.CompletedOptionOrdersFunc = func(ctx context.Context) ([]domain.OptionOrderRow, error) {
				return nil, tt.err
			}
			r := exportRouter(exportSvc)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export/options", nil))

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}
		})
	}
}
