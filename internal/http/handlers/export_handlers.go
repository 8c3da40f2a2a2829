package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/willcheung/robinhood-export-function/domain"
	"github.com/willcheung/robinhood-export-function/internal/services"
)

// ExportHandlers handles trade-history export HTTP requests
type ExportHandlers struct {
	exportSvc domain.ExportService
}

// NewExportHandlers creates new export handlers
func NewExportHandlers(exportSvc domain.ExportService) *ExportHandlers {
	return &ExportHandlers{exportSvc: exportSvc}
}

// Stocks exports completed stock orders as JSON or, with ?format=csv, as a
// CSV attachment.
func (h *ExportHandlers) Stocks(c *gin.Context) {
	rows, err := h.exportSvc.CompletedStockOrders(c.Request.Context())
	if err != nil {
		exportError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		body, err := services.RenderStockOrdersCSV(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="stocks_orders.csv"`)
		c.Data(http.StatusOK, "text/csv", body)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// Options exports completed option orders, one row per leg.
func (h *ExportHandlers) Options(c *gin.Context) {
	rows, err := h.exportSvc.CompletedOptionOrders(c.Request.Context())
	if err != nil {
		exportError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		body, err := services.RenderOptionOrdersCSV(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="options_orders.csv"`)
		c.Data(http.StatusOK, "text/csv", body)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func exportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
	case errors.Is(err, domain.ErrConnectivity):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Brokerage unreachable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
	}
}
