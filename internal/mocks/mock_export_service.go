package mocks

import (
	"context"

	"github.com/willcheung/robinhood-export-function/domain"
)

// MockExportService implements domain.ExportService interface for testing
type MockExportService struct {
	CompletedStockOrdersFunc  func(ctx context.Context) ([]domain.StockOrderRow, error)
	CompletedOptionOrdersFunc func(ctx context.Context) ([]domain.OptionOrderRow, error)
}

// NewMockExportService creates a new MockExportService with default behaviors
func NewMockExportService() *MockExportService {
	return &MockExportService{}
}

// CompletedStockOrders exports completed stock orders
func (m *MockExportService) CompletedStockOrders(ctx context.Context) ([]domain.StockOrderRow, error) {
	if m.CompletedStockOrdersFunc != nil {
		return m.CompletedStockOrdersFunc(ctx)
	}
	// Default behavior: empty export
	return nil, nil
}

// CompletedOptionOrders exports completed option orders
func (m *MockExportService) CompletedOptionOrders(ctx context.Context) ([]domain.OptionOrderRow, error) {
	if m.CompletedOptionOrdersFunc != nil {
		return m.CompletedOptionOrdersFunc(ctx)
	}
	// Default behavior: empty export
	return nil, nil
}
