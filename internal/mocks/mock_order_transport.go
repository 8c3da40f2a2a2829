package mocks

import (
	"context"

	"github.com/willcheung/robinhood-export-function/domain"
)

// MockOrderTransport implements domain.OrderTransport interface for testing
type MockOrderTransport struct {
	GetStockOrdersFunc      func(ctx context.Context, header string) ([]domain.StockOrder, error)
	GetOptionOrdersFunc     func(ctx context.Context, header string) ([]domain.OptionOrder, error)
	GetInstrumentFunc       func(ctx context.Context, header, url string) (*domain.Instrument, error)
	GetOptionInstrumentFunc func(ctx context.Context, header, url string) (*domain.OptionInstrument, error)

	GetInstrumentCalls int
}

// NewMockOrderTransport creates a new MockOrderTransport with default behaviors
func NewMockOrderTransport() *MockOrderTransport {
	return &MockOrderTransport{}
}

// GetStockOrders fetches all stock orders
func (m *MockOrderTransport) GetStockOrders(ctx context.Context, header string) ([]domain.StockOrder, error) {
	if m.GetStockOrdersFunc != nil {
		return m.GetStockOrdersFunc(ctx, header)
	}
	// Default behavior: no orders
	return nil, nil
}

// GetOptionOrders fetches all option orders
func (m *MockOrderTransport) GetOptionOrders(ctx context.Context, header string) ([]domain.OptionOrder, error) {
	if m.GetOptionOrdersFunc != nil {
		return m.GetOptionOrdersFunc(ctx, header)
	}
	// Default behavior: no orders
	return nil, nil
}

// GetInstrument resolves an instrument URL
func (m *MockOrderTransport) GetInstrument(ctx context.Context, header, url string) (*domain.Instrument, error) {
	m.GetInstrumentCalls++
	if m.GetInstrumentFunc != nil {
		return m.GetInstrumentFunc(ctx, header, url)
	}
	// Default behavior: placeholder symbol
	return &domain.Instrument{Symbol: "UNKNOWN"}, nil
}

// GetOptionInstrument resolves an option instrument URL
func (m *MockOrderTransport) GetOptionInstrument(ctx context.Context, header, url string) (*domain.OptionInstrument, error) {
	if m.GetOptionInstrumentFunc != nil {
		return m.GetOptionInstrumentFunc(ctx, header, url)
	}
	// Default behavior: empty instrument
	return &domain.OptionInstrument{}, nil
}
