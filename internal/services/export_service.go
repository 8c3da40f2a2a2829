package services

import (
	"context"
	"fmt"
	"log"

	"github.com/willcheung/robinhood-export-function/domain"
)

// ExportServiceImpl implements domain.ExportService. Every export is
// login-gated: the guard runs before any outbound call.
type ExportServiceImpl struct {
	orders    domain.OrderTransport
	authState domain.AuthState
	audit     domain.AuditLogger
}

// NewExportService creates a new export service
func NewExportService(orders domain.OrderTransport, authState domain.AuthState, audit domain.AuditLogger) domain.ExportService {
	return &ExportServiceImpl{
		orders:    orders,
		authState: authState,
		audit:     audit,
	}
}

// CompletedStockOrders implements domain.ExportService. Only filled,
// non-cancellable orders are exported.
func (s *ExportServiceImpl) CompletedStockOrders(ctx context.Context) ([]domain.StockOrderRow, error) {
	header, ok := s.authState.AuthorizationHeader()
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	orders, err := s.orders.GetStockOrders(ctx, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}

	// Instrument URLs repeat heavily across orders of the same symbol.
	symbols := make(map[string]string)

	rows := make([]domain.StockOrderRow, 0, len(orders))
	for _, order := range orders {
		if order.State != "filled" || order.Cancel != nil {
			continue
		}

		symbol, cached := symbols[order.Instrument]
		if !cached {
			instrument, err := s.orders.GetInstrument(ctx, header, order.Instrument)
			if err != nil {
				return nil, fmt.Errorf("resolve instrument %s: %w", order.Instrument, err)
			}
			symbol = instrument.Symbol
			symbols[order.Instrument] = symbol
		}

		rows = append(rows, domain.StockOrderRow{
			Symbol:       symbol,
			Date:         order.LastTransactionAt,
			OrderType:    order.Type,
			Side:         order.Side,
			Fees:         order.Fees,
			Quantity:     order.Quantity,
			AveragePrice: order.AveragePrice,
		})
	}

	s.logExport(ctx, "export_stocks_orders")
	return rows, nil
}

// CompletedOptionOrders implements domain.ExportService. Filled orders are
// expanded into one row per leg.
func (s *ExportServiceImpl) CompletedOptionOrders(ctx context.Context) ([]domain.OptionOrderRow, error) {
	header, ok := s.authState.AuthorizationHeader()
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	orders, err := s.orders.GetOptionOrders(ctx, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}

	var rows []domain.OptionOrderRow
	for _, order := range orders {
		if order.State != "filled" {
			continue
		}
		for _, leg := range order.Legs {
			instrument, err := s.orders.GetOptionInstrument(ctx, header, leg.Option)
			if err != nil {
				return nil, fmt.Errorf("resolve option instrument %s: %w", leg.Option, err)
			}
			rows = append(rows, domain.OptionOrderRow{
				ChainSymbol:       order.ChainSymbol,
				ExpirationDate:    instrument.ExpirationDate,
				StrikePrice:       instrument.StrikePrice,
				OptionType:        instrument.Type,
				Side:              leg.Side,
				OrderCreatedAt:    order.CreatedAt,
				Direction:         order.Direction,
				OrderQuantity:     order.Quantity,
				OrderType:         order.Type,
				OpeningStrategy:   order.OpeningStrategy,
				ClosingStrategy:   order.ClosingStrategy,
				Price:             order.Price,
				ProcessedQuantity: order.ProcessedQuantity,
			})
		}
	}

	s.logExport(ctx, "export_options_orders")
	return rows, nil
}

func (s *ExportServiceImpl) logExport(ctx context.Context, operation string) {
	if s.audit == nil {
		return
	}
	event := domain.NewAuditEvent(domain.ExportEvent).WithOperation(operation)
	if err := s.audit.LogEvent(ctx, event); err != nil {
		log.Printf("audit log failed: %v", err)
	}
}
