package services

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/willcheung/robinhood-export-function/domain"
)

var stockOrderHeader = []string{
	"symbol",
	"date",
	"order_type",
	"side",
	"fees",
	"quantity",
	"average_price",
}

var optionOrderHeader = []string{
	"chain_symbol",
	"expiration_date",
	"strike_price",
	"option_type",
	"side",
	"order_created_at",
	"direction",
	"order_quantity",
	"order_type",
	"opening_strategy",
	"closing_strategy",
	"price",
	"processed_quantity",
}

// RenderStockOrdersCSV renders exported stock orders as CSV with a header row.
func RenderStockOrdersCSV(rows []domain.StockOrderRow) ([]byte, error) {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, stockOrderHeader)
	for _, row := range rows {
		records = append(records, []string{
			row.Symbol,
			row.Date,
			row.OrderType,
			row.Side,
			row.Fees,
			row.Quantity,
			row.AveragePrice,
		})
	}
	return renderCSV(records)
}

// RenderOptionOrdersCSV renders exported option orders as CSV with a header row.
func RenderOptionOrdersCSV(rows []domain.OptionOrderRow) ([]byte, error) {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, optionOrderHeader)
	for _, row := range rows {
		records = append(records, []string{
			row.ChainSymbol,
			row.ExpirationDate,
			row.StrikePrice,
			row.OptionType,
			row.Side,
			row.OrderCreatedAt,
			row.Direction,
			row.OrderQuantity,
			row.OrderType,
			row.OpeningStrategy,
			row.ClosingStrategy,
			row.Price,
			row.ProcessedQuantity,
		})
	}
	return renderCSV(records)
}

func renderCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}
