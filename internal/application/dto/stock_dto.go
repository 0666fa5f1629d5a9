package dto

import "github.com/shopspring/decimal"

// StockRowResponse is one reconciled item in a stock report.
type StockRowResponse struct {
	ItemName       string          `json:"item_name"`
	Unit           string          `json:"unit"`
	TotalPurchased decimal.Decimal `json:"total_purchased"`
	TotalIssued    decimal.Decimal `json:"total_issued"`
	TotalReturned  decimal.Decimal `json:"total_returned"`
	InField        decimal.Decimal `json:"in_field"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	TotalWeight    decimal.Decimal `json:"total_weight,omitempty"`
	Status         string          `json:"status"`
	StatusColor    string          `json:"status_color"` // hex token shared with the PDF renderer
}

// StockListResponse wraps a paginated stock overview.
type StockListResponse struct {
	Rows []StockRowResponse `json:"rows"`
	Page PageResponse       `json:"page"`
}
