package entity

import "github.com/shopspring/decimal"

// Stock status classification.
const (
	StatusHealthy  = "HEALTHY"
	StatusLowStock = "LOW_STOCK"
	StatusCritical = "CRITICAL"
)

// StockSnapshot is the derived, non-persisted stock state of one item,
// recomputed from its full event history at query time.
type StockSnapshot struct {
	ItemName       string
	Unit           string
	TotalPurchased decimal.Decimal // opening + purchases
	TotalIssued    decimal.Decimal
	TotalReturned  decimal.Decimal
	NetIssued      decimal.Decimal // issued − returned
	CurrentStock   decimal.Decimal // purchased − netIssued
	InField        decimal.Decimal // = netIssued; out with crews, not yet returned
	TotalWeight    decimal.Decimal // kg on hand; zero unless the category is weight-tracked
	Status         string
}
