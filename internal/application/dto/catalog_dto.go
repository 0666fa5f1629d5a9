package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterItemRequest body for POST /api/catalog/:category/items.
type RegisterItemRequest struct {
	Name          string           `json:"name" validate:"required"`
	Unit          string           `json:"unit" validate:"required"`
	PerUnitWeight *decimal.Decimal `json:"per_unit_weight,omitempty"`
}

// ItemResponse is a catalog entry as returned to clients.
type ItemResponse struct {
	ID            string          `json:"id"`
	Category      string          `json:"category"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	PerUnitWeight decimal.Decimal `json:"per_unit_weight"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ItemListResponse wraps a category's catalog.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
