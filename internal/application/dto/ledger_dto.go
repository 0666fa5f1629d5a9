package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordEventRequest body for POST /api/ledger/:category/events.
type RecordEventRequest struct {
	Kind            string          `json:"kind" validate:"required"`
	ItemName        string          `json:"item_name" validate:"required"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit" validate:"required"`
	Timestamp       *time.Time      `json:"timestamp,omitempty"` // defaults to now
	CounterpartyRef string          `json:"counterparty_ref,omitempty"`
	SourceDocRef    string          `json:"source_doc_ref,omitempty"`
}

// EditEventRequest body for PUT /api/ledger/events/:id. Category and kind are
// immutable and deliberately absent.
type EditEventRequest struct {
	ItemName        string          `json:"item_name" validate:"required"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit" validate:"required"`
	Timestamp       *time.Time      `json:"timestamp,omitempty"`
	CounterpartyRef string          `json:"counterparty_ref,omitempty"`
	SourceDocRef    string          `json:"source_doc_ref,omitempty"`
}

// ListEventsRequest query params for GET /api/ledger/:category/events.
type ListEventsRequest struct {
	ItemName        string     `query:"item_name"`
	DateFrom        *time.Time `query:"date_from"`
	DateTo          *time.Time `query:"date_to"`
	CounterpartyRef string     `query:"counterparty_ref"`
	PageRequest
}

// EventResponse is a ledger event as returned to clients.
type EventResponse struct {
	ID              string          `json:"id"`
	Category        string          `json:"category"`
	Kind            string          `json:"kind"`
	ItemName        string          `json:"item_name"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	Weight          decimal.Decimal `json:"weight,omitempty"` // quantity × PUW, weight-tracked categories only
	Timestamp       time.Time       `json:"timestamp"`
	CounterpartyRef string          `json:"counterparty_ref,omitempty"`
	SourceDocRef    string          `json:"source_doc_ref,omitempty"`
}

// EventListResponse wraps a paginated event listing.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Page   PageResponse    `json:"page"`
}
