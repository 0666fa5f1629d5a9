package repository

import (
	"time"

	"github.com/mvr-infra/materials-api/internal/domain/entity"
)

// EventFilter narrows ListByCategory. Zero values mean "no constraint".
type EventFilter struct {
	ItemName        string // case-insensitive exact match
	DateFrom        *time.Time
	DateTo          *time.Time
	CounterpartyRef string
}

// LedgerRepository is the persistence port for ledger events (DIP).
// Results are ordered by (timestamp, id) so callers can paginate stably.
type LedgerRepository interface {
	Create(ev *entity.LedgerEvent) error
	GetByID(id string) (*entity.LedgerEvent, error)
	// Update replaces the mutable fields of an existing event atomically.
	// Category and Kind are part of event identity and are never touched.
	Update(ev *entity.LedgerEvent) error
	Delete(id string) error
	ListByCategory(category string, filter EventFilter) ([]*entity.LedgerEvent, error)
	// ListByItem returns the full history for one item, the input to a fold.
	ListByItem(category, itemName string) ([]*entity.LedgerEvent, error)
}
