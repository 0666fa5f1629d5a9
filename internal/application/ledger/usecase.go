// Package ledger implements the append-only event store operations: record,
// edit, delete and list. All writes go through the TxRunner so the store
// itself is the unit of atomicity.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mvr-infra/materials-api/internal/application/dto"
	"github.com/mvr-infra/materials-api/internal/domain"
	"github.com/mvr-infra/materials-api/internal/domain/entity"
	"github.com/mvr-infra/materials-api/internal/domain/repository"
	"github.com/mvr-infra/materials-api/internal/domain/stock"
)

// LedgerUseCase validates and persists ledger events.
type LedgerUseCase struct {
	txRunner   TxRunner
	ledgerRepo repository.LedgerRepository
	itemRepo   repository.ItemRepository
}

// NewLedgerUseCase builds the use case.
func NewLedgerUseCase(txRunner TxRunner, ledgerRepo repository.LedgerRepository, itemRepo repository.ItemRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, ledgerRepo: ledgerRepo, itemRepo: itemRepo}
}

// validateEntry checks the shared entry rules: positive quantity, item exists
// in the category's catalog, unit matches the catalog unit (a stale client
// form is the usual source of mismatches). Returns the catalog item.
func validateEntry(itemRepo repository.ItemRepository, category, itemName string, quantity decimal.Decimal, unit string) (*entity.Item, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}
	item, err := itemRepo.GetByName(category, itemName)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrUnknownItem
	}
	if item.Unit != unit {
		return nil, domain.ErrUnitMismatch
	}
	return item, nil
}

// RecordEvent appends a new event to the ledger.
func (uc *LedgerUseCase) RecordEvent(ctx context.Context, category, userID string, in dto.RecordEventRequest) (*dto.EventResponse, error) {
	if !entity.ValidCategory(category) || !entity.ValidKind(in.Kind) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	ts := now
	if in.Timestamp != nil {
		ts = *in.Timestamp
	}

	ev := &entity.LedgerEvent{
		ID:              uuid.New().String(),
		Category:        category,
		Kind:            in.Kind,
		ItemName:        in.ItemName,
		Quantity:        in.Quantity,
		Unit:            in.Unit,
		Timestamp:       ts,
		CounterpartyRef: in.CounterpartyRef,
		SourceDocRef:    in.SourceDocRef,
		CreatedAt:       now,
		CreatedBy:       userID,
	}

	var item *entity.Item
	err := uc.txRunner.Run(ctx, func(ledgerRepo repository.LedgerRepository, itemRepo repository.ItemRepository) error {
		var err error
		item, err = validateEntry(itemRepo, category, in.ItemName, in.Quantity, in.Unit)
		if err != nil {
			return err
		}
		// Store the catalog spelling, not whatever casing the form sent.
		ev.ItemName = item.Name
		return ledgerRepo.Create(ev)
	})
	if err != nil {
		return nil, err
	}
	return toEventResponse(ev, item), nil
}

// EditEvent replaces the mutable fields of an existing event. Category and
// kind are part of event identity and cannot change; the whole replace is one
// transaction so a concurrent read never sees a half-applied patch.
func (uc *LedgerUseCase) EditEvent(ctx context.Context, id string, in dto.EditEventRequest) (*dto.EventResponse, error) {
	var (
		ev   *entity.LedgerEvent
		item *entity.Item
	)
	err := uc.txRunner.Run(ctx, func(ledgerRepo repository.LedgerRepository, itemRepo repository.ItemRepository) error {
		var err error
		ev, err = ledgerRepo.GetByID(id)
		if err != nil {
			return err
		}
		if ev == nil {
			return domain.ErrNotFound
		}
		item, err = validateEntry(itemRepo, ev.Category, in.ItemName, in.Quantity, in.Unit)
		if err != nil {
			return err
		}
		ev.ItemName = item.Name
		ev.Quantity = in.Quantity
		ev.Unit = in.Unit
		if in.Timestamp != nil {
			ev.Timestamp = *in.Timestamp
		}
		ev.CounterpartyRef = in.CounterpartyRef
		ev.SourceDocRef = in.SourceDocRef
		return ledgerRepo.Update(ev)
	})
	if err != nil {
		return nil, err
	}
	return toEventResponse(ev, item), nil
}

// DeleteEvent removes an event permanently. There is no soft delete: the
// caller confirms with the operator before invoking this, and any undo is a
// compensating re-entry, not a restore.
func (uc *LedgerUseCase) DeleteEvent(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(ledgerRepo repository.LedgerRepository, _ repository.ItemRepository) error {
		ev, err := ledgerRepo.GetByID(id)
		if err != nil {
			return err
		}
		if ev == nil {
			return domain.ErrNotFound
		}
		return ledgerRepo.Delete(id)
	})
}

// ListEvents returns a filtered, (timestamp, id)-ordered page of events.
func (uc *LedgerUseCase) ListEvents(category string, in dto.ListEventsRequest) ([]*entity.LedgerEvent, error) {
	if !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	return uc.ledgerRepo.ListByCategory(category, repository.EventFilter{
		ItemName:        in.ItemName,
		DateFrom:        in.DateFrom,
		DateTo:          in.DateTo,
		CounterpartyRef: in.CounterpartyRef,
	})
}

// ToEventResponses maps events to response DTOs, deriving per-event weight
// from the catalog where the category tracks it.
func (uc *LedgerUseCase) ToEventResponses(events []*entity.LedgerEvent) ([]dto.EventResponse, error) {
	out := make([]dto.EventResponse, 0, len(events))
	items := map[string]*entity.Item{}
	for _, ev := range events {
		key := ev.Category + "/" + entity.NormalizeName(ev.ItemName)
		item, ok := items[key]
		if !ok {
			var err error
			item, err = uc.itemRepo.GetByName(ev.Category, ev.ItemName)
			if err != nil {
				return nil, err
			}
			items[key] = item
		}
		out = append(out, *toEventResponse(ev, item))
	}
	return out, nil
}

func toEventResponse(ev *entity.LedgerEvent, item *entity.Item) *dto.EventResponse {
	weight := decimal.Zero
	if item != nil {
		weight = stock.EventWeight(item, ev)
	}
	return &dto.EventResponse{
		ID:              ev.ID,
		Category:        ev.Category,
		Kind:            ev.Kind,
		ItemName:        ev.ItemName,
		Quantity:        ev.Quantity,
		Unit:            ev.Unit,
		Weight:          weight,
		Timestamp:       ev.Timestamp,
		CounterpartyRef: ev.CounterpartyRef,
		SourceDocRef:    ev.SourceDocRef,
	}
}
