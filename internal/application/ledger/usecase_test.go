package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvr-infra/materials-api/internal/application/dto"
	"github.com/mvr-infra/materials-api/internal/application/ledger"
	"github.com/mvr-infra/materials-api/internal/application/stock"
	"github.com/mvr-infra/materials-api/internal/domain"
	"github.com/mvr-infra/materials-api/internal/domain/entity"
	"github.com/mvr-infra/materials-api/internal/infrastructure/memory"
)

type ledgerFixture struct {
	ledgerUC *ledger.LedgerUseCase
	stockUC  *stock.StockUseCase
	itemRepo *memory.ItemRepo
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	store := memory.NewStore()
	itemRepo := memory.NewItemRepository(store)
	ledgerRepo := memory.NewLedgerRepository(store)
	f := &ledgerFixture{
		ledgerUC: ledger.NewLedgerUseCase(memory.NewTxRunner(store), ledgerRepo, itemRepo),
		stockUC:  stock.NewStockUseCase(itemRepo, ledgerRepo),
		itemRepo: itemRepo,
	}
	require.NoError(t, itemRepo.Create(&entity.Item{
		ID:            "i1",
		Category:      entity.CategoryScaffolding,
		Name:          "Scaffold Pipe",
		Unit:          "pcs",
		PerUnitWeight: decimal.NewFromFloat(2.5),
	}))
	return f
}

func (f *ledgerFixture) record(t *testing.T, kind string, qty int64) *dto.EventResponse {
	t.Helper()
	resp, err := f.ledgerUC.RecordEvent(context.Background(), entity.CategoryScaffolding, "u1", dto.RecordEventRequest{
		Kind: kind, ItemName: "Scaffold Pipe", Quantity: decimal.NewFromInt(qty), Unit: "pcs",
	})
	require.NoError(t, err)
	return resp
}

// The invariant must hold after every mutation, not only after appends.
func (f *ledgerFixture) assertReconciled(t *testing.T) *entity.StockSnapshot {
	t.Helper()
	snap, err := f.stockUC.ComputeSnapshot(entity.CategoryScaffolding, "Scaffold Pipe")
	require.NoError(t, err)
	assert.True(t, snap.CurrentStock.Add(snap.InField).Equal(snap.TotalPurchased))
	return snap
}

func TestRecordEvent_RejectsNonPositiveQuantity(t *testing.T) {
	f := newLedgerFixture(t)
	_, err := f.ledgerUC.RecordEvent(context.Background(), entity.CategoryScaffolding, "u1", dto.RecordEventRequest{
		Kind: entity.KindIssue, ItemName: "Scaffold Pipe", Quantity: decimal.Zero, Unit: "pcs",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestRecordEvent_RejectsUnknownItem(t *testing.T) {
	f := newLedgerFixture(t)
	_, err := f.ledgerUC.RecordEvent(context.Background(), entity.CategoryScaffolding, "u1", dto.RecordEventRequest{
		Kind: entity.KindOpening, ItemName: "Ledger Beam", Quantity: decimal.NewFromInt(5), Unit: "pcs",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownItem)
}

func TestRecordEvent_RejectsUnitMismatch(t *testing.T) {
	f := newLedgerFixture(t)
	_, err := f.ledgerUC.RecordEvent(context.Background(), entity.CategoryScaffolding, "u1", dto.RecordEventRequest{
		Kind: entity.KindOpening, ItemName: "Scaffold Pipe", Quantity: decimal.NewFromInt(5), Unit: "kg",
	})
	assert.ErrorIs(t, err, domain.ErrUnitMismatch)
}

func TestRecordEvent_RejectsUnknownKindAndCategory(t *testing.T) {
	f := newLedgerFixture(t)
	_, err := f.ledgerUC.RecordEvent(context.Background(), entity.CategoryScaffolding, "u1", dto.RecordEventRequest{
		Kind: "TRANSFER", ItemName: "Scaffold Pipe", Quantity: decimal.NewFromInt(5), Unit: "pcs",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.ledgerUC.RecordEvent(context.Background(), "vehicles", "u1", dto.RecordEventRequest{
		Kind: entity.KindOpening, ItemName: "Scaffold Pipe", Quantity: decimal.NewFromInt(5), Unit: "pcs",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// The ledger stores the catalog spelling regardless of the form's casing.
func TestRecordEvent_CanonicalizesItemName(t *testing.T) {
	f := newLedgerFixture(t)
	resp, err := f.ledgerUC.RecordEvent(context.Background(), entity.CategoryScaffolding, "u1", dto.RecordEventRequest{
		Kind: entity.KindOpening, ItemName: "  scaffold pipe ", Quantity: decimal.NewFromInt(5), Unit: "pcs",
	})
	require.NoError(t, err)
	assert.Equal(t, "Scaffold Pipe", resp.ItemName)
}

func TestRecordEvent_DerivesWeightForTrackedCategory(t *testing.T) {
	f := newLedgerFixture(t)
	resp := f.record(t, entity.KindPurchase, 4)
	assert.True(t, resp.Weight.Equal(decimal.NewFromInt(10))) // 4 × 2.5 kg
}

func TestEditEvent_NotFound(t *testing.T) {
	f := newLedgerFixture(t)
	_, err := f.ledgerUC.EditEvent(context.Background(), "no-such-id", dto.EditEventRequest{
		ItemName: "Scaffold Pipe", Quantity: decimal.NewFromInt(1), Unit: "pcs",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEditEvent_RevalidatesAgainstCatalog(t *testing.T) {
	f := newLedgerFixture(t)
	ev := f.record(t, entity.KindOpening, 10)

	_, err := f.ledgerUC.EditEvent(context.Background(), ev.ID, dto.EditEventRequest{
		ItemName: "Scaffold Pipe", Quantity: decimal.NewFromInt(-3), Unit: "pcs",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = f.ledgerUC.EditEvent(context.Background(), ev.ID, dto.EditEventRequest{
		ItemName: "Scaffold Pipe", Quantity: decimal.NewFromInt(3), Unit: "m",
	})
	assert.ErrorIs(t, err, domain.ErrUnitMismatch)
}

func TestDeleteEvent_NotFound(t *testing.T) {
	f := newLedgerFixture(t)
	err := f.ledgerUC.DeleteEvent(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReconciliation_HoldsAcrossRecordEditDelete(t *testing.T) {
	f := newLedgerFixture(t)
	f.record(t, entity.KindOpening, 100)
	issue := f.record(t, entity.KindIssue, 30)
	f.record(t, entity.KindReturn, 10)

	snap := f.assertReconciled(t)
	assert.True(t, snap.CurrentStock.Equal(decimal.NewFromInt(80)))

	_, err := f.ledgerUC.EditEvent(context.Background(), issue.ID, dto.EditEventRequest{
		ItemName: "Scaffold Pipe", Quantity: decimal.NewFromInt(50), Unit: "pcs",
	})
	require.NoError(t, err)
	snap = f.assertReconciled(t)
	assert.True(t, snap.CurrentStock.Equal(decimal.NewFromInt(60)))
	assert.True(t, snap.InField.Equal(decimal.NewFromInt(40)))

	require.NoError(t, f.ledgerUC.DeleteEvent(context.Background(), issue.ID))
	snap = f.assertReconciled(t)
	assert.True(t, snap.CurrentStock.Equal(decimal.NewFromInt(110)))
	// Only the Return remains on the issue side, so in-field goes negative;
	// the fold reports it as-is and the cross-check still balances.
	assert.True(t, snap.InField.Equal(decimal.NewFromInt(-10)))
}

func TestListEvents_OrderedByTimestampThenID(t *testing.T) {
	f := newLedgerFixture(t)
	f.record(t, entity.KindOpening, 10)
	f.record(t, entity.KindPurchase, 5)
	f.record(t, entity.KindIssue, 3)

	events, err := f.ledgerUC.ListEvents(entity.CategoryScaffolding, dto.ListEventsRequest{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i := 1; i < len(events); i++ {
		prev, cur := events[i-1], events[i]
		ok := prev.Timestamp.Before(cur.Timestamp) ||
			(prev.Timestamp.Equal(cur.Timestamp) && prev.ID < cur.ID)
		assert.True(t, ok, "events out of order at %d", i)
	}
}
