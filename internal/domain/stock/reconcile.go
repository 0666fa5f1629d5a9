// Package stock holds the reconciliation model: the pure fold that turns an
// item's ledger history into a StockSnapshot, and the status classification
// derived from it.
//
//	totalPurchased = Σ quantity where kind ∈ {OPENING, PURCHASE}
//	totalIssued    = Σ quantity where kind = ISSUE
//	totalReturned  = Σ quantity where kind = RETURN
//	netIssued      = totalIssued − totalReturned
//	currentStock   = totalPurchased − netIssued
//	inField        = netIssued
//
// The cross-check currentStock + inField == totalPurchased must hold after
// every fold; a violation means the event stream was mutated outside the
// store and the read is aborted.
package stock

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mvr-infra/materials-api/internal/domain"
	"github.com/mvr-infra/materials-api/internal/domain/entity"
)

// lowStockRatio: currentStock below 20% of (currentStock + inField) is low.
var lowStockRatio = decimal.NewFromFloat(0.2)

// Fold computes the snapshot for one item from its full event history.
// It is a pure function: no counters are kept between calls, so the
// cross-check invariant holds by construction unless the stream itself is
// corrupt (negative stored quantity, foreign item, unknown kind).
func Fold(item *entity.Item, events []*entity.LedgerEvent) (*entity.StockSnapshot, error) {
	purchased := decimal.Zero
	issued := decimal.Zero
	returned := decimal.Zero

	wantName := entity.NormalizeName(item.Name)
	for _, ev := range events {
		if entity.NormalizeName(ev.ItemName) != wantName {
			return nil, fmt.Errorf("%w: event %s is for item %q, not %q",
				domain.ErrReconciliation, ev.ID, ev.ItemName, item.Name)
		}
		if ev.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: event %s has non-positive quantity %s",
				domain.ErrReconciliation, ev.ID, ev.Quantity)
		}
		switch ev.Kind {
		case entity.KindOpening, entity.KindPurchase:
			purchased = purchased.Add(ev.Quantity)
		case entity.KindIssue:
			issued = issued.Add(ev.Quantity)
		case entity.KindReturn:
			returned = returned.Add(ev.Quantity)
		default:
			return nil, fmt.Errorf("%w: event %s has unknown kind %q",
				domain.ErrReconciliation, ev.ID, ev.Kind)
		}
	}

	netIssued := issued.Sub(returned)
	current := purchased.Sub(netIssued)

	if !current.Add(netIssued).Equal(purchased) {
		return nil, fmt.Errorf("%w: %s: stock %s + in-field %s != purchased %s",
			domain.ErrReconciliation, item.Name, current, netIssued, purchased)
	}

	snap := &entity.StockSnapshot{
		ItemName:       item.Name,
		Unit:           item.Unit,
		TotalPurchased: purchased,
		TotalIssued:    issued,
		TotalReturned:  returned,
		NetIssued:      netIssued,
		CurrentStock:   current,
		InField:        netIssued,
		TotalWeight:    decimal.Zero,
		Status:         Classify(current, netIssued),
	}
	if entity.WeightTracked(item.Category) {
		snap.TotalWeight = current.Mul(item.PerUnitWeight)
	}
	return snap, nil
}

// EventWeight is the derived weight of a single event on a weight-tracked
// item: quantity × per-unit weight. Zero for non-tracked categories.
func EventWeight(item *entity.Item, ev *entity.LedgerEvent) decimal.Decimal {
	if !entity.WeightTracked(item.Category) {
		return decimal.Zero
	}
	return ev.Quantity.Mul(item.PerUnitWeight)
}

// Classify maps stock figures to a status label. An item with no history at
// all (total zero) is Healthy, not Critical: a freshly registered material is
// not an alert condition and the ratio is undefined there.
func Classify(currentStock, inField decimal.Decimal) string {
	total := currentStock.Add(inField)
	if total.IsZero() {
		return entity.StatusHealthy
	}
	if currentStock.IsZero() {
		return entity.StatusCritical
	}
	if currentStock.LessThan(total.Mul(lowStockRatio)) {
		return entity.StatusLowStock
	}
	return entity.StatusHealthy
}
