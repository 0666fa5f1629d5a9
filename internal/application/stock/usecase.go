// Package stock is the read side of the ledger: it folds event histories into
// per-item snapshots for the overview pages and the export pipeline.
package stock

import (
	"sort"
	"strings"

	"github.com/mvr-infra/materials-api/internal/domain"
	"github.com/mvr-infra/materials-api/internal/domain/entity"
	"github.com/mvr-infra/materials-api/internal/domain/repository"
	domstock "github.com/mvr-infra/materials-api/internal/domain/stock"
)

// StockUseCase computes reconciled snapshots on demand. There is no cached
// counter anywhere: every answer is a fresh fold over the event history.
type StockUseCase struct {
	itemRepo   repository.ItemRepository
	ledgerRepo repository.LedgerRepository
}

// NewStockUseCase builds the use case.
func NewStockUseCase(itemRepo repository.ItemRepository, ledgerRepo repository.LedgerRepository) *StockUseCase {
	return &StockUseCase{itemRepo: itemRepo, ledgerRepo: ledgerRepo}
}

// ComputeSnapshot folds the full history of one item.
func (uc *StockUseCase) ComputeSnapshot(category, itemName string) (*entity.StockSnapshot, error) {
	item, err := uc.itemRepo.GetByName(category, itemName)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	events, err := uc.ledgerRepo.ListByItem(category, item.Name)
	if err != nil {
		return nil, err
	}
	return domstock.Fold(item, events)
}

// ComputeAllSnapshots folds every catalog item in the category whose name
// contains search (case-insensitive). The filter is applied to the item set
// before folding; filtering afterwards would give identical rows, this order
// just skips histories nobody asked for. An item with no events still gets a
// zero row: a freshly registered material is a reportable line.
func (uc *StockUseCase) ComputeAllSnapshots(category, search string) ([]*entity.StockSnapshot, error) {
	if !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.itemRepo.ListByCategory(category)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	snaps := make([]*entity.StockSnapshot, 0, len(items))
	for _, item := range items {
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		events, err := uc.ledgerRepo.ListByItem(category, item.Name)
		if err != nil {
			return nil, err
		}
		snap, err := domstock.Fold(item, events)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}

	sort.Slice(snaps, func(i, j int) bool {
		return entity.NormalizeName(snaps[i].ItemName) < entity.NormalizeName(snaps[j].ItemName)
	})
	return snaps, nil
}
