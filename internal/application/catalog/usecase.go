package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mvr-infra/materials-api/internal/application/dto"
	"github.com/mvr-infra/materials-api/internal/domain"
	"github.com/mvr-infra/materials-api/internal/domain/entity"
	"github.com/mvr-infra/materials-api/internal/domain/repository"
)

// CatalogUseCase manages the master list of materials per category.
// Items never change once ledger events reference them; a rename would
// silently orphan the item's history, so there is no update operation.
type CatalogUseCase struct {
	repo repository.ItemRepository
}

// NewCatalogUseCase builds the use case.
func NewCatalogUseCase(repo repository.ItemRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// RegisterItem adds a material to a category's catalog. Duplicate detection is
// case-insensitive on the trimmed name.
func (uc *CatalogUseCase) RegisterItem(category string, in dto.RegisterItemRequest) (*dto.ItemResponse, error) {
	if !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Unit) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(category, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateItem
	}

	puw := decimal.Zero
	if entity.WeightTracked(category) && in.PerUnitWeight != nil {
		if in.PerUnitWeight.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		puw = *in.PerUnitWeight
	}

	item := &entity.Item{
		ID:            uuid.New().String(),
		Category:      category,
		Name:          name,
		Unit:          strings.TrimSpace(in.Unit),
		PerUnitWeight: puw,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// LookupItem fetches one catalog entry by name (case-insensitive).
func (uc *CatalogUseCase) LookupItem(category, name string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByName(category, name)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// ListItems returns a category's full catalog.
func (uc *CatalogUseCase) ListItems(category string) (*dto.ItemListResponse, error) {
	if !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.repo.ListByCategory(category)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: out, Total: len(out)}, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:            it.ID,
		Category:      it.Category,
		Name:          it.Name,
		Unit:          it.Unit,
		PerUnitWeight: it.PerUnitWeight,
		CreatedAt:     it.CreatedAt,
	}
}
