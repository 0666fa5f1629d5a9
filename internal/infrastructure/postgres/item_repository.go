package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mvr-infra/materials-api/internal/domain"
	"github.com/mvr-infra/materials-api/internal/domain/entity"
	"github.com/mvr-infra/materials-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implements ItemRepository on PostgreSQL (usable with pool or tx).
// Uniqueness per (category, lower(trim(name))) is also enforced by a unique
// index, so a race between two registrations still yields ErrDuplicateItem.
type ItemRepo struct {
	q Querier
}

// NewItemRepository builds the adapter. Pass pool or tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persists a catalog item.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO catalog_items (id, category, name, unit, per_unit_weight, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Category, item.Name, item.Unit, item.PerUnitWeight, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateItem
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetByName fetches an item by category and normalized name.
func (r *ItemRepo) GetByName(category, name string) (*entity.Item, error) {
	query := `
		SELECT id, category, name, unit, per_unit_weight, created_at
		FROM catalog_items
		WHERE category = $1 AND lower(name) = lower(trim($2))`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, category, name).Scan(
		&it.ID, &it.Category, &it.Name, &it.Unit, &it.PerUnitWeight, &it.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// ListByCategory returns a category's catalog ordered by name.
func (r *ItemRepo) ListByCategory(category string) ([]*entity.Item, error) {
	query := `
		SELECT id, category, name, unit, per_unit_weight, created_at
		FROM catalog_items
		WHERE category = $1
		ORDER BY lower(name)`
	rows, err := r.q.Query(context.Background(), query, category)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Category, &it.Name, &it.Unit, &it.PerUnitWeight, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
