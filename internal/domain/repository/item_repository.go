package repository

import "github.com/mvr-infra/materials-api/internal/domain/entity"

// ItemRepository is the persistence port for catalog items (DIP).
// Name lookups are case-insensitive on the normalized name.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByName(category, name string) (*entity.Item, error)
	ListByCategory(category string) ([]*entity.Item, error)
}
