package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Material categories tracked by the site stores.
const (
	CategoryPPE         = "ppe"
	CategoryMechanical  = "mechanical"
	CategoryScaffolding = "scaffolding"
	CategoryElectrical  = "electrical"
	CategoryConsumables = "consumables"
)

// ValidCategory reports whether c is a known category.
func ValidCategory(c string) bool {
	switch c {
	case CategoryPPE, CategoryMechanical, CategoryScaffolding, CategoryElectrical, CategoryConsumables:
		return true
	}
	return false
}

// WeightTracked reports whether events in this category carry a derived weight
// (quantity × per-unit weight). Only scaffolding stores track tonnage.
func WeightTracked(category string) bool {
	return category == CategoryScaffolding
}

// Item is a catalog entry for a purchasable/issuable material. Ledger events
// reference items by name within a category, so Name is unique per category
// (case-insensitive, trimmed) and immutable once the item has history.
type Item struct {
	ID            string
	Category      string
	Name          string
	Unit          string          // pcs, kg, m, set, ...
	PerUnitWeight decimal.Decimal // kg per unit; zero unless the category is weight-tracked
	CreatedAt     time.Time
}

// NormalizeName is the canonical form used for duplicate detection and
// name-keyed lookups.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
