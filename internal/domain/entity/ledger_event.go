package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger event kinds. Opening stock aggregates exactly like a purchase.
const (
	KindOpening  = "OPENING"
	KindPurchase = "PURCHASE"
	KindIssue    = "ISSUE"
	KindReturn   = "RETURN"
)

// ValidKind reports whether k is a known event kind.
func ValidKind(k string) bool {
	switch k {
	case KindOpening, KindPurchase, KindIssue, KindReturn:
		return true
	}
	return false
}

// LedgerEvent is one append-only entry in the materials ledger. Quantity is
// always stored positive; its effect on stock is derived from Kind. Category
// and Kind are part of the event's identity and never change after creation.
type LedgerEvent struct {
	ID              string
	Category        string
	Kind            string
	ItemName        string
	Quantity        decimal.Decimal
	Unit            string
	Timestamp       time.Time
	CounterpartyRef string // vendor or employee the event is against
	SourceDocRef    string // invoice / order / gate-pass number
	CreatedAt       time.Time
	CreatedBy       string // user id of the operator
}
