package ledger

import (
	"context"

	"github.com/mvr-infra/materials-api/internal/domain/repository"
)

// TxRunner runs a function inside a storage transaction, handing it
// repositories bound to that transaction. It is the atomicity boundary of the
// store: an edit or delete either lands whole or not at all, and a concurrent
// fold observes the event pre- or post-mutation, never partially applied.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		itemRepo repository.ItemRepository,
	) error) error
}
