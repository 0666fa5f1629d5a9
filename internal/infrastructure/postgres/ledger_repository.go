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

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

const eventColumns = `id, category, kind, item_name, quantity, unit, event_at, counterparty_ref, source_doc_ref, created_at, created_by`

// LedgerRepo implements LedgerRepository on PostgreSQL (usable with pool or tx).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository builds the adapter. Pass pool or tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create appends an event.
func (r *LedgerRepo) Create(ev *entity.LedgerEvent) error {
	query := `
		INSERT INTO ledger_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	createdBy := (*string)(nil)
	if ev.CreatedBy != "" {
		createdBy = &ev.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		ev.ID, ev.Category, ev.Kind, ev.ItemName, ev.Quantity, ev.Unit,
		ev.Timestamp, nullable(ev.CounterpartyRef), nullable(ev.SourceDocRef),
		ev.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create ledger event: %w", err)
	}
	return nil
}

// GetByID fetches one event, nil if unknown.
func (r *LedgerRepo) GetByID(id string) (*entity.LedgerEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM ledger_events WHERE id = $1`
	ev, err := scanEvent(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger event: %w", err)
	}
	return ev, nil
}

// Update replaces the mutable fields of an event in a single statement, so a
// concurrent reader sees the old row or the new one, never a mix.
func (r *LedgerRepo) Update(ev *entity.LedgerEvent) error {
	query := `
		UPDATE ledger_events
		SET item_name = $2, quantity = $3, unit = $4, event_at = $5,
		    counterparty_ref = $6, source_doc_ref = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		ev.ID, ev.ItemName, ev.Quantity, ev.Unit, ev.Timestamp,
		nullable(ev.CounterpartyRef), nullable(ev.SourceDocRef),
	)
	if err != nil {
		return fmt.Errorf("update ledger event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an event permanently.
func (r *LedgerRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM ledger_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ledger event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCategory returns filtered events ordered by (event_at, id).
func (r *LedgerRepo) ListByCategory(category string, filter repository.EventFilter) ([]*entity.LedgerEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM ledger_events WHERE category = $1`
	args := []any{category}
	pos := 2
	if filter.ItemName != "" {
		query += fmt.Sprintf(" AND lower(item_name) = lower(trim($%d))", pos)
		args = append(args, filter.ItemName)
		pos++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND event_at >= $%d", pos)
		args = append(args, *filter.DateFrom)
		pos++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND event_at <= $%d", pos)
		args = append(args, *filter.DateTo)
		pos++
	}
	if filter.CounterpartyRef != "" {
		query += fmt.Sprintf(" AND counterparty_ref = $%d", pos)
		args = append(args, filter.CounterpartyRef)
		pos++
	}
	query += " ORDER BY event_at, id"
	return r.queryEvents(query, args...)
}

// ListByItem returns one item's full history ordered by (event_at, id).
func (r *LedgerRepo) ListByItem(category, itemName string) ([]*entity.LedgerEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM ledger_events
		WHERE category = $1 AND lower(item_name) = lower(trim($2))
		ORDER BY event_at, id`
	return r.queryEvents(query, category, itemName)
}

func (r *LedgerRepo) queryEvents(query string, args ...any) ([]*entity.LedgerEvent, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger events: %w", err)
	}
	defer rows.Close()

	var events []*entity.LedgerEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func scanEvent(row pgx.Row) (*entity.LedgerEvent, error) {
	var ev entity.LedgerEvent
	var counterparty, sourceDoc, createdBy *string
	err := row.Scan(
		&ev.ID, &ev.Category, &ev.Kind, &ev.ItemName, &ev.Quantity, &ev.Unit,
		&ev.Timestamp, &counterparty, &sourceDoc, &ev.CreatedAt, &createdBy,
	)
	if err != nil {
		return nil, err
	}
	if counterparty != nil {
		ev.CounterpartyRef = *counterparty
	}
	if sourceDoc != nil {
		ev.SourceDocRef = *sourceDoc
	}
	if createdBy != nil {
		ev.CreatedBy = *createdBy
	}
	return &ev, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
