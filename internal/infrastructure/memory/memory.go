// Package memory provides map-backed repository implementations backing the
// unit tests. A single store-wide mutex gives the same guarantee the SQL
// transaction does: event mutation is atomic at single-event granularity.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/mvr-infra/materials-api/internal/application/ledger"
	"github.com/mvr-infra/materials-api/internal/domain"
	"github.com/mvr-infra/materials-api/internal/domain/entity"
	"github.com/mvr-infra/materials-api/internal/domain/repository"
)

// Store owns all in-memory collections behind one lock.
type Store struct {
	mu     sync.RWMutex
	items  map[string]*entity.Item        // key: category + "/" + normalized name
	events map[string]*entity.LedgerEvent // key: event id
	users  map[string]*entity.User        // key: lowercased email
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{
		items:  map[string]*entity.Item{},
		events: map[string]*entity.LedgerEvent{},
		users:  map[string]*entity.User{},
	}
}

func itemKey(category, name string) string {
	return category + "/" + entity.NormalizeName(name)
}

// ── ItemRepository ──

type ItemRepo struct{ s *Store }

var _ repository.ItemRepository = (*ItemRepo)(nil)

// NewItemRepository builds the item adapter on the store.
func NewItemRepository(s *Store) *ItemRepo { return &ItemRepo{s: s} }

func (r *ItemRepo) Create(item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := itemKey(item.Category, item.Name)
	if _, ok := r.s.items[key]; ok {
		return domain.ErrDuplicateItem
	}
	cp := *item
	r.s.items[key] = &cp
	return nil
}

func (r *ItemRepo) GetByName(category, name string) (*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.items[itemKey(category, name)]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *ItemRepo) ListByCategory(category string) ([]*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var items []*entity.Item
	for _, it := range r.s.items {
		if it.Category == category {
			cp := *it
			items = append(items, &cp)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return entity.NormalizeName(items[i].Name) < entity.NormalizeName(items[j].Name)
	})
	return items, nil
}

// ── LedgerRepository ──

type LedgerRepo struct{ s *Store }

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// NewLedgerRepository builds the ledger adapter on the store.
func NewLedgerRepository(s *Store) *LedgerRepo { return &LedgerRepo{s: s} }

func (r *LedgerRepo) Create(ev *entity.LedgerEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *ev
	r.s.events[ev.ID] = &cp
	return nil
}

func (r *LedgerRepo) GetByID(id string) (*entity.LedgerEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ev, ok := r.s.events[id]
	if !ok {
		return nil, nil
	}
	cp := *ev
	return &cp, nil
}

func (r *LedgerRepo) Update(ev *entity.LedgerEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[ev.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *ev
	r.s.events[ev.ID] = &cp
	return nil
}

func (r *LedgerRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.events, id)
	return nil
}

func (r *LedgerRepo) ListByCategory(category string, filter repository.EventFilter) ([]*entity.LedgerEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var events []*entity.LedgerEvent
	wantItem := entity.NormalizeName(filter.ItemName)
	for _, ev := range r.s.events {
		if ev.Category != category {
			continue
		}
		if wantItem != "" && entity.NormalizeName(ev.ItemName) != wantItem {
			continue
		}
		if filter.DateFrom != nil && ev.Timestamp.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && ev.Timestamp.After(*filter.DateTo) {
			continue
		}
		if filter.CounterpartyRef != "" && ev.CounterpartyRef != filter.CounterpartyRef {
			continue
		}
		cp := *ev
		events = append(events, &cp)
	}
	sortEvents(events)
	return events, nil
}

func (r *LedgerRepo) ListByItem(category, itemName string) ([]*entity.LedgerEvent, error) {
	return r.ListByCategory(category, repository.EventFilter{ItemName: itemName})
}

func sortEvents(events []*entity.LedgerEvent) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Timestamp.Equal(events[j].Timestamp) {
			return events[i].Timestamp.Before(events[j].Timestamp)
		}
		return events[i].ID < events[j].ID
	})
}

// ── UserRepository ──

type UserRepo struct{ s *Store }

var _ repository.UserRepository = (*UserRepo)(nil)

// NewUserRepository builds the user adapter on the store.
func NewUserRepository(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, ok := r.s.users[key]; ok {
		return domain.ErrEmailExists
	}
	cp := *user
	r.s.users[key] = &cp
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// ── TxRunner ──

// TxRunner serializes write callbacks with a store-level mutex. The callback
// gets repositories on the same store; there is no rollback, matching the
// single-writer discipline the tests exercise.
type TxRunner struct {
	s  *Store
	mu sync.Mutex
}

var _ ledger.TxRunner = (*TxRunner)(nil)

// NewTxRunner builds the runner on the store.
func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

func (r *TxRunner) Run(_ context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	itemRepo repository.ItemRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(NewLedgerRepository(r.s), NewItemRepository(r.s))
}
