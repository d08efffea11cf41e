// Package memory implements the account repository and unit of work on a
// mutex-guarded map. It mirrors the Postgres store's contract, including the
// customer uniqueness rule, and is used by tests and local runs that do not
// want a database.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mboissel/ledger/pkg/domain/account"
	"github.com/mboissel/ledger/pkg/repository"
)

// Store holds account records in memory. A single lock spans every unit of
// work, which gives the same serialization the Postgres row locks provide.
type Store struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]account.Account

	// failure, when set, makes every storage touch fail with it. Lets tests
	// exercise the opaque storage error path.
	failure error
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{accounts: make(map[uuid.UUID]account.Account)}
}

// FailWith makes all subsequent operations fail with err; nil restores
// normal operation.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// Repository returns a repository view over the store for plain reads.
func (s *Store) Repository() repository.AccountRepository {
	return &repo{store: s, locked: false}
}

// Do implements repository.UnitOfWork. The store lock is held for the whole
// callback; on error the store is restored to its pre-callback state, so a
// failed unit of work leaves no partial writes.
func (s *Store) Do(_ context.Context, fn func(repo repository.AccountRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[uuid.UUID]account.Account, len(s.accounts))
	for id, a := range s.accounts {
		snapshot[id] = a
	}

	if err := fn(&repo{store: s, locked: true}); err != nil {
		s.accounts = snapshot
		return err
	}
	return nil
}

type repo struct {
	store *Store
	// locked marks repositories handed out by Do, which run under the
	// store lock already held.
	locked bool
}

func (r *repo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *repo) Get(_ context.Context, id uuid.UUID) (*account.Account, error) {
	defer r.lock()()
	if r.store.failure != nil {
		return nil, r.store.failure
	}
	a, ok := r.store.accounts[id]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	return &a, nil
}

func (r *repo) GetByCustomer(_ context.Context, customer string) (*account.Account, error) {
	defer r.lock()()
	if r.store.failure != nil {
		return nil, r.store.failure
	}
	for _, a := range r.store.accounts {
		if a.Customer == customer {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (r *repo) GetPairForUpdate(_ context.Context, first, second uuid.UUID) (*account.Account, *account.Account, error) {
	defer r.lock()()
	if r.store.failure != nil {
		return nil, nil, r.store.failure
	}
	var a, b *account.Account
	if v, ok := r.store.accounts[first]; ok {
		a = &v
	}
	if v, ok := r.store.accounts[second]; ok {
		b = &v
	}
	return a, b, nil
}

func (r *repo) Save(_ context.Context, a *account.Account) (*account.Account, error) {
	defer r.lock()()
	if r.store.failure != nil {
		return nil, r.store.failure
	}
	for id, existing := range r.store.accounts {
		if existing.Customer == a.Customer && id != a.ID {
			return nil, account.ErrAccountAlreadyExists
		}
	}
	saved := *a
	r.store.accounts[a.ID] = saved
	return &saved, nil
}
