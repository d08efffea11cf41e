// Package repository defines the persistence contracts the ledger service
// works against. Implementations live under infra/repository.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mboissel/ledger/pkg/domain/account"
)

// AccountRepository is the durable store for account records, keyed by
// account id with a secondary lookup by customer.
//
// Inside a UnitOfWork the repository is bound to the surrounding transaction
// and Get/GetPairForUpdate take row locks for the duration of the
// read-modify-write; outside one, reads are plain.
type AccountRepository interface {
	// Get returns the account for id, account.ErrAccountNotFound if absent,
	// or account.ErrStorage.
	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)

	// GetByCustomer returns the customer's account, or (nil, nil) when the
	// customer has none. Used only for the open-time uniqueness check.
	GetByCustomer(ctx context.Context, customer string) (*account.Account, error)

	// GetPairForUpdate reads and locks two accounts in one deterministic
	// id-ordered acquisition, returning them in argument order. A missing
	// account comes back nil rather than as an error so the caller controls
	// which leg it reports first.
	GetPairForUpdate(ctx context.Context, first, second uuid.UUID) (*account.Account, *account.Account, error)

	// Save upserts the account by id and returns the persisted row, letting
	// the store normalize representation. A customer-uniqueness violation is
	// account.ErrAccountAlreadyExists; anything else unexpected is
	// account.ErrStorage.
	Save(ctx context.Context, a *account.Account) (*account.Account, error)
}

// UnitOfWork runs fn inside a single atomic storage transaction. The
// repository handed to fn shares that transaction; if fn returns an error
// every write made through it is rolled back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repo AccountRepository) error) error
}
