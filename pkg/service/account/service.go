// Package account provides the ledger service: it combines the pure account
// rules with repository reads/writes and a customer directory lookup.
//
// Every mutating operation validates the amount sign before touching storage,
// then runs its whole read-modify-write inside one unit of work so that
// concurrent operations on the same account serialize on its current state.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mboissel/ledger/pkg/domain/account"
	"github.com/mboissel/ledger/pkg/domain/customer"
	"github.com/mboissel/ledger/pkg/repository"
)

// Service applies the ledger's business rules to account balances. It holds
// no state of its own between calls; the store owns all durable state.
type Service struct {
	uow       repository.UnitOfWork
	repo      repository.AccountRepository
	directory customer.Directory
	logger    *slog.Logger
}

// New creates a ledger service. repo is used for plain reads outside any
// transaction; all mutations go through uow.
func New(
	uow repository.UnitOfWork,
	repo repository.AccountRepository,
	directory customer.Directory,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:       uow,
		repo:      repo,
		directory: directory,
		logger:    logger,
	}
}

// Open creates an account for the customer with the given initial balance.
// The customer must exist in the directory and not be banned, and must not
// already own an account. A banned customer is rejected before the
// existing-account check.
func (s *Service) Open(ctx context.Context, customerID string, initialBalance decimal.Decimal) (*account.Account, error) {
	if initialBalance.Sign() < 0 {
		return nil, account.ErrNegativeOpeningBalance
	}

	logger := s.logger.With("operation", "open", "customer", customerID)

	c, err := s.directory.Fetch(ctx, customerID)
	if err != nil {
		logger.Error("customer lookup failed", "error", err)
		return nil, err
	}
	if c.Banned {
		logger.Warn("rejected banned customer")
		return nil, customer.ErrBanned
	}

	var opened *account.Account
	err = s.uow.Do(ctx, func(repo repository.AccountRepository) error {
		existing, err := repo.GetByCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		if existing != nil {
			return account.ErrAccountAlreadyExists
		}
		// The unique index on customer makes the loser of a concurrent open
		// fail deterministically even though both passed the check above.
		a := account.New(customerID, initialBalance)
		opened, err = repo.Save(ctx, &a)
		return err
	})
	if err != nil {
		return nil, err
	}
	logger.Info("account opened", "account", opened.ID)
	return opened, nil
}

// Deposit credits amount to the account and persists the result.
func (s *Service) Deposit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*account.Account, error) {
	if amount.Sign() <= 0 {
		return nil, account.ErrNegativeDeposit
	}
	return s.mutate(ctx, id, func(a account.Account) (account.Account, error) {
		return a.Deposit(amount)
	})
}

// Withdraw debits amount from the account and persists the result.
func (s *Service) Withdraw(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*account.Account, error) {
	if amount.Sign() <= 0 {
		return nil, account.ErrNegativeWithdraw
	}
	return s.mutate(ctx, id, func(a account.Account) (account.Account, error) {
		return a.Withdraw(amount)
	})
}

// Close marks the account closed. The balance must be exactly zero.
func (s *Service) Close(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return s.mutate(ctx, id, account.Account.Close)
}

// mutate runs a single-account read-modify-write atomically: the account row
// stays locked from the read until the transaction commits.
func (s *Service) mutate(ctx context.Context, id uuid.UUID, apply func(account.Account) (account.Account, error)) (*account.Account, error) {
	var updated *account.Account
	err := s.uow.Do(ctx, func(repo repository.AccountRepository) error {
		current, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		next, err := apply(*current)
		if err != nil {
			return err
		}
		updated, err = repo.Save(ctx, &next)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Transfer moves amount from one account to another as one atomic unit: both
// rows are locked up front and both writes commit together or not at all, so
// money is never left debited but uncredited.
func (s *Service) Transfer(ctx context.Context, from, to uuid.UUID, amount decimal.Decimal) (*account.TransferResult, error) {
	if amount.Sign() <= 0 {
		return nil, account.ErrNegativeTransfer
	}

	// A self-transfer still exercises both legs against the single row, so
	// the strict withdrawal bound applies and the balance nets out unchanged.
	if from == to {
		a, err := s.mutate(ctx, from, func(a account.Account) (account.Account, error) {
			moved, err := account.Transfer(a, a, amount)
			if err != nil {
				return account.Account{}, err
			}
			a.Balance = moved.Source.Balance.Add(amount)
			return a, nil
		})
		if err != nil {
			return nil, err
		}
		return &account.TransferResult{Source: *a, Target: *a}, nil
	}

	var result *account.TransferResult
	err := s.uow.Do(ctx, func(repo repository.AccountRepository) error {
		source, target, err := repo.GetPairForUpdate(ctx, from, to)
		if err != nil {
			return err
		}
		// Source existence is reported before target's.
		if source == nil || target == nil {
			return account.ErrAccountNotFound
		}

		moved, err := account.Transfer(*source, *target, amount)
		if err != nil {
			return err
		}
		savedSource, err := repo.Save(ctx, &moved.Source)
		if err != nil {
			return err
		}
		savedTarget, err := repo.Save(ctx, &moved.Target)
		if err != nil {
			return err
		}
		result = &account.TransferResult{Source: *savedSource, Target: *savedTarget}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("transfer completed", "from", from, "to", to)
	return result, nil
}

// Get returns the current state of the account. Plain read, no lock.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return s.repo.Get(ctx, id)
}
