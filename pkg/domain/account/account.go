// Package account holds the ledger's account entity and its balance
// mutation rules.
//
// Invariants:
//   - Balance is never negative for a persisted account.
//   - A closed account is terminal: no deposit, withdrawal or transfer may
//     succeed against it.
//   - A customer owns at most one account, enforced at open time.
//
// All mutation rules are pure functions over account values; persistence and
// customer lookups live one level up, in the service and infra layers.
package account

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a customer's ledger account. Methods never mutate the
// receiver; they return the updated value, leaving the caller to persist it.
type Account struct {
	ID       uuid.UUID
	Customer string
	Balance  decimal.Decimal
	Closed   bool
}

// New creates an open account for the given customer with the given starting
// balance and a freshly generated id. The caller validates the balance sign.
func New(customer string, balance decimal.Decimal) Account {
	return Account{
		ID:       uuid.New(),
		Customer: customer,
		Balance:  balance,
	}
}

// Deposit returns a copy of the account credited with amount.
// The caller guarantees amount > 0.
func (a Account) Deposit(amount decimal.Decimal) (Account, error) {
	if a.Closed {
		return Account{}, ErrAccountClosed
	}
	a.Balance = a.Balance.Add(amount)
	return a, nil
}

// Withdraw returns a copy of the account debited by amount. The debit only
// succeeds while it leaves a strictly positive balance: drawing an account
// down to exactly zero through Withdraw is ErrInsufficientBalance.
// The caller guarantees amount > 0.
func (a Account) Withdraw(amount decimal.Decimal) (Account, error) {
	if a.Closed {
		return Account{}, ErrAccountClosed
	}
	newBalance := a.Balance.Sub(amount)
	if newBalance.Sign() <= 0 {
		return Account{}, ErrInsufficientBalance
	}
	a.Balance = newBalance
	return a, nil
}

// Close marks the account closed. Only an account with an exactly zero
// balance may be closed.
func (a Account) Close() (Account, error) {
	if !a.Balance.IsZero() {
		return Account{}, ErrBalanceNotZero
	}
	a.Closed = true
	return a, nil
}

// TransferResult pairs the updated legs of a transfer. It is transient:
// only the two accounts inside it are ever persisted.
type TransferResult struct {
	Source Account
	Target Account
}

// Transfer applies both legs of a transfer as pure account rules: a
// withdrawal from source followed by a deposit into target. Either leg
// failing aborts the whole transfer.
func Transfer(source, target Account, amount decimal.Decimal) (TransferResult, error) {
	newSource, err := source.Withdraw(amount)
	if err != nil {
		return TransferResult{}, err
	}
	newTarget, err := target.Deposit(amount)
	if err != nil {
		return TransferResult{}, err
	}
	return TransferResult{Source: newSource, Target: newTarget}, nil
}
