package account

import "errors"

var (
	// ErrAccountNotFound is returned when no account exists for the given id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountClosed is returned when mutating a closed account.
	ErrAccountClosed = errors.New("account is closed")

	// ErrInsufficientBalance is returned when a withdrawal would leave the
	// balance at or below zero.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrBalanceNotZero is returned when closing an account whose balance is
	// not exactly zero.
	ErrBalanceNotZero = errors.New("balance must be zero to close the account")

	// ErrAccountAlreadyExists is returned when opening a second account for
	// the same customer.
	ErrAccountAlreadyExists = errors.New("customer already has an account")

	// ErrNegativeDeposit is returned for a deposit of a zero or negative amount.
	ErrNegativeDeposit = errors.New("deposit amount must be positive")

	// ErrNegativeWithdraw is returned for a withdrawal of a zero or negative amount.
	ErrNegativeWithdraw = errors.New("withdrawal amount must be positive")

	// ErrNegativeTransfer is returned for a transfer of a zero or negative amount.
	ErrNegativeTransfer = errors.New("transfer amount must be positive")

	// ErrNegativeOpeningBalance is returned when opening an account with a
	// negative initial balance.
	ErrNegativeOpeningBalance = errors.New("opening balance must not be negative")

	// ErrStorage is the single opaque kind every unexpected storage failure
	// degrades to. Connectivity, constraint and timeout failures are not
	// distinguished.
	ErrStorage = errors.New("storage error")
)
