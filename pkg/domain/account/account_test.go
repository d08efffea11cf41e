package account_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mboissel/ledger/pkg/domain/account"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNew(t *testing.T) {
	t.Parallel()
	a := account.New("bcavy", dec("100"))
	assert.NotEqual(t, a.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, "bcavy", a.Customer)
	assert.True(t, a.Balance.Equal(dec("100")))
	assert.False(t, a.Closed)
}

func TestDeposit(t *testing.T) {
	t.Parallel()

	t.Run("credits the balance", func(t *testing.T) {
		a := account.New("bcavy", dec("100"))
		updated, err := a.Deposit(dec("50.25"))
		require.NoError(t, err)
		assert.True(t, updated.Balance.Equal(dec("150.25")))
		// the receiver is untouched
		assert.True(t, a.Balance.Equal(dec("100")))
	})

	t.Run("closed account", func(t *testing.T) {
		a := account.Account{Customer: "bcavy", Balance: decimal.Zero, Closed: true}
		_, err := a.Deposit(dec("10"))
		assert.ErrorIs(t, err, account.ErrAccountClosed)
	})
}

func TestWithdraw(t *testing.T) {
	t.Parallel()

	t.Run("debits the balance", func(t *testing.T) {
		a := account.New("bcavy", dec("100"))
		updated, err := a.Withdraw(dec("30"))
		require.NoError(t, err)
		assert.True(t, updated.Balance.Equal(dec("70")))
	})

	t.Run("insufficient balance", func(t *testing.T) {
		a := account.New("bcavy", dec("10"))
		_, err := a.Withdraw(dec("20"))
		assert.ErrorIs(t, err, account.ErrInsufficientBalance)
	})

	t.Run("draining to exactly zero is insufficient", func(t *testing.T) {
		a := account.New("bcavy", dec("10"))
		_, err := a.Withdraw(dec("10"))
		assert.ErrorIs(t, err, account.ErrInsufficientBalance)
	})

	t.Run("leaving one cent succeeds", func(t *testing.T) {
		a := account.New("bcavy", dec("10"))
		updated, err := a.Withdraw(dec("9.99"))
		require.NoError(t, err)
		assert.True(t, updated.Balance.Equal(dec("0.01")))
	})

	t.Run("closed account", func(t *testing.T) {
		a := account.Account{Customer: "bcavy", Balance: dec("100"), Closed: true}
		_, err := a.Withdraw(dec("10"))
		assert.ErrorIs(t, err, account.ErrAccountClosed)
	})
}

func TestClose(t *testing.T) {
	t.Parallel()

	t.Run("zero balance closes", func(t *testing.T) {
		a := account.New("bcavy", decimal.Zero)
		closed, err := a.Close()
		require.NoError(t, err)
		assert.True(t, closed.Closed)
		assert.True(t, closed.Balance.IsZero())
	})

	t.Run("non-zero balance is rejected", func(t *testing.T) {
		a := account.New("bcavy", dec("0.01"))
		_, err := a.Close()
		assert.ErrorIs(t, err, account.ErrBalanceNotZero)
	})
}

func TestTransfer(t *testing.T) {
	t.Parallel()

	t.Run("moves amount between accounts", func(t *testing.T) {
		source := account.New("bcavy", dec("100"))
		target := account.New("sdaviet", decimal.Zero)
		result, err := account.Transfer(source, target, dec("80"))
		require.NoError(t, err)
		assert.True(t, result.Source.Balance.Equal(dec("20")))
		assert.True(t, result.Target.Balance.Equal(dec("80")))
	})

	t.Run("source leg uses the strict withdrawal bound", func(t *testing.T) {
		source := account.New("bcavy", dec("100"))
		target := account.New("sdaviet", decimal.Zero)
		_, err := account.Transfer(source, target, dec("100"))
		assert.ErrorIs(t, err, account.ErrInsufficientBalance)
	})

	t.Run("closed target aborts the transfer", func(t *testing.T) {
		source := account.New("bcavy", dec("100"))
		target := account.Account{Customer: "sdaviet", Balance: decimal.Zero, Closed: true}
		_, err := account.Transfer(source, target, dec("10"))
		assert.ErrorIs(t, err, account.ErrAccountClosed)
	})

	t.Run("closed source aborts the transfer", func(t *testing.T) {
		source := account.Account{Customer: "bcavy", Balance: dec("100"), Closed: true}
		target := account.New("sdaviet", decimal.Zero)
		_, err := account.Transfer(source, target, dec("10"))
		assert.ErrorIs(t, err, account.ErrAccountClosed)
	})
}
