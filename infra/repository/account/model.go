package account

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mboissel/ledger/pkg/domain/account"
)

// Account is the database row for an account. The unique index on Customer
// is the durable side of the one-account-per-customer rule: the losing
// writer of a concurrent open fails on it deterministically.
type Account struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Customer string          `gorm:"type:varchar(100);uniqueIndex"`
	Balance  decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	Closed   bool            `gorm:"not null"`
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

func toModel(a *account.Account) Account {
	return Account{
		ID:       a.ID,
		Customer: a.Customer,
		Balance:  a.Balance,
		Closed:   a.Closed,
	}
}

func toDomain(m *Account) *account.Account {
	return &account.Account{
		ID:       m.ID,
		Customer: m.Customer,
		Balance:  m.Balance,
		Closed:   m.Closed,
	}
}
