// Package repository provides the gorm-backed unit of work.
package repository

import (
	"context"

	"gorm.io/gorm"

	infraaccount "github.com/mboissel/ledger/infra/repository/account"
	"github.com/mboissel/ledger/pkg/repository"
)

// UoW runs units of work as database transactions. The repository handed to
// the callback is bound to the transaction session, so every read and write
// inside the callback shares one atomic unit; reads lock their rows until
// commit, which serializes concurrent operations on the same account.
type UoW struct {
	db *gorm.DB
}

// NewUoW creates a unit of work over the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do implements repository.UnitOfWork. If fn returns an error the
// transaction is rolled back and none of its writes survive.
func (u *UoW) Do(ctx context.Context, fn func(repo repository.AccountRepository) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(infraaccount.NewTx(tx))
	})
}
