// Package account implements the account repository on gorm/Postgres.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/mboissel/ledger/pkg/domain/account"
	"github.com/mboissel/ledger/pkg/repository"
)

type accountRepository struct {
	db *gorm.DB
	// forUpdate is set on repositories handed out inside a unit of work;
	// single-row reads then lock the row for the transaction's duration.
	forUpdate bool
}

// New creates an account repository using the provided *gorm.DB session.
func New(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// NewTx creates a repository bound to a transaction; its reads take row locks.
func NewTx(tx *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: tx, forUpdate: true}
}

// Get implements repository.AccountRepository.
func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	q := r.db.WithContext(ctx)
	if r.forUpdate {
		q = q.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}
	var m Account
	if err := q.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, storageErr(err)
	}
	return toDomain(&m), nil
}

// GetByCustomer implements repository.AccountRepository. A customer without
// an account is (nil, nil), not an error.
func (r *accountRepository) GetByCustomer(ctx context.Context, customer string) (*domain.Account, error) {
	var m Account
	err := r.db.WithContext(ctx).First(&m, "customer = ?", customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return toDomain(&m), nil
}

// GetPairForUpdate implements repository.AccountRepository. Both rows are
// locked in a single id-ordered acquisition so that opposed concurrent
// transfers cannot deadlock on each other's locks.
func (r *accountRepository) GetPairForUpdate(ctx context.Context, first, second uuid.UUID) (*domain.Account, *domain.Account, error) {
	var rows []Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id IN ?", []uuid.UUID{first, second}).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, nil, storageErr(err)
	}

	var a, b *domain.Account
	for i := range rows {
		switch rows[i].ID {
		case first:
			a = toDomain(&rows[i])
		case second:
			b = toDomain(&rows[i])
		}
	}
	return a, b, nil
}

// Save implements repository.AccountRepository as an upsert by id, returning
// the persisted row so the store can normalize the decimal representation.
func (r *accountRepository) Save(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	m := toModel(a)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"customer", "balance", "closed"}),
		}).
		Create(&m).Error
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAccountAlreadyExists
		}
		return nil, storageErr(err)
	}

	var saved Account
	if err := r.db.WithContext(ctx).First(&saved, "id = ?", m.ID).Error; err != nil {
		return nil, storageErr(err)
	}
	return toDomain(&saved), nil
}

// isUniqueViolation reports whether err is the customer uniqueness
// constraint firing, i.e. the losing side of a concurrent open.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStorage, err)
}
