// Package initializer wires the ledger's dependencies together from
// configuration: database connection, schema, repositories, customer
// directory client and logger.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/mboissel/ledger/infra"
	infracustomer "github.com/mboissel/ledger/infra/customer"
	infrarepo "github.com/mboissel/ledger/infra/repository"
	infraaccount "github.com/mboissel/ledger/infra/repository/account"
	"github.com/mboissel/ledger/pkg/config"
	"github.com/mboissel/ledger/pkg/domain/customer"
	"github.com/mboissel/ledger/pkg/repository"
)

// Deps carries everything the application layer needs.
type Deps struct {
	Uow       repository.UnitOfWork
	Repo      repository.AccountRepository
	Directory customer.Directory
	Logger    *slog.Logger
}

// InitializeDependencies builds all dependencies from the configuration.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&infraaccount.Account{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Deps{
		Uow:       infrarepo.NewUoW(db),
		Repo:      infraaccount.New(db),
		Directory: infracustomer.NewHTTPDirectory(cfg.Customer.ApiUrl, cfg.Customer.HTTPTimeout, logger),
		Logger:    logger,
	}, nil
}
