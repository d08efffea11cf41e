package main

import (
	"fmt"

	log "github.com/charmbracelet/log"

	"github.com/mboissel/ledger/infra/initializer"
	"github.com/mboissel/ledger/pkg/config"
	accountsvc "github.com/mboissel/ledger/pkg/service/account"
	"github.com/mboissel/ledger/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	svc := accountsvc.New(deps.Uow, deps.Repo, deps.Directory, deps.Logger)
	fiberApp := webapi.SetupApp(svc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server", "env", cfg.Env, "address", addr)

	return fiberApp.Listen(addr)
}
