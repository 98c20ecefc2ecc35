// Package initializer wires the infrastructure at startup: logger,
// database connection, schema migrations and repositories.
package initializer

import (
	"github.com/jamadeu/multicontas/infra"
	accountinfra "github.com/jamadeu/multicontas/infra/repository/account"
	clientinfra "github.com/jamadeu/multicontas/infra/repository/client"
	"github.com/jamadeu/multicontas/pkg/config"
)

// InitializeDependencies builds every dependency the application needs.
func InitializeDependencies(cfg *config.App) (*config.Deps, error) {
	deps := &config.Deps{Config: cfg}

	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	deps.DB = db

	if err := infra.RunMigrations(db, cfg.Migrations.Dir); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		return nil, err
	}

	deps.ClientRepo = clientinfra.New(db)
	deps.AccountRepo = accountinfra.New(db)

	return deps, nil
}
