package config

import (
	"log/slog"

	accountrepo "github.com/jamadeu/multicontas/pkg/repository/account"
	clientrepo "github.com/jamadeu/multicontas/pkg/repository/client"
	"gorm.io/gorm"
)

// Deps bundles the wired infrastructure handed to the application at
// startup. Services are built from these in app.New; there is no ambient
// global state.
type Deps struct {
	Config      *App
	Logger      *slog.Logger
	DB          *gorm.DB
	ClientRepo  clientrepo.Repository
	AccountRepo accountrepo.Repository
}
