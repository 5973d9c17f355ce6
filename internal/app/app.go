package app

import (
	"agekey/internal/crypto"
	"agekey/internal/domain"
	"agekey/internal/services/identity"
	"agekey/internal/store"
)

// App bundles the services the CLI commands use.
type App struct {
	IDs domain.IdentityService
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	st := cfg.Stretcher
	if st == nil {
		st = crypto.NewArgon2idStretcher()
	}
	ids := cfg.Store
	if ids == nil {
		ids = store.NewIdentityFileStore()
	}
	return &App{IDs: identity.New(st, ids)}
}
