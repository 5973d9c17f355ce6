package app

import "agekey/internal/domain"

// Config holds runtime wiring options for building the app.
type Config struct {
	Stretcher domain.KeyStretcher  // optional; defaults to the Argon2id stretcher
	Store     domain.IdentityStore // optional; defaults to the identity file store
}
