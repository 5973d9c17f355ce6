package domain

import (
	interfaces "agekey/internal/domain/interfaces"
	types "agekey/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Identity      = types.Identity
	X25519Public  = types.X25519Public
	X25519Private = types.X25519Private
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyStretcher    = interfaces.KeyStretcher
	IdentityService = interfaces.IdentityService
	IdentityStore   = interfaces.IdentityStore
)
