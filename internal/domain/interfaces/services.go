package interfaces

import domaintypes "agekey/internal/domain/types"

// KeyStretcher turns a passphrase into fixed-length key material.
type KeyStretcher interface {
	Stretch(passphrase []byte) ([]byte, error)
}

// IdentityService derives identities and manages their identity files.
type IdentityService interface {
	Ready() error
	Derive(passphrase string) (domaintypes.Identity, error)
	Generate(passphrase, path string) (domaintypes.Identity, error)
	Recipient(path string) (string, error)
}
