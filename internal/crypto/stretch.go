package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"

	"agekey/internal/domain"
)

// Argon2id parameters. These must match every other implementation that
// derives identities from the same passphrase.
const (
	StretchTime      = 3
	StretchMemoryKiB = 64 * 1024
	StretchThreads   = 4
	StretchKeyLen    = 32
)

// SaltTag is the domain-separation string hashed into Salt.
const SaltTag = "claude-sync-v1"

// Salt is SHA-256(SaltTag). It is neither secret nor random.
var Salt = sha256.Sum256([]byte(SaltTag))

// Argon2idStretcher stretches passphrases with Argon2id and the fixed Salt.
type Argon2idStretcher struct{}

// NewArgon2idStretcher returns the stretcher used for identity derivation.
func NewArgon2idStretcher() *Argon2idStretcher { return &Argon2idStretcher{} }

// Stretch returns StretchKeyLen bytes of key material for passphrase.
func (Argon2idStretcher) Stretch(passphrase []byte) ([]byte, error) {
	return argon2.IDKey(passphrase, Salt[:], StretchTime, StretchMemoryKiB, StretchThreads, StretchKeyLen), nil
}

// Compile-time assertion that Argon2idStretcher implements domain.KeyStretcher.
var _ domain.KeyStretcher = (*Argon2idStretcher)(nil)
