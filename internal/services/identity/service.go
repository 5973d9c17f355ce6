package identity

import (
	"fmt"
	"unicode/utf8"

	"filippo.io/age"

	"agekey/internal/crypto"
	"agekey/internal/domain"
	"agekey/internal/util/memzero"
)

// Service derives identities using a key stretcher and a backing store.
//
// The same passphrase always yields the same identity, on any device.
type Service struct {
	stretcher domain.KeyStretcher
	store     domain.IdentityStore
}

// New returns an identity service. A nil stretcher makes every derivation
// fail with domain.ErrStretcherUnavailable.
func New(st domain.KeyStretcher, s domain.IdentityStore) *Service {
	return &Service{stretcher: st, store: s}
}

// Ready reports whether the service can derive identities.
func (s *Service) Ready() error {
	if s.stretcher == nil {
		return domain.ErrStretcherUnavailable
	}
	return nil
}

// Derive returns the identity for passphrase without writing anything.
func (s *Service) Derive(passphrase string) (domain.Identity, error) {
	if err := s.Ready(); err != nil {
		return domain.Identity{}, err
	}
	if err := ValidatePassphrase(passphrase); err != nil {
		return domain.Identity{}, err
	}

	pass := []byte(passphrase)
	raw, err := s.stretcher.Stretch(pass)
	memzero.Zero(pass)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("stretching passphrase: %w", err)
	}
	priv := crypto.ScalarFromKeyMaterial(raw)

	pub, err := crypto.PublicKey(priv)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("computing public key: %w", err)
	}
	id := domain.Identity{
		Private:   priv,
		Public:    pub,
		Encoded:   crypto.EncodeIdentity(priv),
		Recipient: crypto.EncodeRecipient(pub),
	}
	if err := checkInterop(id); err != nil {
		return domain.Identity{}, err
	}
	return id, nil
}

// Generate derives the identity for passphrase and writes it to path.
// Nothing is written if derivation fails.
func (s *Service) Generate(passphrase, path string) (domain.Identity, error) {
	id, err := s.Derive(passphrase)
	if err != nil {
		return domain.Identity{}, err
	}
	if err := s.store.SaveIdentity(path, id.Encoded); err != nil {
		return domain.Identity{}, err
	}
	return id, nil
}

// Recipient returns the age recipient of the identity stored at path.
func (s *Service) Recipient(path string) (string, error) {
	encoded, err := s.store.LoadIdentity(path)
	if err != nil {
		return "", err
	}
	priv, err := crypto.ParseIdentity(encoded)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return crypto.Recipient(priv)
}

// ValidatePassphrase enforces the minimum length, counted in characters
// rather than bytes.
func ValidatePassphrase(passphrase string) error {
	if utf8.RuneCountInString(passphrase) < domain.MinPassphraseLength {
		return domain.ErrWeakPassphrase
	}
	return nil
}

// checkInterop parses the encoding with the age library and requires it to
// agree on the recipient.
func checkInterop(id domain.Identity) error {
	parsed, err := age.ParseX25519Identity(id.Encoded)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	if got := parsed.Recipient().String(); got != id.Recipient {
		return fmt.Errorf("%w: age recipient %s, derived %s", domain.ErrEncoding, got, id.Recipient)
	}
	return nil
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
