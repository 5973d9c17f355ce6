package store

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"agekey/internal/domain"
)

// identityFileMode restricts identity files to owner read/write.
const identityFileMode = 0o600

// IdentityFileStore persists encoded identities to caller-chosen paths.
type IdentityFileStore struct {
	mu sync.Mutex
}

// NewIdentityFileStore returns an IdentityFileStore.
func NewIdentityFileStore() *IdentityFileStore {
	return &IdentityFileStore{}
}

// SaveIdentity writes encoded plus a trailing newline to path with mode 0600,
// creating parent directories as needed.
func (s *IdentityFileStore) SaveIdentity(path, encoded string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFile(path, []byte(encoded+"\n"), identityFileMode); err != nil {
		return fmt.Errorf("%w: writing identity: %w", domain.ErrFilesystem, err)
	}
	return nil
}

// LoadIdentity reads the encoded identity at path with surrounding
// whitespace removed.
func (s *IdentityFileStore) LoadIdentity(path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading identity: %w", domain.ErrFilesystem, err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Compile-time assertion that IdentityFileStore implements domain.IdentityStore.
var _ domain.IdentityStore = (*IdentityFileStore)(nil)
