package interfaces

// IdentityStore persists encoded identities to files.
type IdentityStore interface {
	SaveIdentity(path, encoded string) error
	LoadIdentity(path string) (string, error)
}
