package types

// Identity is a passphrase-derived age X25519 identity.
//
// Encoded is the distributable secret ("AGE-SECRET-KEY-1...") and must be
// handled with the same care as Private.
type Identity struct {
	Private   X25519Private
	Public    X25519Public
	Encoded   string
	Recipient string
}
