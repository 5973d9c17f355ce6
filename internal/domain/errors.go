package domain

import (
	"errors"
	"fmt"
)

// MinPassphraseLength is the minimum number of characters in a passphrase.
const MinPassphraseLength = 8

var (
	// ErrWeakPassphrase is returned when the passphrase is too short.
	ErrWeakPassphrase = fmt.Errorf("passphrase must be at least %d characters", MinPassphraseLength)

	// ErrStretcherUnavailable is returned when no key stretcher is wired.
	// Derivation never falls back to a weaker function.
	ErrStretcherUnavailable = errors.New(
		"argon2id key stretcher unavailable: rebuild with golang.org/x/crypto/argon2",
	)

	// ErrFilesystem wraps failures creating directories or writing identity files.
	ErrFilesystem = errors.New("filesystem error")

	// ErrMalformedIdentity is returned when an identity string cannot be parsed.
	ErrMalformedIdentity = errors.New("malformed age identity")

	// ErrEncoding is returned when an encoded identity fails the age interop check.
	ErrEncoding = errors.New("identity encoding mismatch")
)
