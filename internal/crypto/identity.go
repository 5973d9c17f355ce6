package crypto

import (
	"fmt"
	"strings"

	"agekey/internal/bech32"
	"agekey/internal/domain"
)

const (
	// IdentityHRP prefixes age X25519 secret keys.
	IdentityHRP = "age-secret-key-"
	// RecipientHRP prefixes age X25519 public keys.
	RecipientHRP = "age"
)

// EncodeIdentity returns the upper-case age identity string for k:
// "AGE-SECRET-KEY-1" followed by 52 data and 6 checksum characters.
func EncodeIdentity(k domain.X25519Private) string {
	s, err := encode(IdentityHRP, k[:])
	if err != nil {
		// Unreachable: 32 bytes always regroup into valid 5-bit symbols.
		panic(err)
	}
	return strings.ToUpper(s)
}

// ParseIdentity decodes an age identity string back into its scalar.
// Surrounding whitespace is ignored.
func ParseIdentity(s string) (domain.X25519Private, error) {
	var k domain.X25519Private
	b, err := decode(IdentityHRP, strings.TrimSpace(s))
	if err != nil {
		return k, err
	}
	if len(b) != len(k) {
		return k, fmt.Errorf("%w: identity is %d bytes, want %d", domain.ErrMalformedIdentity, len(b), len(k))
	}
	copy(k[:], b)
	if !IsClamped(k) {
		return k, fmt.Errorf("%w: scalar is not clamped", domain.ErrMalformedIdentity)
	}
	return k, nil
}

// EncodeRecipient returns the lower-case "age1..." form of pub.
func EncodeRecipient(pub domain.X25519Public) string {
	s, err := encode(RecipientHRP, pub[:])
	if err != nil {
		panic(err)
	}
	return s
}

// Recipient returns the age recipient string for the private scalar k.
func Recipient(k domain.X25519Private) (string, error) {
	pub, err := PublicKey(k)
	if err != nil {
		return "", err
	}
	return EncodeRecipient(pub), nil
}

func encode(hrp string, b []byte) (string, error) {
	data, err := bech32.ConvertBits(b, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(hrp, data)
}

func decode(wantHRP, s string) ([]byte, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedIdentity, err)
	}
	if hrp != wantHRP {
		return nil, fmt.Errorf("%w: prefix %q, want %q", domain.ErrMalformedIdentity, hrp, wantHRP)
	}
	b, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedIdentity, err)
	}
	return b, nil
}
