package crypto

import (
	"fmt"

	"golang.org/x/crypto/curve25519"

	"agekey/internal/domain"
	"agekey/internal/util/memzero"
)

// Clamp applies the RFC 7748 X25519 clamping to k in place: the low three
// bits of the first byte are cleared, the top bit of the last byte is
// cleared and bit 6 of the last byte is set.
func Clamp(k *domain.X25519Private) {
	kb := k[:]
	kb[0] &= 248
	kb[31] &= 127
	kb[31] |= 64
}

// IsClamped reports whether k already satisfies the clamping rule.
func IsClamped(k domain.X25519Private) bool {
	return k[0]&7 == 0 && k[31]&0xc0 == 0x40
}

// ScalarFromKeyMaterial copies raw into a clamped private scalar and wipes
// raw. It panics if raw is not exactly 32 bytes.
func ScalarFromKeyMaterial(raw []byte) domain.X25519Private {
	var k domain.X25519Private
	if len(raw) != len(k) {
		panic(fmt.Sprintf("crypto: key material is %d bytes, want %d", len(raw), len(k)))
	}
	copy(k[:], raw)
	memzero.Zero(raw)
	Clamp(&k)
	return k
}

// PublicKey returns the X25519 public key for priv.
func PublicKey(priv domain.X25519Private) (domain.X25519Public, error) {
	var pub domain.X25519Public
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return pub, err
	}
	copy(pub[:], pb)
	return pub, nil
}
