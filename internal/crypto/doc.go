// Package crypto exposes the primitives behind passphrase-derived age identities.
//
// Contents
//
//   - Argon2id key stretching with pinned parameters and a fixed salt
//     (Argon2idStretcher, Salt)
//   - X25519 scalar clamping per RFC 7748 (Clamp, ScalarFromKeyMaterial)
//   - age identity and recipient text encodings (EncodeIdentity,
//     ParseIdentity, Recipient)
//
// # Notes
//
// The stretching parameters, salt, clamping and encoding are interoperability
// constants. Changing any of them yields a different key for the same
// passphrase with no error signal, and the encoded identity carries no
// version marker to detect it.
package crypto
