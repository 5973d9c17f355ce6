// Package identity derives age identities from passphrases.
//
// It enforces the passphrase policy, runs the pipeline
// Stretcher -> Clamper -> Encoder, cross-checks the result against the age
// library and persists it via the domain.IdentityStore.
package identity
