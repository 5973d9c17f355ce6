// Package bech32 implements the BIP-173 Bech32 checksummed text encoding.
//
// The functions are pure and operate on slices of small integers:
//
//   - ConvertBits regroups 8-bit bytes into 5-bit symbols (and back)
//   - HRPExpand, Polymod and CreateChecksum compute the BCH checksum
//   - Encode and Decode map symbols to and from the 32-character alphabet
//
// # Notes
//
// Unlike BIP-173 no overall length limit is enforced, since age identities
// and recipients exceed the 90 character cap. Mixed-case strings are
// rejected on decode; Encode always produces lower case.
package bech32
