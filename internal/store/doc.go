// Package store provides file-based persistence for encoded age identities.
//
// IdentityFileStore writes each identity through a temp file in the target
// directory, restricts it to owner read/write and renames it into place, so
// a reader sees either the complete file with mode 0600 or nothing. Parent
// directories are created with mode 0700. All methods are concurrency-safe
// via internal locking.
package store
