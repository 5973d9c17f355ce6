// Package commands defines the agekey CLI.
//
// Commands
//
//   - agekey <passphrase> <output-path>   Derive the identity and write it
//   - recipient <identity-file>           Print the age recipient of an identity
//
// # Implementation
//
// The root command builds the app (stretcher, identity store, identity
// service) before any subcommand runs. Errors are returned to cobra, which
// prints them on stderr; main then exits with status 1. Usage text is only
// shown for argument count errors.
//
// A passphrase of "-" is read from the first line of stdin, keeping it out
// of the process list. Passphrases starting with "-" must follow "--".
package commands
