// Package app wires application dependencies for the CLI.
//
// It builds the key stretcher, identity store and identity service from
// Config, exposing them via the App struct for commands to use.
package app
