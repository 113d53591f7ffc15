// Package cli provides the interactive booking command-line client.
//
// It wires configuration, the flat-file user store and a small REPL:
//
//	signup     register a new account (password hashed before storing)
//	login      authenticate against the stored users
//	bookings   list the logged-in user's tickets
//	reload     re-read the users file, dropping unsaved changes
//	users      show how many accounts are loaded
//	logout     forget the current identity
//	exit|quit  leave
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
