// Package common defines sentinel errors and small helpers shared by the
// user store, the password hashing code and the CLI. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Storage errors.
	ErrIO     = errors.New("storage i/o error")
	ErrFormat = errors.New("malformed storage content")

	// Authentication / registration errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUserExists   = errors.New("user already exists")
	ErrInvalidUser  = errors.New("invalid user")

	// Hashing errors.
	ErrUnsupportedHash = errors.New("unsupported hash algorithm")
)
