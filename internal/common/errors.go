// Package common defines the sentinel errors shared by the store, the
// persistence layer, the session and the CLI. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound          = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrSelfDeleteForbidden = errors.New("cannot delete the account you are logged in with")

	// Input errors.
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrUnknownField      = errors.New("unknown field")

	// Storage errors.
	ErrPersistenceFailure = errors.New("persistence failure")

	// Session errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrForbidden      = errors.New("administrator rights required")
)
