package models

import "errors"

// Domain errors shared across repositories, services, and handlers.
// Repositories and services wrap these with fmt.Errorf("...: %w", ...) so the
// HTTP layer can classify failures with errors.Is.
var (
	// ErrNotFound indicates a referenced user or recipe does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail indicates a registration conflict on the email key.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials covers both an unknown email and a failed password
	// comparison. Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrStoreUnavailable indicates an underlying persistence failure that is
	// not otherwise classified.
	ErrStoreUnavailable = errors.New("store unavailable")
)
