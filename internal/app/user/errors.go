package user

import "errors"

// Store-level failures. Concrete errors wrap one of these so callers can use errors.Is.
var (
	// ErrNotFound is returned when no user exists for an identifier.
	ErrNotFound = errors.New("user not found")

	// ErrConflict is returned when a unique field is already taken.
	ErrConflict = errors.New("user already exists")

	// ErrEmailTaken refines ErrConflict for the email column.
	ErrEmailTaken = errors.New("email already registered")

	// ErrPhoneTaken refines ErrConflict for the phone column.
	ErrPhoneTaken = errors.New("phone already registered")

	// ErrInvalidInput is returned when the store rejects a value's shape (e.g. too long).
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable is returned when a store cannot be reached or times out.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrPartialWrite is returned when the user row was committed but the profile attribute was not.
	ErrPartialWrite = errors.New("user created without profile attribute")
)
