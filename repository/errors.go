package repository

import "errors"

var (
	// ErrNotFound signals that no record exists for the requested identity.
	// Callers decide whether that becomes a 404 or a validation message.
	ErrNotFound = errors.New("record not found")

	// ErrValidation signals that a record is missing required fields. This is
	// a defensive second check; handlers validate before calling the repository.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signals that the record changed between load and update.
	// The stored version no longer matches the version the caller loaded.
	ErrConflict = errors.New("record was modified concurrently")
)
