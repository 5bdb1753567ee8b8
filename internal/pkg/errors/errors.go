package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a write that collides with an existing unique row.
	ErrConflict = errors.New("already exists")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIntegrity signals a storage-level constraint violation that the
	// coordination layer should have made impossible. Never retried.
	ErrIntegrity = errors.New("storage integrity violation")
)
