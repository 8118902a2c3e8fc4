package types

import "errors"

// Store operation errors. The store wraps these with the offending id or
// field name; callers match with errors.Is.
var (
	// ErrStorageUnavailable is fatal and surfaces only while opening the
	// backing store.
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrUniqueConstraint = errors.New("unique constraint violation")
	ErrForeignKey       = errors.New("foreign key violation")
	ErrInvalidEnum      = errors.New("invalid enumeration value")
	ErrNotFound         = errors.New("entity not found")
	ErrMissingField     = errors.New("required field is empty")

	// ErrLockContention reports SQLITE_BUSY/SQLITE_LOCKED from a concurrent
	// external writer. The store never retries; callers may, with backoff.
	ErrLockContention = errors.New("database is locked")
)
