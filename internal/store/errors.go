package store

import "errors"

// Sentinel errors returned by the key-value backends and the stores built on
// them. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when nothing is stored under the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrLockTimeout is returned by Lock when the store-wide lock is held by
	// another process (or goroutine) for longer than the lock timeout.
	ErrLockTimeout = errors.New("timed out waiting for storage lock")

	// ErrUnknownBackend is returned by [NewClientStorages] for a backend name
	// it does not know.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrCorruptStore is returned by the file backend when its file exists
	// but is not a JSON object of strings.
	ErrCorruptStore = errors.New("storage file is corrupt")

	// ErrInvalidPreference is returned when a language or theme outside the
	// supported set is saved.
	ErrInvalidPreference = errors.New("invalid preference value")
)

// Low-level database operation errors of the sqlite backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
