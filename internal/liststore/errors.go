package liststore

import "errors"

// Sentinel errors for lifecycle misuse and bootstrap conflicts. Underlying
// storage-engine errors are wrapped with operation context and propagate
// unchanged otherwise; the store performs no retries and no silent recovery.
var (
	// ErrAlreadyExists is returned by Initialize when the persistent
	// backing file already exists.
	ErrAlreadyExists = errors.New("liststore: database file already exists")

	// ErrNotFound is returned by New when the persistent backing file
	// does not exist. Only Initialize creates files.
	ErrNotFound = errors.New("liststore: database file does not exist")

	// ErrAlreadyOpen is returned by Open when the handle already holds a
	// live connection.
	ErrAlreadyOpen = errors.New("liststore: connection already open")

	// ErrAlreadyClosed is returned by Close when no connection is held.
	ErrAlreadyClosed = errors.New("liststore: connection already closed")

	// ErrNotConnected is returned by data operations issued while no
	// connection is held.
	ErrNotConnected = errors.New("liststore: not connected")
)
