// Package storage provides the session-scoped key-value persistence
// capability and the mirror that keeps the table state persisted through it.
// The capability is injected, so the engine is testable with an in-memory
// map and deployable over a file, a SQLite database, or a Badger store.
package storage

import "errors"

// Store is the session-scoped key-value capability the mirror writes
// through. Get reports absence via ok=false; an error means the store
// itself is unavailable.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// ErrUnavailable indicates the session store rejected an operation, for
// example on quota or I/O failure. Mutations still apply in memory;
// durability is best-effort.
var ErrUnavailable = errors.New("session store unavailable")
