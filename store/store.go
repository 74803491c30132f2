// Package store defines the backend-agnostic persistence contracts shared by
// all storage engines.
//
// A backend provides three capabilities: a Store handle that owns a
// connection pool, an Execer that runs a query descriptor without decoding
// rows, and a Migrator that applies a directory of ordered schema scripts.
// Typed row queries cannot be expressed as interface methods (Go interfaces
// have no generic methods), so each backend exposes a package-level generic
// function instead, e.g. sqlite.Query[T].
package store

import (
	"context"

	"github.com/emberforge/emberforge/store/sqlq"
)

// Store is a handle to a storage backend. Stores are cheap to share: they
// hold a pool reference, never an individual connection.
type Store interface {
	// Close releases the backend's pooled connections. The store must not
	// be used after Close.
	Close() error
}

// Execer runs a query descriptor expecting no result rows.
type Execer interface {
	Exec(ctx context.Context, q sqlq.Query) error
}

// Migrator applies versioned schema changes to a backend.
//
// Apply must be idempotent for the same database: running it twice leaves the
// schema unchanged. Concurrent Apply calls against the same database are not
// safe; callers serialize them. Apply is expected to run once at startup,
// before queries are issued against the same store.
type Migrator interface {
	Apply(ctx context.Context, dir string) error
}
