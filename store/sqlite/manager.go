package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

// Conn is one exclusive connection to a SQLite database. Each Conn owns a
// dedicated database/sql handle capped at a single underlying connection, so
// a leased Conn is never shared with another operation.
type Conn struct {
	db *sql.DB
}

// DB exposes the underlying handle for statement execution.
func (c *Conn) DB() *sql.DB {
	return c.db
}

// Manager opens and probes SQLite connections for the pool.
type Manager struct {
	dsn string
}

// NewManager builds a manager for the database file at path. The DSN enables
// WAL journaling, foreign keys, and a busy timeout so concurrent connections
// to the same file queue instead of failing.
func NewManager(path string) *Manager {
	dsn := filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=foreign_keys(ON)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=synchronous(NORMAL)"
	return &Manager{dsn: dsn}
}

// Connect opens one new connection to the engine and verifies it with a
// ping.
func (m *Manager) Connect(ctx context.Context) (*Conn, error) {
	db, err := sql.Open("sqlite", m.dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &Conn{db: db}, nil
}

// IsValid issues a trivial round-trip query to confirm the connection still
// responds.
func (m *Manager) IsValid(ctx context.Context, conn *Conn) error {
	var one int
	if err := conn.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("validate connection: %w", err)
	}
	return nil
}

// HasBroken always reports false: staleness detection is delegated entirely
// to the IsValid checkout probe.
func (m *Manager) HasBroken(*Conn) bool {
	return false
}

// Close tears down the connection.
func (m *Manager) Close(conn *Conn) error {
	return conn.db.Close()
}
