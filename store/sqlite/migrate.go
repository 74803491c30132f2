package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/emberforge/emberforge/store"
)

const migrationTable = "schema_migrations"

// Migrator applies ordered schema scripts against a store's database.
//
// Scripts are `.sql` files applied in lexicographic filename order, each in
// its own transaction. Applied filenames are recorded in a bookkeeping table
// so re-running Apply against the same database is a no-op. Concurrent Apply
// calls against one database are not safe; callers serialize them.
type Migrator struct {
	store *Store
}

var _ store.Migrator = (*Migrator)(nil)

// NewMigrator builds a migrator over the store's pool.
func NewMigrator(s *Store) *Migrator {
	return &Migrator{store: s}
}

// Apply runs all pending migration scripts found in dir. A failure reports
// the script reached, so callers can tell how far application proceeded.
func (m *Migrator) Apply(ctx context.Context, dir string) error {
	return m.ApplyFS(ctx, os.DirFS(dir), ".")
}

// ApplyFS is Apply over any fs.FS, which lets callers embed migrations in
// the binary.
func (m *Migrator) ApplyFS(ctx context.Context, fsys fs.FS, root string) error {
	lease, err := m.store.pool.Get(ctx)
	if err != nil {
		return wrapErr("migrate", KindMigration, fmt.Errorf("lease connection: %w", err))
	}
	defer lease.Release()

	if err := applyMigrations(ctx, lease.Conn().DB(), fsys, root); err != nil {
		return wrapErr("migrate", KindMigration, err)
	}
	return nil
}

func applyMigrations(ctx context.Context, db *sql.DB, fsys fs.FS, root string) error {
	if strings.TrimSpace(root) == "" {
		root = "."
	}

	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var scripts []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			scripts = append(scripts, entry.Name())
		}
	}
	sort.Strings(scripts)

	createSQL := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
);
`, migrationTable)
	if _, err := db.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, name := range scripts {
		applied, err := isApplied(ctx, db, name)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if applied {
			continue
		}

		content, err := fs.ReadFile(fsys, joinFS(root, name))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if strings.TrimSpace(string(content)) == "" {
			continue
		}

		if err := applyOne(ctx, db, name, string(content)); err != nil {
			return err
		}
	}
	return nil
}

func applyOne(ctx context.Context, db *sql.DB, name, script string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", name, err)
	}

	if _, err := tx.ExecContext(ctx, script); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("exec migration %s: %w", name, err)
	}

	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf("INSERT OR IGNORE INTO %s (name, applied_at) VALUES (?, ?)", migrationTable),
		name,
		time.Now().UTC().UnixMilli(),
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration %s: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", name, err)
	}
	return nil
}

func isApplied(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var found int
	err := db.QueryRowContext(ctx, "SELECT 1 FROM "+migrationTable+" WHERE name = ?", name).Scan(&found)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func joinFS(root, name string) string {
	if root == "." || root == "" {
		return name
	}
	return root + "/" + name
}
