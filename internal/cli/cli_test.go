package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emberforge/emberforge/internal/version"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if want := "emberforge v" + version.Version + "\n"; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestRollCommand(t *testing.T) {
	out, err := runCommand(t, "roll", "--pool", "3")
	if err != nil {
		t.Fatalf("roll: %v", err)
	}

	outcomes := []string{"failure", "partial", "success", "critical"}
	graded := false
	for _, outcome := range outcomes {
		if strings.HasPrefix(out, outcome+" [") {
			graded = true
			break
		}
	}
	if !graded {
		t.Fatalf("expected a graded outcome with rolls, got %q", out)
	}
}

func TestMigrateCommand(t *testing.T) {
	dir := t.TempDir()
	migrations := filepath.Join(dir, "migrations")
	if err := os.Mkdir(migrations, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	script := "CREATE TABLE heroes (id BLOB PRIMARY KEY, name TEXT NOT NULL);"
	if err := os.WriteFile(filepath.Join(migrations, "001_init.sql"), []byte(script), 0o600); err != nil {
		t.Fatalf("write migration: %v", err)
	}
	db := filepath.Join(dir, "test.db")

	out, err := runCommand(t, "migrate", "--db", db, "--dir", migrations)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !strings.Contains(out, "applied migrations") {
		t.Fatalf("expected confirmation, got %q", out)
	}
	if _, err := os.Stat(db); err != nil {
		t.Fatalf("expected database file to exist: %v", err)
	}
}
