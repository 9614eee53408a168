package engine

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.rowstore/internal/config"
	"go.rowstore/internal/statement"
	"go.rowstore/internal/storage"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Home:     t.TempDir(),
		LogDir:   t.TempDir(),
		LogLevel: "debug",
	}
}

func run(t *testing.T, db *Database, line string) (string, error) {
	t.Helper()
	stmt, err := statement.Prepare(line)
	if err != nil {
		t.Fatalf("Prepare %q failed: %v", line, err)
	}
	var out bytes.Buffer
	err = db.Execute(stmt, &out)
	return out.String(), err
}

func TestExecuteInsertAndSelect(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "users.db")

	db, err := Open(path, cfg)
	if err != nil {
		t.Fatal(err)
	}

	for _, line := range []string{
		"insert 1 user1 user1@x.com",
		"insert 2 user2 user2@x.com",
	} {
		if _, err := run(t, db, line); err != nil {
			t.Fatalf("%q failed: %v", line, err)
		}
	}

	out, err := run(t, db, "select")
	if err != nil {
		t.Fatal(err)
	}
	want := "(1, user1, user1@x.com)\n(2, user2, user2@x.com)\n"
	if out != want {
		t.Fatalf("Expected %q, got %q", want, out)
	}

	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopen and read back
	db, err = Open(path, cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	out, err = run(t, db, "select")
	if err != nil {
		t.Fatal(err)
	}
	if out != want {
		t.Fatalf("After reopen expected %q, got %q", want, out)
	}

	logData, err := os.ReadFile(filepath.Join(cfg.LogDir, "users.log"))
	if err != nil {
		t.Fatalf("Log file missing: %v", err)
	}
	if !strings.Contains(string(logData), "Inserted row 2") {
		t.Errorf("Expected insert to be logged, got %q", logData)
	}
}

func TestExecuteTableFull(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "full.db"), testConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	for i := 1; i <= storage.LeafNodeMaxCells; i++ {
		if _, err := run(t, db, fmt.Sprintf("insert %d user%d person%d@example.com", i, i, i)); err != nil {
			t.Fatalf("Insert %d failed: %v", i, err)
		}
	}

	_, err = run(t, db, "insert 99 late late@example.com")
	if !errors.Is(err, ErrTableFull) {
		t.Fatalf("Expected ErrTableFull, got %v", err)
	}

	var count int
	if err := db.Select(func(storage.Row) error { count++; return nil }); err != nil {
		t.Fatal(err)
	}
	if count != storage.LeafNodeMaxCells {
		t.Fatalf("Expected %d rows, got %d", storage.LeafNodeMaxCells, count)
	}
}

func TestTree(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "tree.db"), testConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	for _, id := range []uint32{3, 1, 2} {
		if err := db.Insert(storage.Row{ID: id, Username: "u", Email: "e"}); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	if err := db.Tree(&out); err != nil {
		t.Fatal(err)
	}
	want := "leaf (size 3)\n  - 0 : 3\n  - 1 : 1\n  - 2 : 2\n"
	if out.String() != want {
		t.Fatalf("Expected %q, got %q", want, out.String())
	}
}

func TestOpenRejectsBadLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogLevel = "chatty"

	if _, err := Open(filepath.Join(t.TempDir(), "x.db"), cfg); err == nil {
		t.Fatal("Expected an error for an unknown log level")
	}
}

func TestCloseTwice(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "twice.db"), testConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Insert(storage.Row{ID: 1, Username: "u", Email: "e"}); err != nil {
		t.Fatal(err)
	}

	if err := db.Close(); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Second Close failed: %v", err)
	}
}

func TestExecuteInsertWithoutRow(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "norow.db"), testConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	err = db.Execute(&statement.Statement{Type: statement.Insert}, &bytes.Buffer{})
	if !errors.Is(err, ErrNoRow) {
		t.Fatalf("Expected ErrNoRow, got %v", err)
	}
}
