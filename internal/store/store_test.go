package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestCreate_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Create(path)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	defer s.Close()

	// Verify file was created
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestCreate_FailsOnExistingStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Create(path)
	if err != nil {
		t.Fatalf("first Create() failed: %v", err)
	}
	s1.Close()

	s2, err := Create(path)
	if err == nil {
		s2.Close()
		t.Fatal("second Create() succeeded, want error for existing tables")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %v, want 'already exists'", err)
	}
}

func TestCreate_FailsOnPartialStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Create(path)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if _, err := s.db.Exec("DROP TABLE font; DROP TABLE name"); err != nil {
		t.Fatalf("drop tables: %v", err)
	}
	s.Close()

	// Only the error table is left; creation must still fail and must not
	// leave font or name behind.
	if s2, err := Create(path); err == nil {
		s2.Close()
		t.Fatal("Create() succeeded over a store with an error table")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	defer db.Close()
	var n int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('font', 'name')").Scan(&n)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if n != 0 {
		t.Errorf("failed Create() left %d tables behind", n)
	}
}

func TestCreate_RejectedTargetKeepsJournalMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.db")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec("CREATE TABLE font (path TEXT PRIMARY KEY, size INTEGER)"); err != nil {
		t.Fatalf("create table: %v", err)
	}

	if s, err := Create(path); err == nil {
		s.Close()
		t.Fatal("Create() succeeded over an existing font table")
	}

	var mode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	if mode != "delete" {
		t.Errorf("journal_mode = %q after rejected Create(), want %q", mode, "delete")
	}
}

func TestCreate_InvalidPath(t *testing.T) {
	// Try to create in non-existent directory
	path := "/nonexistent/dir/test.db"

	_, err := Create(path)
	if err == nil {
		t.Error("expected error for invalid path, got nil")
	}
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{db: nil}
	err := s.Close()
	if err != nil {
		t.Errorf("Close() on nil db should not error: %v", err)
	}
}

func TestClose_MultipleCalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Create(path)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Errorf("first Close() failed: %v", err)
	}

	// Second close must not panic
	_ = s.Close()
}

func TestDB_ReturnsUnderlyingConnection(t *testing.T) {
	s := createTestStore(t)

	db := s.DB()
	if db == nil {
		t.Fatal("DB() returned nil")
	}
	if err := db.Ping(); err != nil {
		t.Errorf("DB() connection not usable: %v", err)
	}
}

// Pragma tests

func TestPragmas(t *testing.T) {
	s := createTestStore(t)

	cases := []struct {
		name, want string
	}{
		{"journal_mode", "wal"},
		{"synchronous", "1"}, // NORMAL
		{"busy_timeout", "5000"},
		{"foreign_keys", "1"},
		{"user_version", "1"},
	}
	for _, c := range cases {
		if err := s.verifyPragma(c.name, c.want); err != nil {
			t.Error(err)
		}
	}
}

// Schema table tests

func TestSchema_Tables(t *testing.T) {
	s := createTestStore(t)

	cases := map[string][]string{
		"font":  {"path", "size"},
		"name":  {"path", "face_index", "platform_id", "encoding_id", "name_id", "name"},
		"error": {"path"},
	}
	for table, want := range cases {
		got := getTableColumns(t, s.db, table)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s columns = %v, want %v", table, got, want)
		}
	}
}

func TestSchema_EmptyAfterCreate(t *testing.T) {
	s := createTestStore(t)

	for _, table := range []string{"font", "name", "error"} {
		if n := countRows(t, s.db, table); n != 0 {
			t.Errorf("%s has %d rows, want 0", table, n)
		}
	}
}
