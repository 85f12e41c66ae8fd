package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// OpenSQLiteBytes writes an exported SQLite image to disk and opens it
func OpenSQLiteBytes(t *testing.T, data []byte) *sql.DB {
	t.Helper()
	path := filepath.Join(CreateTempDir(t), "export.db")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write database image: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return n
}
