package export

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iksnae/playtime/internal"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE apps (
	name TEXT PRIMARY KEY,
	exe  TEXT NOT NULL
);
CREATE TABLE sessions (
	app              TEXT    NOT NULL REFERENCES apps(name),
	seq              INTEGER NOT NULL,
	timestamp        TEXT    NOT NULL,
	zone             TEXT,
	started_at_unix  INTEGER NOT NULL,
	duration         TEXT    NOT NULL,
	duration_seconds REAL    NOT NULL,
	PRIMARY KEY (app, seq)
);`

// SQLiteExporter writes an app's ledger into a standalone SQLite database
// so it can be queried with ordinary SQL tooling.
type SQLiteExporter struct{}

// Export builds the database in a scratch directory and copies the finished
// file to w.
func (e *SQLiteExporter) Export(app *internal.App, w io.Writer) error {
	dir, err := os.MkdirTemp("", "playtime-export-*")
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, "ledger.db")
	if err := writeSQLite(path, app); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to copy database: %w", err)
	}
	return nil
}

func writeSQLite(path string, app *internal.App) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("INSERT INTO apps (name, exe) VALUES (?, ?)", app.Name, app.Exe); err != nil {
		return fmt.Errorf("failed to insert app: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO sessions
		(app, seq, timestamp, zone, started_at_unix, duration, duration_seconds)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	for i, session := range app.Sessions {
		d, err := session.Duration.Duration()
		if err != nil {
			return fmt.Errorf("failed to convert session %d: %w", i, err)
		}
		var zone sql.NullString
		if name := session.Timestamp.ZoneName(); name != "" {
			zone = sql.NullString{String: name, Valid: true}
		}
		if _, err := stmt.Exec(
			app.Name,
			i+1,
			session.Timestamp.String(),
			zone,
			session.Timestamp.Time().Unix(),
			session.Duration.String(),
			d.Seconds(),
		); err != nil {
			return fmt.Errorf("failed to insert session %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Extension returns the file extension for this format
func (e *SQLiteExporter) Extension() string {
	return "db"
}
