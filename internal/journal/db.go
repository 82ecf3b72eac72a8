package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// FileName is the journal database file inside its directory.
const FileName = "journal.db"

// DB wraps the SQLite outcome journal.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the journal database in dir.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	dbPath := filepath.Join(dir, FileName)
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	j := &DB{db: sqlDB, path: dbPath}
	if err := j.migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return j, nil
}

// Close closes the database.
func (j *DB) Close() error {
	return j.db.Close()
}

// Path returns the path to the journal database file.
func (j *DB) Path() string {
	return j.path
}

func (j *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS outcomes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		device_name TEXT NOT NULL,
		device_kind TEXT NOT NULL,
		operation TEXT NOT NULL,
		status TEXT NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		recorded_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_outcomes_run ON outcomes(run_id);
	CREATE INDEX IF NOT EXISTS idx_outcomes_device ON outcomes(device_name);
	`
	if _, err := j.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
