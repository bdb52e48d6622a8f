// Package db tabulates scan records in a private in-memory SQLite database
// so groupings can be computed with plain SQL.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const recordsTableDDL = `
CREATE TABLE IF NOT EXISTS records (
    id INTEGER PRIMARY KEY,
    folder TEXT NOT NULL,
    name TEXT NOT NULL,
    size_bytes INTEGER NOT NULL,
    size_ckb INTEGER NOT NULL,
    file_type TEXT NOT NULL
);
`

const recordsFolderIndexDDL = `CREATE INDEX IF NOT EXISTS idx_records_folder ON records(folder);`
const recordsTypeIndexDDL = `CREATE INDEX IF NOT EXISTS idx_records_type ON records(file_type);`

// Open returns a fresh in-memory database with the schema applied.
// Every call gets its own database.
func Open() (*sql.DB, error) {
	database, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Each connection to :memory: is a separate database.
	database.SetMaxOpenConns(1)

	if err := InitSchema(database); err != nil {
		database.Close()
		return nil, err
	}
	if err := ApplyWritePragmas(database); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// InitSchema creates all tables in the database.
func InitSchema(db *sql.DB) error {
	ddls := []string{
		recordsTableDDL,
	}

	for _, ddl := range ddls {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("failed to execute DDL: %w", err)
		}
	}

	return nil
}

// ApplyWritePragmas configures SQLite for fast bulk loading.
// Nothing is persisted, so durability is off.
func ApplyWritePragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = OFF",
		"PRAGMA synchronous = OFF",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA cache_size = -64000", // 64MB cache
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to apply pragma %q: %w", pragma, err)
		}
	}

	return nil
}

// BuildIndexes creates indexes after the initial data load for better performance.
func BuildIndexes(db *sql.DB) error {
	indexes := []string{
		recordsFolderIndexDDL,
		recordsTypeIndexDDL,
	}

	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
