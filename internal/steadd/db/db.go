package db

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// Open opens a database connection and runs migrations
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{sqlDB}

	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// migrate applies the embedded schema. The schema is written to be
// re-runnable, so applying it on every start is safe.
func (db *DB) migrate() error {
	var currentVersion int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil && err != sql.ErrNoRows {
		// Table might not exist yet, create everything
		if _, err := db.Exec(schemaSQL); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
		return nil
	}

	if currentVersion >= 1 {
		return nil
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}
