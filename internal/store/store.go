// Package store writes dashboard snapshots to SQLite so they can be browsed
// with other tools. Only derived views are stored, never the listening
// history itself.
package store

import (
	"database/sql"
	"fmt"

	"github.com/ademuri/streaming-history-tools/internal/migration"
	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	exists, err := dbExists(db)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if _, err := db.Exec(migration.Create); err != nil {
		return fmt.Errorf("executing migration: %w", err)
	}
	return nil
}

func dbExists(db *sql.DB) (bool, error) {
	// 'Snapshot' is created first, so it stands in for the whole schema.
	row := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'Snapshot'")
	var name string
	err := row.Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking db existence: %w", err)
	}
	return true, nil
}
