// Package history persists the append-only special_history log (spec.md
// §3, SPEC_FULL.md §9.4) to SQLite, grounded on the teacher's
// internal/database package.
package history

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ricferreira/roster-optimizer/internal/models"
)

// Store wraps a SQLite connection holding the special_history table.
type Store struct {
	db *sql.DB
}

// Open creates (or reuses) the SQLite database at dbPath and ensures the
// schema exists.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	// SQLite has no real concurrent-writer story, and a pooled :memory:
	// database hands each connection its own empty database — pin the
	// pool to one connection so every query sees the same database file.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS special_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		descriptor TEXT NOT NULL,
		employee_id TEXT NOT NULL,
		month_year TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(descriptor, employee_id, month_year)
	);
	`
	_, err := db.Exec(schema)
	return err
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadAll returns every recorded entry, oldest first, for use as
// normalize.Build's SpecialHistory input.
func (s *Store) LoadAll() ([]models.SpecialHistoryRow, error) {
	rows, err := s.db.Query(`SELECT descriptor, employee_id, month_year FROM special_history ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.SpecialHistoryRow
	for rows.Next() {
		var r models.SpecialHistoryRow
		if err := rows.Scan(&r.Descriptor, &r.EmployeeID, &r.MonthYear); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Append writes this run's new special-day entries. A duplicate
// (descriptor, employee_id, month_year) is silently ignored: re-running
// the same month must not double-count fairness history.
func (s *Store) Append(entries []models.SpecialHistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO special_history (descriptor, employee_id, month_year) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.Descriptor, e.EmployeeID, e.MonthYear); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
