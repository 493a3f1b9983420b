// Package store is a local library of named fragment sets backed by SQLite.
// It stands in for a remote fragment repository: parsed FASTA fragment sets
// are saved under a name and read back for reconstruction later.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database holding the fragment library
type Store struct {
	conn *sql.DB
	Path string
}

const schema = `
CREATE TABLE IF NOT EXISTS fragment_sets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS fragments (
	set_id INTEGER NOT NULL REFERENCES fragment_sets(id) ON DELETE CASCADE,
	seq TEXT NOT NULL,
	UNIQUE(set_id, seq)
);`

// Open opens the fragment library at path, creating it and its parent
// directory if needed. WAL mode and foreign keys are enabled.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating library directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening library: %w", err)
	}

	// WAL mode for concurrent reads
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	// foreign keys so deleting a set cascades to its fragments
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating library schema: %w", err)
	}

	return &Store{conn: conn, Path: path}, nil
}

// Close closes the library's database connection
func (s *Store) Close() error {
	return s.conn.Close()
}

// AddSet saves a named fragment set, replacing any set already saved under
// the same name. Duplicate fragments collapse to one row.
func (s *Store) AddSet(name string, fragments []string) error {
	if name == "" {
		return fmt.Errorf("fragment set name is required")
	}
	if len(fragments) == 0 {
		return fmt.Errorf("fragment set %q is empty", name)
	}

	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("saving fragment set: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM fragment_sets WHERE name = ?", name); err != nil {
		return fmt.Errorf("replacing fragment set %q: %w", name, err)
	}

	res, err := tx.Exec(
		"INSERT INTO fragment_sets (name, created_at) VALUES (?, ?)",
		name, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("saving fragment set %q: %w", name, err)
	}
	setID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("saving fragment set %q: %w", name, err)
	}

	for _, seq := range fragments {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO fragments (set_id, seq) VALUES (?, ?)",
			setID, seq,
		); err != nil {
			return fmt.Errorf("saving fragment of %q: %w", name, err)
		}
	}

	return tx.Commit()
}

// Set returns the fragments saved under the passed name
func (s *Store) Set(name string) ([]string, error) {
	var setID int64
	err := s.conn.QueryRow("SELECT id FROM fragment_sets WHERE name = ?", name).Scan(&setID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no fragment set named %q in the library", name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading fragment set %q: %w", name, err)
	}

	rows, err := s.conn.Query("SELECT seq FROM fragments WHERE set_id = ? ORDER BY rowid", setID)
	if err != nil {
		return nil, fmt.Errorf("reading fragments of %q: %w", name, err)
	}
	defer rows.Close()

	var fragments []string
	for rows.Next() {
		var seq string
		if err := rows.Scan(&seq); err != nil {
			return nil, fmt.Errorf("reading fragments of %q: %w", name, err)
		}
		fragments = append(fragments, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading fragments of %q: %w", name, err)
	}

	return fragments, nil
}

// SetInfo describes one saved fragment set
type SetInfo struct {
	Name  string
	Count int
}

// Sets lists the saved fragment sets by name with their fragment counts
func (s *Store) Sets() ([]SetInfo, error) {
	rows, err := s.conn.Query(`
		SELECT fs.name, COUNT(f.rowid)
		FROM fragment_sets fs
		LEFT JOIN fragments f ON f.set_id = fs.id
		GROUP BY fs.id
		ORDER BY fs.name`)
	if err != nil {
		return nil, fmt.Errorf("listing fragment sets: %w", err)
	}
	defer rows.Close()

	var sets []SetInfo
	for rows.Next() {
		var info SetInfo
		if err := rows.Scan(&info.Name, &info.Count); err != nil {
			return nil, fmt.Errorf("listing fragment sets: %w", err)
		}
		sets = append(sets, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing fragment sets: %w", err)
	}

	return sets, nil
}

// DeleteSet removes the named fragment set and its fragments
func (s *Store) DeleteSet(name string) error {
	res, err := s.conn.Exec("DELETE FROM fragment_sets WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting fragment set %q: %w", name, err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting fragment set %q: %w", name, err)
	}
	if count == 0 {
		return fmt.Errorf("no fragment set named %q in the library", name)
	}
	return nil
}
