// Package store provides a SQLite-backed host key/value store that a
// lil interpreter can use for its root-environment variable callbacks
// (LIL_CALLBACK_SETVAR/GETVAR in the original): writes to a variable
// that resolves at the root environment persist to disk instead of the
// interpreter's in-memory variable table (which is written only when the
// store write fails), and a process restart picks up where the previous
// one left off.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/lil-lang/lil/internal/interp"
)

// Store is a durable key/value table backing lil's root variable scope.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at path and ensures its
// variable table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS vars (
		name  TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the stored value for name, and whether it was present.
func (s *Store) Get(name string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM vars WHERE name = ?`, name).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set upserts the stored value for name.
func (s *Store) Set(name, value string) error {
	_, err := s.db.Exec(`INSERT INTO vars(name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`, name, value)
	return err
}

// Delete removes name from the store, if present.
func (s *Store) Delete(name string) error {
	_, err := s.db.Exec(`DELETE FROM vars WHERE name = ?`, name)
	return err
}

// Attach wires the store as ip's root-level variable backing: a write
// to a variable that resolves at the root environment is persisted here
// instead of in memory (unless the store write fails), and a read of a
// name that is unset or resolves at the root environment returns the
// stored value whenever the store holds one. Mirrors how lil_set_var/lil_get_var_or defer
// to a host's env_set/env_get callbacks for root-level names.
func (s *Store) Attach(ip *interp.Interp) {
	ip.SetVarAtRoot = func(name string, val *interp.Value) bool {
		if err := s.Set(name, val.String()); err != nil {
			return false
		}
		return true
	}
	ip.GetVarAtRoot = func(name string) (*interp.Value, bool) {
		v, ok := s.Get(name)
		if !ok {
			return nil, false
		}
		return interp.NewValue(v), true
	}
}
