// Package sqlitestore persists patients, practitioners, bookings and appointments
// in a single SQLite database.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS patients (
	id         TEXT PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL,
	phone      TEXT NOT NULL,
	email      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS practitioners (
	id         TEXT PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL,
	phone      TEXT NOT NULL,
	email      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS bookings (
	id              TEXT PRIMARY KEY,
	practitioner_id TEXT NOT NULL REFERENCES practitioners(id),
	patient_id      TEXT NOT NULL REFERENCES patients(id),
	type            TEXT NOT NULL,
	date            TEXT NOT NULL,
	start           TEXT NOT NULL,
	finish          TEXT NOT NULL,
	created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS bookings_practitioner_date ON bookings (practitioner_id, date);

CREATE TABLE IF NOT EXISTS appointments (
	id              TEXT PRIMARY KEY,
	booking_id      TEXT NOT NULL UNIQUE,
	practitioner_id TEXT NOT NULL REFERENCES practitioners(id),
	patient_id      TEXT NOT NULL REFERENCES patients(id),
	type            TEXT NOT NULL,
	date            TEXT NOT NULL,
	start           TEXT NOT NULL,
	notes           TEXT NOT NULL DEFAULT '',
	created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS appointments_date ON appointments (date);
`

// Store implements the repository ports on top of SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates (if needed) and migrates the database at path. ":memory:" is accepted.
func Open(path string) (*Store, error) {
	const op = "sqlitestore.open"

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: path, Err: err}
		}
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: path, Err: err}
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: path, Err: fmt.Errorf("enable WAL: %w", err)}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: path, Err: fmt.Errorf("create schema: %w", err)}
	}

	return &Store{db: db, path: path}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Path() string { return s.path }

func (s *Store) wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var oe *domain.OpError
	if errors.As(err, &oe) {
		return err
	}
	kind := domain.KindExecution
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var se sqlite3.Error
	if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint {
		kind = domain.KindConflict
		err = fmt.Errorf("%v: %w", err, domain.ErrConflict)
	}
	return &domain.OpError{Op: op, Kind: kind, Path: s.path, Err: err}
}

func notFound(op, what string, id fmt.Stringer) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindNotFound,
		Err:  fmt.Errorf("%s %s: %w", what, id, domain.ErrNotFound),
	}
}

// corrupt reports a stored row that no longer passes domain validation.
func corrupt(op string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindExecution, Err: fmt.Errorf("stored row is invalid: %w", err)}
}

type scanner interface {
	Scan(dest ...any) error
}
