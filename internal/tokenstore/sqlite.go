package tokenstore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/tursodatabase/go-libsql"
)

// SQLite stores the sealed token in the slots table of a libSQL database.
type SQLite struct {
	db   *sql.DB
	seal *sealer
}

// NewSQLite opens (or creates) <dataDir>/carrot.db.
func NewSQLite(dataDir string) (*SQLite, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", ErrStorage, err)
	}
	s, err := newSealer(dataDir)
	if err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "carrot.db")
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", ErrStorage, err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS slots (
			name       TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at TEXT NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: creating schema: %v", ErrStorage, err)
	}
	return &SQLite{db: db, seal: s}, nil
}

func (s *SQLite) Set(token string) error {
	blob, err := s.seal.seal(Slot, []byte(token))
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO slots (name, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		Slot, blob, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("%w: writing slot: %v", ErrStorage, err)
	}
	return nil
}

func (s *SQLite) Get() (string, error) {
	var blob []byte
	err := s.db.QueryRow("SELECT value FROM slots WHERE name = ?", Slot).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: reading slot: %v", ErrStorage, err)
	}
	plain, err := s.seal.open(Slot, blob)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func (s *SQLite) Remove() error {
	if _, err := s.db.Exec("DELETE FROM slots WHERE name = ?", Slot); err != nil {
		return fmt.Errorf("%w: erasing slot: %v", ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
