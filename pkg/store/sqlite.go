package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteSlot keeps the slot in a key-value table of an embedded database.
type SQLiteSlot struct {
	db   *sql.DB
	name string
}

const createSlots = `CREATE TABLE IF NOT EXISTS slots (
	name    TEXT PRIMARY KEY,
	payload BLOB NOT NULL
)`

// NewSQLiteSlot opens the database at path and ensures the slots table.
func NewSQLiteSlot(path, name string) (*SQLiteSlot, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	if _, err := db.Exec(createSlots); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create slots table: %w", err)
	}
	return &SQLiteSlot{db: db, name: name}, nil
}

func (s *SQLiteSlot) Read() ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM slots WHERE name = ?`, s.name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSlot
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", s.name, err)
	}
	return payload, nil
}

func (s *SQLiteSlot) Write(data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (name, payload) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		s.name, data,
	)
	if err != nil {
		return fmt.Errorf("store: write %s: %w", s.name, err)
	}
	return nil
}

func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
