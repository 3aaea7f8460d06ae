package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PGStore keeps the state blobs in a single key/value table, for setups that
// already run Postgres and want the timetable state alongside.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(databaseURL string) (*PGStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	query := `CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("create app_state table: %w", err)
	}
	return &PGStore{db: db}, nil
}

func (s *PGStore) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM app_state WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (s *PGStore) Put(key string, value []byte) error {
	query := `INSERT INTO app_state (key, value, updated_at) VALUES ($1, $2, NOW())
			  ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()`
	_, err := s.db.Exec(query, key, string(value))
	return err
}

func (s *PGStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM app_state WHERE key = $1`, key)
	return err
}

func (s *PGStore) Close() error { return s.db.Close() }
