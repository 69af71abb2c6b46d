// Package store persists the working session (draft, criteria, timestamp)
// and the theme preference in a local SQLite key-value table. The analysis
// engine never reads or writes this; callers own the round-trip.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

const (
	sessionKey   = "draftlens.session"
	themeKey     = "draftlens.theme"
	defaultTheme = "light"
)

type Session struct {
	Draft     string    `json:"draft"`
	Criteria  []string  `json:"criteria"`
	Timestamp time.Time `json:"timestamp"`
}

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSession stores the session under its namespaced key, stamping it with
// the current time when the caller left Timestamp zero.
func (s *Store) SaveSession(sess Session) error {
	if sess.Timestamp.IsZero() {
		sess.Timestamp = time.Now().UTC()
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.put(sessionKey, string(raw))
}

// LoadSession returns the stored session, or ok=false when none was saved.
func (s *Store) LoadSession() (Session, bool, error) {
	raw, ok, err := s.get(sessionKey)
	if err != nil || !ok {
		return Session{}, false, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return Session{}, false, fmt.Errorf("unmarshal session: %w", err)
	}
	return sess, true, nil
}

func (s *Store) SaveTheme(theme string) error {
	return s.put(themeKey, theme)
}

func (s *Store) LoadTheme() (string, error) {
	raw, ok, err := s.get(themeKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return defaultTheme, nil
	}
	return raw, nil
}

func (s *Store) put(key, value string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO kv(key, value, updated_at) VALUES(?,?,?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select %s: %w", key, err)
	}
	return value, true, nil
}
